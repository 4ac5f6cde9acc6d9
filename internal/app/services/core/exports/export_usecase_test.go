package exports

import (
	"context"
	"errors"
	"fmt"
	"livwise-service/internal/pkg/dto/requests"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubExportRepository struct {
	FindByDateFunc func(ctx context.Context, date, facilityName string) ([]map[string]interface{}, error)
}

func (s *stubExportRepository) FindByDate(ctx context.Context, date, facilityName string) ([]map[string]interface{}, error) {
	return s.FindByDateFunc(ctx, date, facilityName)
}

type stubStorage struct {
	UploadObjectFunc func(ctx context.Context, bucketName, objectName string, data []byte, contentType string) (string, error)
	Keys             []string
	LastPayload      []byte
}

func (s *stubStorage) UploadObject(ctx context.Context, bucketName, objectName string, data []byte, contentType string) (string, error) {
	s.Keys = append(s.Keys, objectName)
	s.LastPayload = data
	if s.UploadObjectFunc != nil {
		return s.UploadObjectFunc(ctx, bucketName, objectName, data, contentType)
	}
	return fmt.Sprintf("s3://%s/%s", bucketName, objectName), nil
}

func recordFixture(facility, category, operatorID, patientID string) map[string]interface{} {
	return map[string]interface{}{
		"facility_name": facility,
		"operator_details": map[string]interface{}{
			"operator_id": operatorID,
		},
		"patient_details": map[string]interface{}{
			"patient_id": patientID,
		},
		"observations": []interface{}{
			map[string]interface{}{
				"diagnostic_category": category,
			},
		},
	}
}

func TestExportDailyRecords(t *testing.T) {
	t.Run("Exports Single Date", func(t *testing.T) {
		repository := &stubExportRepository{
			FindByDateFunc: func(ctx context.Context, date, facilityName string) ([]map[string]interface{}, error) {
				return []map[string]interface{}{
					recordFixture("Main Clinic", "Vitals", "op-1", "pat-1"),
					recordFixture("Main Clinic", "Imaging", "op-1", "pat-2"),
					recordFixture("East Clinic", "Vitals", "op-2", "pat-1"),
				}, nil
			},
		}
		storage := &stubStorage{}
		usecase := NewExportUsecase(zap.NewNop(), repository, storage, "medical-records-exports")

		response, err := usecase.ExportDailyRecords(context.Background(), &requests.ExportDailyRecords{Date: "2025-08-30"})

		assert.NoError(t, err)
		assert.Equal(t, 1, response.ProcessedDates)
		assert.Equal(t, 1, response.SuccessfulExports)
		assert.Equal(t, 0, response.FailedExports)

		result := response.Results[0]
		assert.Equal(t, "2025-08-30", result.Date)
		assert.Equal(t, 3, result.RecordsCount)
		assert.Equal(t, "s3://medical-records-exports/daily-exports/2025/08/livwise-records-2025-08-30.json", result.StorageURL)

		summary := result.Summary
		assert.Equal(t, 3, summary.TotalRecords)
		assert.Equal(t, 2, summary.FacilitiesCount)
		assert.Equal(t, 2, summary.OperatorsCount)
		assert.Equal(t, 2, summary.PatientsCount)
		assert.Equal(t, 2, summary.TestCategoriesCount)
		assert.Equal(t, 2, summary.RecordsByFacility["Main Clinic"])
		assert.Equal(t, 2, summary.RecordsByCategory["Vitals"])

		var exported map[string]interface{}
		assert.NoError(t, json.Unmarshal(storage.LastPayload, &exported))
		assert.Contains(t, exported, "export_metadata")
		assert.Contains(t, exported, "summary")
		assert.Contains(t, exported, "data")
	})

	t.Run("Facility Filter Shapes Object Key", func(t *testing.T) {
		repository := &stubExportRepository{
			FindByDateFunc: func(ctx context.Context, date, facilityName string) ([]map[string]interface{}, error) {
				assert.Equal(t, "Main Clinic", facilityName)
				return []map[string]interface{}{recordFixture("Main Clinic", "Vitals", "op-1", "pat-1")}, nil
			},
		}
		storage := &stubStorage{}
		usecase := NewExportUsecase(zap.NewNop(), repository, storage, "medical-records-exports")

		_, err := usecase.ExportDailyRecords(context.Background(), &requests.ExportDailyRecords{
			Date:         "2025-08-30",
			FacilityName: "Main Clinic",
		})

		assert.NoError(t, err)
		assert.Equal(t, []string{"daily-exports/2025/08/main-clinic/livwise-records-2025-08-30.json"}, storage.Keys)
	})

	t.Run("Date Range Is Inclusive", func(t *testing.T) {
		queried := make([]string, 0)
		repository := &stubExportRepository{
			FindByDateFunc: func(ctx context.Context, date, facilityName string) ([]map[string]interface{}, error) {
				queried = append(queried, date)
				return nil, nil
			},
		}
		usecase := NewExportUsecase(zap.NewNop(), repository, &stubStorage{}, "medical-records-exports")

		response, err := usecase.ExportDailyRecords(context.Background(), &requests.ExportDailyRecords{
			StartDate: "2025-08-29",
			EndDate:   "2025-08-31",
		})

		assert.NoError(t, err)
		assert.Equal(t, []string{"2025-08-29", "2025-08-30", "2025-08-31"}, queried)
		assert.Equal(t, 3, response.ProcessedDates)
		assert.Empty(t, response.Results, "empty days produce no results")
	})

	t.Run("Rejects Inverted Range", func(t *testing.T) {
		usecase := NewExportUsecase(zap.NewNop(), &stubExportRepository{}, &stubStorage{}, "medical-records-exports")

		_, err := usecase.ExportDailyRecords(context.Background(), &requests.ExportDailyRecords{
			StartDate: "2025-08-31",
			EndDate:   "2025-08-29",
		})

		assert.Error(t, err)
	})

	t.Run("Failing Day Does Not Abort Range", func(t *testing.T) {
		repository := &stubExportRepository{
			FindByDateFunc: func(ctx context.Context, date, facilityName string) ([]map[string]interface{}, error) {
				if date == "2025-08-29" {
					return nil, errors.New("connection reset")
				}
				return []map[string]interface{}{recordFixture("Main Clinic", "Vitals", "op-1", "pat-1")}, nil
			},
		}
		usecase := NewExportUsecase(zap.NewNop(), repository, &stubStorage{}, "medical-records-exports")

		response, err := usecase.ExportDailyRecords(context.Background(), &requests.ExportDailyRecords{
			StartDate: "2025-08-29",
			EndDate:   "2025-08-30",
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, response.SuccessfulExports)
		assert.Equal(t, 1, response.FailedExports)
		assert.Equal(t, "error", response.Results[0].Status)
		assert.NotEmpty(t, response.Results[0].Error)
	})

	t.Run("Upload Failure Reports Error Result", func(t *testing.T) {
		repository := &stubExportRepository{
			FindByDateFunc: func(ctx context.Context, date, facilityName string) ([]map[string]interface{}, error) {
				return []map[string]interface{}{recordFixture("Main Clinic", "Vitals", "op-1", "pat-1")}, nil
			},
		}
		storage := &stubStorage{
			UploadObjectFunc: func(ctx context.Context, bucketName, objectName string, data []byte, contentType string) (string, error) {
				return "", errors.New("bucket unavailable")
			},
		}
		usecase := NewExportUsecase(zap.NewNop(), repository, storage, "medical-records-exports")

		response, err := usecase.ExportDailyRecords(context.Background(), &requests.ExportDailyRecords{Date: "2025-08-30"})

		assert.NoError(t, err)
		assert.Equal(t, 1, response.FailedExports)
		assert.Equal(t, "error", response.Results[0].Status)
	})

	t.Run("Groups Missing Facility As Unknown", func(t *testing.T) {
		record := recordFixture("", "Vitals", "op-1", "pat-1")
		repository := &stubExportRepository{
			FindByDateFunc: func(ctx context.Context, date, facilityName string) ([]map[string]interface{}, error) {
				return []map[string]interface{}{record}, nil
			},
		}
		usecase := NewExportUsecase(zap.NewNop(), repository, &stubStorage{}, "medical-records-exports")

		response, err := usecase.ExportDailyRecords(context.Background(), &requests.ExportDailyRecords{Date: "2025-08-30"})

		assert.NoError(t, err)
		assert.Equal(t, 1, response.Results[0].Summary.RecordsByFacility["Unknown"])
	})
}
