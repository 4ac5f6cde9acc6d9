package sync

import (
	"context"
	"encoding/base64"
	"errors"
	"livwise-service/internal/app/config"
	"livwise-service/internal/pkg/dto/requests"
	"livwise-service/internal/pkg/dto/responses"
	"livwise-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubRecordRepository struct {
	PutSyncedFunc func(ctx context.Context, document map[string]interface{}, recordID string) error
	Saved         []map[string]interface{}
}

func (s *stubRecordRepository) PutSynced(ctx context.Context, document map[string]interface{}, recordID string) error {
	if s.PutSyncedFunc != nil {
		if err := s.PutSyncedFunc(ctx, document, recordID); err != nil {
			return err
		}
	}
	s.Saved = append(s.Saved, document)
	return nil
}

type stubEventPublisher struct {
	PublishFunc func(ctx context.Context, response *responses.SyncResponse) error
	Published   []*responses.SyncResponse
}

func (s *stubEventPublisher) PublishBatchCompleted(ctx context.Context, response *responses.SyncResponse) error {
	s.Published = append(s.Published, response)
	if s.PublishFunc != nil {
		return s.PublishFunc(ctx, response)
	}
	return nil
}

func newTestUsecase(repository *stubRecordRepository, storage *stubStorage, publisher *stubEventPublisher) SyncUsecase {
	internalConfig := &config.InternalConfig{}
	internalConfig.Sync.RetentionDays = 2555
	return NewSyncUsecase(
		zap.NewNop(),
		repository,
		NewBlobExtractor(zap.NewNop(), storage, "medical-records"),
		publisher,
		internalConfig,
	)
}

func validRawRecord(id string) map[string]interface{} {
	return map[string]interface{}{
		"id":                id,
		"livwise_record_id": "lw-" + id,
		"facility_name":     "Main Clinic",
		"branch_name":       "North",
		"location_code":     "MC-01",
		"created_at":        "2025-08-30T10:15:00.000Z",
		"operator_details": map[string]interface{}{
			"operator_id":   "op-1",
			"operator_name": "Ravi Kumar",
		},
		"patient_details": map[string]interface{}{
			"patient_id":                   "pat-1",
			"patient_mrn":                  "MRN-0001",
			"first_name":                   "Asha",
			"last_name":                    "Rao",
			"dob":                          "1990-04-12",
			"gender":                       "Female",
			"mobile":                       "9876543210",
			"consent_to_store_health_info": true,
			"address_1":                    "12 High St",
			"address_city":                 "Pune",
			"address_state":                "MH",
			"address_pincode":              "411001",
		},
		"observations": []interface{}{
			map[string]interface{}{
				"diagnostic_category": "Vitals",
				"diagnostic_code":     "BP",
				"diagnostic_name":     "Blood Pressure",
				"patient_vitals": []interface{}{
					map[string]interface{}{
						"vital_type":      "systolic",
						"observed_value":  float64(120),
						"unit_of_measure": "mmHg",
					},
				},
				"test_duration_minutes": float64(5),
			},
		},
	}
}

func TestSyncBatch(t *testing.T) {
	t.Run("Rejects Empty Batch", func(t *testing.T) {
		usecase := newTestUsecase(&stubRecordRepository{}, &stubStorage{}, &stubEventPublisher{})

		response, err := usecase.SyncBatch(context.Background(), &requests.SyncBatch{
			DeviceID: "device-1",
			Records:  []map[string]interface{}{},
		})

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
		assert.Contains(t, customErr.ClientMessage, "Request validation failed")
		assert.Contains(t, customErr.ClientMessage, "records")
	})

	t.Run("Rejects Missing Device ID", func(t *testing.T) {
		usecase := newTestUsecase(&stubRecordRepository{}, &stubStorage{}, &stubEventPublisher{})

		_, err := usecase.SyncBatch(context.Background(), &requests.SyncBatch{
			Records: []map[string]interface{}{validRawRecord("rec-1")},
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Contains(t, customErr.ClientMessage, "deviceId")
	})

	t.Run("Single Record Success", func(t *testing.T) {
		repository := &stubRecordRepository{}
		publisher := &stubEventPublisher{}
		usecase := newTestUsecase(repository, &stubStorage{}, publisher)

		latitude := 18.52
		raw := validRawRecord("rec-1")
		raw["firmware_channel"] = "beta"

		response, err := usecase.SyncBatch(context.Background(), &requests.SyncBatch{
			DeviceID: "device-1",
			Records:  []map[string]interface{}{raw},
			Latitude: &latitude,
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, response.TotalRecords)
		assert.Equal(t, 1, response.SuccessfulRecords)
		assert.Equal(t, 0, response.FailedRecords)
		assert.Equal(t, "device-1", response.DeviceID)
		assert.Equal(t, &latitude, response.Latitude)

		assert.Len(t, response.Results, 1)
		result := response.Results[0]
		assert.Equal(t, "rec-1", result.ID)
		assert.Equal(t, responses.SyncResultStatusSuccess, result.Status)
		assert.Equal(t, response.SyncedAt, result.SyncedAt)

		assert.Len(t, repository.Saved, 1)
		saved := repository.Saved[0]
		assert.Equal(t, "beta", saved["firmware_channel"], "unknown fields should survive to persistence")
		assert.Equal(t, "pat-1", saved["patientId"])
		assert.Equal(t, "op-1", saved["operatorId"])
		assert.Contains(t, saved, "expires_at")

		metadata := saved["sync_metadata"].(map[string]interface{})
		assert.Equal(t, "device-1", metadata["device_id"])
		assert.Equal(t, "SYNCED", metadata["sync_status"])
		assert.Equal(t, response.SyncedAt, metadata["synced_at"])
		assert.Equal(t, latitude, metadata["latitude"])

		assert.Len(t, publisher.Published, 1, "batch completion should be published")
	})

	t.Run("Partial Failure Preserves Order And Counts", func(t *testing.T) {
		repository := &stubRecordRepository{}
		usecase := newTestUsecase(repository, &stubStorage{}, &stubEventPublisher{})

		invalid := validRawRecord("rec-2")
		delete(invalid, "facility_name")

		response, err := usecase.SyncBatch(context.Background(), &requests.SyncBatch{
			DeviceID: "device-1",
			Records:  []map[string]interface{}{validRawRecord("rec-1"), invalid, validRawRecord("rec-3")},
		})

		assert.NoError(t, err, "per-record failures never fail the batch")
		assert.Equal(t, 3, response.TotalRecords)
		assert.Equal(t, 2, response.SuccessfulRecords)
		assert.Equal(t, 1, response.FailedRecords)

		assert.Equal(t, "rec-1", response.Results[0].ID)
		assert.Equal(t, "rec-2", response.Results[1].ID)
		assert.Equal(t, "rec-3", response.Results[2].ID)

		failed := response.Results[1]
		assert.Equal(t, responses.SyncResultStatusError, failed.Status)
		assert.Contains(t, failed.Message, "Validation failed")
		assert.Contains(t, failed.Message, "facility_name")
		assert.Empty(t, failed.SyncedAt)
	})

	t.Run("Record Without ID Reports Unknown", func(t *testing.T) {
		usecase := newTestUsecase(&stubRecordRepository{}, &stubStorage{}, &stubEventPublisher{})

		raw := validRawRecord("rec-1")
		delete(raw, "id")

		response, err := usecase.SyncBatch(context.Background(), &requests.SyncBatch{
			DeviceID: "device-1",
			Records:  []map[string]interface{}{raw},
		})

		assert.NoError(t, err)
		assert.Equal(t, "unknown", response.Results[0].ID)
		assert.Equal(t, responses.SyncResultStatusError, response.Results[0].Status)
	})

	t.Run("Already Synced Record Conflicts", func(t *testing.T) {
		repository := &stubRecordRepository{
			PutSyncedFunc: func(ctx context.Context, document map[string]interface{}, recordID string) error {
				return exceptions.ErrRecordAlreadySynced(errors.New("duplicate key"), recordID)
			},
		}
		usecase := newTestUsecase(repository, &stubStorage{}, &stubEventPublisher{})

		response, err := usecase.SyncBatch(context.Background(), &requests.SyncBatch{
			DeviceID: "device-1",
			Records:  []map[string]interface{}{validRawRecord("rec-1")},
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, response.FailedRecords)
		assert.Equal(t, "record already synced", response.Results[0].Message)
	})

	t.Run("Photo Upload Failure Does Not Fail Record", func(t *testing.T) {
		storage := &stubStorage{
			UploadObjectFunc: func(ctx context.Context, bucketName, objectName string, data []byte, contentType string) (string, error) {
				return "", errors.New("bucket unavailable")
			},
		}
		repository := &stubRecordRepository{}
		usecase := newTestUsecase(repository, storage, &stubEventPublisher{})

		raw := validRawRecord("rec-1")
		details := raw["patient_details"].(map[string]interface{})
		details["patient_photo_blob"] = base64.StdEncoding.EncodeToString([]byte("photo"))

		response, err := usecase.SyncBatch(context.Background(), &requests.SyncBatch{
			DeviceID: "device-1",
			Records:  []map[string]interface{}{raw},
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, response.SuccessfulRecords)

		saved := repository.Saved[0]
		savedDetails := saved["patient_details"].(map[string]interface{})
		assert.NotContains(t, savedDetails, "patient_photo_blob")
		assert.NotContains(t, savedDetails, "patient_photo")
	})

	t.Run("Operator Falls Back To Record Details", func(t *testing.T) {
		storage := &stubStorage{}
		repository := &stubRecordRepository{}
		usecase := newTestUsecase(repository, storage, &stubEventPublisher{})

		raw := validRawRecord("rec-1")
		details := raw["patient_details"].(map[string]interface{})
		details["patient_photo_blob"] = base64.StdEncoding.EncodeToString([]byte("photo"))

		_, err := usecase.SyncBatch(context.Background(), &requests.SyncBatch{
			DeviceID: "device-1",
			Records:  []map[string]interface{}{raw},
		})

		assert.NoError(t, err)
		assert.Len(t, storage.Uploads, 1)
		assert.Contains(t, storage.Uploads[0].Key, "_op-1_", "record operator id should name the object")
	})

	t.Run("Publisher Failure Does Not Fail Batch", func(t *testing.T) {
		publisher := &stubEventPublisher{
			PublishFunc: func(ctx context.Context, response *responses.SyncResponse) error {
				return errors.New("broker down")
			},
		}
		usecase := newTestUsecase(&stubRecordRepository{}, &stubStorage{}, publisher)

		response, err := usecase.SyncBatch(context.Background(), &requests.SyncBatch{
			DeviceID: "device-1",
			Records:  []map[string]interface{}{validRawRecord("rec-1")},
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, response.SuccessfulRecords)
	})

	t.Run("Normalizes Legacy Shapes Before Validation", func(t *testing.T) {
		repository := &stubRecordRepository{}
		usecase := newTestUsecase(repository, &stubStorage{}, &stubEventPublisher{})

		raw := validRawRecord("rec-1")
		delete(raw, "facility_name")
		delete(raw, "branch_name")
		delete(raw, "location_code")
		raw["test_center"] = map[string]interface{}{
			"facility_name": "Main Clinic",
			"branch_name":   "North",
			"location_code": "MC-01",
		}
		raw["observations"] = raw["observations"].([]interface{})[0]

		response, err := usecase.SyncBatch(context.Background(), &requests.SyncBatch{
			DeviceID: "device-1",
			Records:  []map[string]interface{}{raw},
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, response.SuccessfulRecords)

		saved := repository.Saved[0]
		assert.Equal(t, "Main Clinic", saved["facility_name"])
		assert.NotContains(t, saved, "test_center")
		assert.IsType(t, []interface{}{}, saved["observations"])
	})
}
