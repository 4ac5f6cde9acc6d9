package exports

import (
	"context"
	"errors"
	"fmt"
	"livwise-service/internal/app/services/shared/storage"
	"livwise-service/internal/pkg/constvars"
	"livwise-service/internal/pkg/dto/requests"
	"livwise-service/internal/pkg/dto/responses"
	"livwise-service/internal/pkg/exceptions"
	"livwise-service/internal/pkg/utils"
	"regexp"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	dateLayout        = "2006-01-02"
	exportTimeLayout  = "2006-01-02T15:04:05.000Z"
	unknownGroupLabel = "Unknown"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

type exportUsecase struct {
	Log              *zap.Logger
	ExportRepository ExportRepository
	Storage          storage.Storage
	ExportBucketName string
}

func NewExportUsecase(
	log *zap.Logger,
	exportRepository ExportRepository,
	objectStorage storage.Storage,
	exportBucketName string,
) ExportUsecase {
	return &exportUsecase{
		Log:              log,
		ExportRepository: exportRepository,
		Storage:          objectStorage,
		ExportBucketName: exportBucketName,
	}
}

func (uc *exportUsecase) ExportDailyRecords(ctx context.Context, request *requests.ExportDailyRecords) (*responses.ExportResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrBatchValidation(utils.FormatAllValidationErrors(err))
	}

	dateRange, err := determineDateRange(request)
	if err != nil {
		return nil, exceptions.ErrBatchValidation(err.Error())
	}

	uc.Log.Info("starting daily export",
		zap.Strings("dates", dateRange),
		zap.String("facility_name", request.FacilityName),
	)

	results := make([]responses.DailyExportResult, 0, len(dateRange))
	for _, targetDate := range dateRange {
		result, processed := uc.exportDate(ctx, targetDate, request.FacilityName)
		if !processed {
			continue
		}
		results = append(results, result)
	}

	response := &responses.ExportResponse{
		ProcessedDates: len(dateRange),
		Results:        results,
	}
	for _, result := range results {
		if result.Error == "" {
			response.SuccessfulExports++
		} else {
			response.FailedExports++
		}
	}

	uc.Log.Info("daily export completed",
		zap.Int("successful_exports", response.SuccessfulExports),
		zap.Int("failed_exports", response.FailedExports),
	)

	return response, nil
}

// exportDate exports one day. A day with no records produces no result at
// all; a failing day produces an error result without aborting the range.
func (uc *exportUsecase) exportDate(ctx context.Context, targetDate, facilityName string) (responses.DailyExportResult, bool) {
	records, err := uc.ExportRepository.FindByDate(ctx, targetDate, facilityName)
	if err != nil {
		return errorResult(targetDate, err), true
	}
	if len(records) == 0 {
		uc.Log.Info("no records found for date", zap.String("date", targetDate))
		return responses.DailyExportResult{}, false
	}

	exportDocument := buildDailyExport(targetDate, records)
	payload, err := json.MarshalIndent(exportDocument, "", "  ")
	if err != nil {
		return errorResult(targetDate, exceptions.ErrCannotMarshalJSON(err)), true
	}

	objectKey := generateObjectKey(targetDate, facilityName)
	location, err := uc.Storage.UploadObject(ctx, uc.ExportBucketName, objectKey, payload, constvars.MIMEApplicationJSON)
	if err != nil {
		return errorResult(targetDate, err), true
	}

	uc.Log.Info("exported daily records",
		zap.String("date", targetDate),
		zap.Int("records", len(records)),
		zap.String(constvars.LoggingObjectKeyKey, objectKey),
	)

	return responses.DailyExportResult{
		Date:         targetDate,
		RecordsCount: len(records),
		StorageURL:   location,
		Summary:      buildDailySummary(targetDate, records),
	}, true
}

func errorResult(targetDate string, err error) responses.DailyExportResult {
	message := err.Error()
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		message = customErr.DevMessage
	}
	return responses.DailyExportResult{
		Date:   targetDate,
		Status: "error",
		Error:  message,
	}
}

// determineDateRange resolves the request to a list of YYYY-MM-DD dates:
// a single date, an inclusive start..end range, or yesterday by default.
func determineDateRange(request *requests.ExportDailyRecords) ([]string, error) {
	if request.Date != "" {
		return []string{request.Date}, nil
	}

	if request.StartDate != "" && request.EndDate != "" {
		start, err := time.Parse(dateLayout, request.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate %q", request.StartDate)
		}
		end, err := time.Parse(dateLayout, request.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate %q", request.EndDate)
		}
		if end.Before(start) {
			return nil, fmt.Errorf("endDate %q precedes startDate %q", request.EndDate, request.StartDate)
		}

		dates := make([]string, 0)
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			dates = append(dates, d.Format(dateLayout))
		}
		return dates, nil
	}

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	return []string{yesterday.Format(dateLayout)}, nil
}

func buildDailyExport(targetDate string, records []map[string]interface{}) map[string]interface{} {
	recordsByFacility := make(map[string][]map[string]interface{})
	recordsByCategory := make(map[string][]map[string]interface{})
	for _, record := range records {
		facility := groupLabel(record["facility_name"])
		recordsByFacility[facility] = append(recordsByFacility[facility], record)

		category := groupLabel(firstObservationCategory(record))
		recordsByCategory[category] = append(recordsByCategory[category], record)
	}

	summaryByFacility := make(map[string]int, len(recordsByFacility))
	for facility, group := range recordsByFacility {
		summaryByFacility[facility] = len(group)
	}
	summaryByCategory := make(map[string]int, len(recordsByCategory))
	for category, group := range recordsByCategory {
		summaryByCategory[category] = len(group)
	}

	return map[string]interface{}{
		"export_metadata": map[string]interface{}{
			"export_date":      time.Now().UTC().Format(exportTimeLayout),
			"target_date":      targetDate,
			"total_records":    len(records),
			"facilities_count": len(recordsByFacility),
			"categories_count": len(recordsByCategory),
			"format_version":   "1.0",
		},
		"summary": map[string]interface{}{
			"records_by_facility": summaryByFacility,
			"records_by_category": summaryByCategory,
		},
		"data": map[string]interface{}{
			"records_by_facility": recordsByFacility,
			"records_by_category": recordsByCategory,
			"all_records":         records,
		},
	}
}

func buildDailySummary(targetDate string, records []map[string]interface{}) *responses.DailyRecordsSummary {
	facilities := make(map[string]struct{})
	operators := make(map[string]struct{})
	patients := make(map[string]struct{})
	categories := make(map[string]struct{})
	recordsByFacility := make(map[string]int)
	recordsByCategory := make(map[string]int)

	for _, record := range records {
		facility := groupLabel(record["facility_name"])
		facilities[facility] = struct{}{}
		recordsByFacility[facility]++

		category := groupLabel(firstObservationCategory(record))
		categories[category] = struct{}{}
		recordsByCategory[category]++

		if details, ok := record["operator_details"].(map[string]interface{}); ok {
			if id, ok := details["operator_id"].(string); ok {
				operators[id] = struct{}{}
			}
		}
		if details, ok := record["patient_details"].(map[string]interface{}); ok {
			if id, ok := details["patient_id"].(string); ok {
				patients[id] = struct{}{}
			}
		}
	}

	return &responses.DailyRecordsSummary{
		Date:                targetDate,
		TotalRecords:        len(records),
		FacilitiesCount:     len(facilities),
		OperatorsCount:      len(operators),
		PatientsCount:       len(patients),
		TestCategoriesCount: len(categories),
		RecordsByFacility:   recordsByFacility,
		RecordsByCategory:   recordsByCategory,
	}
}

func firstObservationCategory(record map[string]interface{}) interface{} {
	observations, ok := record["observations"].([]interface{})
	if !ok || len(observations) == 0 {
		return nil
	}
	observation, ok := observations[0].(map[string]interface{})
	if !ok {
		return nil
	}
	return observation["diagnostic_category"]
}

func groupLabel(value interface{}) string {
	label, ok := value.(string)
	if !ok || label == "" {
		return unknownGroupLabel
	}
	return label
}

// generateObjectKey partitions exports by year and month, with an optional
// facility segment, e.g. daily-exports/2025/08/main-clinic/livwise-records-2025-08-31.json.
func generateObjectKey(targetDate, facilityName string) string {
	parts := strings.SplitN(targetDate, "-", 3)
	key := fmt.Sprintf("%s/%s/%s", constvars.ObjectPrefixDailyExport, parts[0], parts[1])
	if facilityName != "" {
		slug := whitespacePattern.ReplaceAllString(strings.ToLower(facilityName), "-")
		key = fmt.Sprintf("%s/%s", key, slug)
	}
	return fmt.Sprintf("%s/livwise-records-%s.json", key, targetDate)
}
