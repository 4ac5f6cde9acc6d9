package sync

import (
	"context"
	"errors"
	"fmt"
	"livwise-service/internal/app/config"
	"livwise-service/internal/pkg/constvars"
	"livwise-service/internal/pkg/dto/requests"
	"livwise-service/internal/pkg/dto/responses"
	"livwise-service/internal/pkg/exceptions"
	"livwise-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// One shared synced-at timestamp per batch, millisecond precision.
const syncedAtLayout = "2006-01-02T15:04:05.000Z"

type syncUsecase struct {
	Log              *zap.Logger
	RecordRepository MedicalRecordRepository
	BlobExtractor    *BlobExtractor
	EventPublisher   BatchEventPublisher
	InternalConfig   *config.InternalConfig
}

func NewSyncUsecase(
	log *zap.Logger,
	recordRepository MedicalRecordRepository,
	blobExtractor *BlobExtractor,
	eventPublisher BatchEventPublisher,
	internalConfig *config.InternalConfig,
) SyncUsecase {
	return &syncUsecase{
		Log:              log,
		RecordRepository: recordRepository,
		BlobExtractor:    blobExtractor,
		EventPublisher:   eventPublisher,
		InternalConfig:   internalConfig,
	}
}

func (uc *syncUsecase) SyncBatch(ctx context.Context, request *requests.SyncBatch) (*responses.SyncResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrBatchValidation(utils.FormatAllValidationErrors(err))
	}

	syncedAt := time.Now().UTC().Format(syncedAtLayout)

	uc.Log.Info("starting sync operation",
		zap.String(constvars.LoggingDeviceIDKey, request.DeviceID),
		zap.Int("records", len(request.Records)),
		zap.Any("latitude", request.Latitude),
		zap.Any("longitude", request.Longitude),
	)

	results := make([]responses.SyncResult, 0, len(request.Records))
	for _, raw := range request.Records {
		results = append(results, uc.processRecord(ctx, raw, request, syncedAt))
	}

	successful := 0
	for _, result := range results {
		if result.Status == responses.SyncResultStatusSuccess {
			successful++
		}
	}

	response := &responses.SyncResponse{
		DeviceID:          request.DeviceID,
		OperatorID:        request.OperatorID,
		SyncedAt:          syncedAt,
		TotalRecords:      len(request.Records),
		SuccessfulRecords: successful,
		FailedRecords:     len(results) - successful,
		Results:           results,
		Latitude:          request.Latitude,
		Longitude:         request.Longitude,
	}

	if uc.EventPublisher != nil {
		if err := uc.EventPublisher.PublishBatchCompleted(ctx, response); err != nil {
			uc.Log.Error("failed to publish batch completed event",
				zap.String(constvars.LoggingDeviceIDKey, request.DeviceID),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("sync operation completed",
		zap.Int("successful_records", response.SuccessfulRecords),
		zap.Int("failed_records", response.FailedRecords),
	)

	return response, nil
}

// processRecord runs one record through normalize, photo extraction,
// validation, metadata stamping, raw-data extraction and the conditional
// write. Every failure, including a panic, terminates only this record.
func (uc *syncUsecase) processRecord(ctx context.Context, raw map[string]interface{}, batch *requests.SyncBatch, syncedAt string) (result responses.SyncResult) {
	recordID := constvars.UnknownRecordID
	if id := asString(raw["id"]); id != "" {
		recordID = id
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			uc.Log.Error("panic while processing record",
				zap.String(constvars.LoggingRecordIDKey, recordID),
				zap.Any("panic", recovered),
			)
			result = failedResult(recordID, fmt.Errorf("%v", recovered))
		}
	}()

	record := NormalizeRecord(raw)

	// Top-level copies of the nested identifiers, for the secondary lookups
	// the retrieval services run.
	if patientDetails, ok := asDocument(record["patient_details"]); ok {
		record["patientId"] = asString(patientDetails["patient_id"])
	}
	operatorID := batch.OperatorID
	if operatorDetails, ok := asDocument(record["operator_details"]); ok {
		record["operatorId"] = asString(operatorDetails["operator_id"])
		if operatorID == "" {
			operatorID = asString(operatorDetails["operator_id"])
		}
	}

	if _, err := uc.BlobExtractor.ExtractPatientPhoto(ctx, record, operatorID, syncedAt); err != nil {
		// The record proceeds without a photo reference.
		uc.Log.Error("failed to upload patient photo",
			zap.String(constvars.LoggingRecordIDKey, recordID),
			zap.Error(err),
		)
	}

	validated, err := DecodeAndValidateRecord(record)
	if err != nil {
		return failedResult(recordID, err)
	}

	record["sync_metadata"] = uc.buildSyncMetadata(batch, syncedAt)

	uc.BlobExtractor.ExtractRawData(ctx, record, validated, operatorID, syncedAt)

	retention := time.Duration(uc.InternalConfig.Sync.RetentionDays) * 24 * time.Hour
	record["expires_at"] = time.Now().UTC().Add(retention)

	if err := uc.RecordRepository.PutSynced(ctx, record, validated.ID); err != nil {
		return failedResult(validated.ID, err)
	}

	uc.Log.Info("successfully processed record",
		zap.String(constvars.LoggingRecordIDKey, validated.ID),
	)

	return responses.SyncResult{
		ID:       validated.ID,
		Status:   responses.SyncResultStatusSuccess,
		SyncedAt: syncedAt,
	}
}

// buildSyncMetadata replaces whatever the caller supplied under sync_metadata.
func (uc *syncUsecase) buildSyncMetadata(batch *requests.SyncBatch, syncedAt string) map[string]interface{} {
	metadata := map[string]interface{}{
		"device_id":   batch.DeviceID,
		"synced_at":   syncedAt,
		"sync_status": constvars.SyncStatusSynced,
	}
	if batch.OperatorID != "" {
		metadata["operator_id"] = batch.OperatorID
	}
	if batch.Latitude != nil {
		metadata["latitude"] = *batch.Latitude
	}
	if batch.Longitude != nil {
		metadata["longitude"] = *batch.Longitude
	}
	return metadata
}

func failedResult(recordID string, err error) responses.SyncResult {
	message := err.Error()
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		message = customErr.ClientMessage
	}
	return responses.SyncResult{
		ID:      recordID,
		Status:  responses.SyncResultStatusError,
		Message: message,
	}
}
