package records

import (
	"context"
	"fmt"
	"livwise-service/internal/app/config"
	redisRepo "livwise-service/internal/app/services/shared/redis"
	"livwise-service/internal/pkg/dto/requests"
	"livwise-service/internal/pkg/dto/responses"
	"livwise-service/internal/pkg/exceptions"
	"livwise-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const recordCacheKeyFormat = "record:%s"

type recordUsecase struct {
	Log              *zap.Logger
	RecordRepository RecordRepository
	RedisRepository  redisRepo.RedisRepository
	InternalConfig   *config.InternalConfig
}

func NewRecordUsecase(
	log *zap.Logger,
	recordRepository RecordRepository,
	redisRepository redisRepo.RedisRepository,
	internalConfig *config.InternalConfig,
) RecordUsecase {
	return &recordUsecase{
		Log:              log,
		RecordRepository: recordRepository,
		RedisRepository:  redisRepository,
		InternalConfig:   internalConfig,
	}
}

func (uc *recordUsecase) ListRecords(ctx context.Context, request *requests.ListRecords) (*responses.RecordList, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrBatchValidation(utils.FormatAllValidationErrors(err))
	}

	results, err := uc.RecordRepository.Find(ctx, request)
	if err != nil {
		return nil, err
	}

	return &responses.RecordList{
		Records: results,
		Count:   len(results),
	}, nil
}

func (uc *recordUsecase) GetRecordByID(ctx context.Context, recordID string) (map[string]interface{}, error) {
	cacheKey := fmt.Sprintf(recordCacheKeyFormat, recordID)

	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		uc.Log.Warn("failed to read record cache", zap.Error(err))
	}
	if cached != "" {
		var record map[string]interface{}
		if err := json.Unmarshal([]byte(cached), &record); err == nil {
			return record, nil
		}
		uc.Log.Warn("failed to decode cached record", zap.String("cache_key", cacheKey))
	}

	record, err := uc.RecordRepository.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrRecordNotFound(fmt.Errorf("record %s not found", recordID))
	}

	ttl := time.Duration(uc.InternalConfig.Sync.RecordCacheTTLInSeconds) * time.Second
	if err := uc.RedisRepository.Set(ctx, cacheKey, record, ttl); err != nil {
		uc.Log.Warn("failed to cache record", zap.Error(err))
	}

	return record, nil
}

func (uc *recordUsecase) ListRecordsByPatientID(ctx context.Context, patientID string) (*responses.RecordList, error) {
	results, err := uc.RecordRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	return &responses.RecordList{
		Records: results,
		Count:   len(results),
	}, nil
}
