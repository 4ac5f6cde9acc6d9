package sync

import (
	"context"
	"livwise-service/internal/app/config"
	"livwise-service/internal/pkg/dto/requests"
	"livwise-service/internal/pkg/dto/responses"
	"livwise-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubSyncUsecase struct {
	SyncBatchFunc func(ctx context.Context, request *requests.SyncBatch) (*responses.SyncResponse, error)
}

func (s *stubSyncUsecase) SyncBatch(ctx context.Context, request *requests.SyncBatch) (*responses.SyncResponse, error) {
	return s.SyncBatchFunc(ctx, request)
}

func newTestController(usecase SyncUsecase) *SyncController {
	internalConfig := &config.InternalConfig{}
	internalConfig.Sync.RequestTimeoutInSeconds = 5
	return NewSyncController(zap.NewNop(), usecase, internalConfig)
}

func TestSyncControllerSyncBatch(t *testing.T) {
	t.Run("Returns Aggregated Response", func(t *testing.T) {
		controller := newTestController(&stubSyncUsecase{
			SyncBatchFunc: func(ctx context.Context, request *requests.SyncBatch) (*responses.SyncResponse, error) {
				assert.Equal(t, "device-1", request.DeviceID)
				return &responses.SyncResponse{
					DeviceID:          request.DeviceID,
					TotalRecords:      1,
					SuccessfulRecords: 1,
					Results: []responses.SyncResult{
						{ID: "rec-1", Status: responses.SyncResultStatusSuccess},
					},
				}, nil
			},
		})

		body := `{"deviceId":"device-1","records":[{"id":"rec-1"}]}`
		request := httptest.NewRequest(http.MethodPost, "/sync", strings.NewReader(body))
		recorder := httptest.NewRecorder()

		controller.SyncBatch(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var envelope responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.False(t, envelope.Error)
		assert.Equal(t, "Successfully synced", envelope.Message)
		assert.NotEmpty(t, envelope.Timestamp)

		data := envelope.Data.(map[string]interface{})
		assert.Equal(t, "device-1", data["device_id"])
		assert.Equal(t, float64(1), data["successful_records"])
	})

	t.Run("Malformed Body Is A Bad Request", func(t *testing.T) {
		controller := newTestController(&stubSyncUsecase{})

		request := httptest.NewRequest(http.MethodPost, "/sync", strings.NewReader("{not json"))
		recorder := httptest.NewRecorder()

		controller.SyncBatch(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var envelope responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.True(t, envelope.Error)
	})

	t.Run("Usecase Errors Keep Their Status", func(t *testing.T) {
		controller := newTestController(&stubSyncUsecase{
			SyncBatchFunc: func(ctx context.Context, request *requests.SyncBatch) (*responses.SyncResponse, error) {
				return nil, exceptions.ErrBatchValidation("deviceId: is required")
			},
		})

		request := httptest.NewRequest(http.MethodPost, "/sync", strings.NewReader(`{"records":[{}]}`))
		recorder := httptest.NewRecorder()

		controller.SyncBatch(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var envelope responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.True(t, envelope.Error)
		assert.Contains(t, envelope.Message, "Request validation failed")
	})
}
