package sync

import (
	"context"
	"livwise-service/internal/app/config"
	"livwise-service/internal/pkg/constvars"
	"livwise-service/internal/pkg/dto/requests"
	"livwise-service/internal/pkg/exceptions"
	"livwise-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SyncController struct {
	Log            *zap.Logger
	SyncUsecase    SyncUsecase
	InternalConfig *config.InternalConfig
}

func NewSyncController(logger *zap.Logger, syncUsecase SyncUsecase, internalConfig *config.InternalConfig) *SyncController {
	return &SyncController{
		Log:            logger,
		SyncUsecase:    syncUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *SyncController) SyncBatch(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SyncBatch)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	timeout := time.Duration(ctrl.InternalConfig.Sync.RequestTimeoutInSeconds) * time.Second
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	response, err := ctrl.SyncUsecase.SyncBatch(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SyncSuccessMessage, response)
}
