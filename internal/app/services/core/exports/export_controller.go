package exports

import (
	"context"
	"io"
	"livwise-service/internal/pkg/constvars"
	"livwise-service/internal/pkg/dto/requests"
	"livwise-service/internal/pkg/exceptions"
	"livwise-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ExportController struct {
	Log           *zap.Logger
	ExportUsecase ExportUsecase
}

func NewExportController(logger *zap.Logger, exportUsecase ExportUsecase) *ExportController {
	return &ExportController{
		Log:           logger,
		ExportUsecase: exportUsecase,
	}
}

func (ctrl *ExportController) ExportDailyRecords(w http.ResponseWriter, r *http.Request) {
	// An empty body means export yesterday.
	request := new(requests.ExportDailyRecords)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil && err != io.EOF {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	response, err := ctrl.ExportUsecase.ExportDailyRecords(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ExportSuccessMessage, response)
}
