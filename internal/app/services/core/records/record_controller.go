package records

import (
	"context"
	"livwise-service/internal/pkg/constvars"
	"livwise-service/internal/pkg/dto/requests"
	"livwise-service/internal/pkg/exceptions"
	"livwise-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RecordController struct {
	Log           *zap.Logger
	RecordUsecase RecordUsecase
}

func NewRecordController(logger *zap.Logger, recordUsecase RecordUsecase) *RecordController {
	return &RecordController{
		Log:           logger,
		RecordUsecase: recordUsecase,
	}
}

func (ctrl *RecordController) ListRecords(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	request := &requests.ListRecords{
		FacilityName: query.Get(constvars.URLQueryParamFacilityName),
		StartDate:    query.Get(constvars.URLQueryParamStartDate),
		EndDate:      query.Get(constvars.URLQueryParamEndDate),
	}
	if rawLimit := query.Get(constvars.URLQueryParamLimit); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
		request.Limit = limit
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RecordUsecase.ListRecords(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecordListSuccessMessage, response)
}

func (ctrl *RecordController) GetRecordByID(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, constvars.URLParamRecordID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RecordUsecase.GetRecordByID(ctx, recordID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecordGetSuccessMessage, response)
}

func (ctrl *RecordController) ListRecordsByPatientID(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RecordUsecase.ListRecordsByPatientID(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecordListSuccessMessage, response)
}
