package routers

import (
	"livwise-service/internal/app/delivery/http/middlewares"
	"livwise-service/internal/app/services/core/records"

	"github.com/go-chi/chi/v5"
)

func attachRecordRoutes(router chi.Router, middlewares *middlewares.Middlewares, recordController *records.RecordController) {
	router.With(middlewares.Authenticate).Get("/", recordController.ListRecords)
	router.With(middlewares.Authenticate).Get("/{record_id}", recordController.GetRecordByID)
	router.With(middlewares.Authenticate).Get("/patients/{patient_id}", recordController.ListRecordsByPatientID)
}
