package routers

import (
	"livwise-service/internal/app/delivery/http/middlewares"
	"livwise-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	router.With(middlewares.Authenticate).Get("/", patientController.ListPatients)
	router.With(middlewares.Authenticate).Get("/{patient_id}", patientController.GetPatientByID)
}
