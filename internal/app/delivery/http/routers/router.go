package routers

import (
	"fmt"
	"livwise-service/internal/app/config"
	"livwise-service/internal/app/delivery/http/middlewares"
	"livwise-service/internal/app/services/core/exports"
	"livwise-service/internal/app/services/core/patients"
	"livwise-service/internal/app/services/core/records"
	syncService "livwise-service/internal/app/services/core/sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	syncController *syncService.SyncController,
	recordController *records.RecordController,
	patientController *patients.PatientController,
	exportController *exports.ExportController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/sync", func(r chi.Router) {
				attachSyncRoutes(r, middlewares, syncController)
			})

			r.Route("/records", func(r chi.Router) {
				attachRecordRoutes(r, middlewares, recordController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController)
			})

			r.Route("/exports", func(r chi.Router) {
				attachExportRoutes(r, middlewares, exportController)
			})
		})
	})
}
