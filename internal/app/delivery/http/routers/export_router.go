package routers

import (
	"livwise-service/internal/app/delivery/http/middlewares"
	"livwise-service/internal/app/services/core/exports"

	"github.com/go-chi/chi/v5"
)

func attachExportRoutes(router chi.Router, middlewares *middlewares.Middlewares, exportController *exports.ExportController) {
	router.With(middlewares.Authenticate).Post("/", exportController.ExportDailyRecords)
}
