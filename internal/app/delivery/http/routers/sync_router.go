package routers

import (
	"livwise-service/internal/app/delivery/http/middlewares"
	syncService "livwise-service/internal/app/services/core/sync"

	"github.com/go-chi/chi/v5"
)

func attachSyncRoutes(router chi.Router, middlewares *middlewares.Middlewares, syncController *syncService.SyncController) {
	router.With(middlewares.Authenticate).Post("/", syncController.SyncBatch)
}
