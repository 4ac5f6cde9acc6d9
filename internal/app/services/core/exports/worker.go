package exports

import (
	"context"
	"fmt"
	"livwise-service/internal/app/config"
	"livwise-service/internal/pkg/dto/requests"
	"time"

	"go.uber.org/zap"
)

// Worker periodically exports the previous day's records, so exports exist
// even when nobody calls the endpoint.
type Worker struct {
	log     *zap.Logger
	cfg     *config.InternalConfig
	usecase ExportUsecase
	stop    chan struct{}
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, usecase ExportUsecase) *Worker {
	return &Worker{
		log:     log,
		cfg:     cfg,
		usecase: usecase,
		stop:    make(chan struct{}),
	}
}

// Start begins the ticker loop. It returns a stop function to halt execution.
func (w *Worker) Start(ctx context.Context) (stop func()) {
	interval := time.Duration(w.cfg.Sync.ExportIntervalInHours) * time.Hour
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	ticker := time.NewTicker(interval)

	fmt.Println("Export worker started")

	go func() {
		for {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-w.stop:
				ticker.Stop()
				return
			case now := <-ticker.C:
				w.runOnce(ctx, now)
			}
		}
	}()

	return func() {
		close(w.stop)
	}
}

func (w *Worker) runOnce(ctx context.Context, now time.Time) {
	w.log.Info("export worker tick", zap.Time("now", now))

	runCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	response, err := w.usecase.ExportDailyRecords(runCtx, &requests.ExportDailyRecords{})
	if err != nil {
		w.log.Error("scheduled export failed", zap.Error(err))
		return
	}

	w.log.Info("scheduled export finished",
		zap.Int("successful_exports", response.SuccessfulExports),
		zap.Int("failed_exports", response.FailedExports),
	)
}
