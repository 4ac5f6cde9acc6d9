package sync

import (
	"context"
	"livwise-service/internal/pkg/dto/requests"
	"livwise-service/internal/pkg/dto/responses"
)

type SyncUsecase interface {
	SyncBatch(ctx context.Context, request *requests.SyncBatch) (*responses.SyncResponse, error)
}

// MedicalRecordRepository persists one normalized record under the
// idempotency guard: a record that already reached SYNCED is never replaced.
type MedicalRecordRepository interface {
	PutSynced(ctx context.Context, document map[string]interface{}, recordID string) error
}

// BatchEventPublisher notifies downstream consumers that a batch finished.
// Publishing is best effort and never fails a batch.
type BatchEventPublisher interface {
	PublishBatchCompleted(ctx context.Context, result *responses.SyncResponse) error
}
