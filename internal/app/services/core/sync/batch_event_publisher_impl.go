package sync

import (
	"context"
	"livwise-service/internal/app/services/shared/messaging"
	"livwise-service/internal/pkg/dto/responses"
)

type batchEventPublisher struct {
	Publisher messaging.Publisher
	QueueName string
}

func NewBatchEventPublisher(publisher messaging.Publisher, queueName string) BatchEventPublisher {
	return &batchEventPublisher{
		Publisher: publisher,
		QueueName: queueName,
	}
}

func (p *batchEventPublisher) PublishBatchCompleted(ctx context.Context, response *responses.SyncResponse) error {
	return p.Publisher.Publish(ctx, p.QueueName, response)
}
