package messaging

import "context"

type Publisher interface {
	Publish(ctx context.Context, queueName string, payload interface{}) error
}
