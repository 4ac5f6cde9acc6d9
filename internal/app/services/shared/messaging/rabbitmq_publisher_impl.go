package messaging

import (
	"context"
	"livwise-service/internal/pkg/constvars"
	"livwise-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type rabbitMQPublisher struct {
	channel *amqp091.Channel
}

func NewRabbitMQPublisher(conn *amqp091.Connection) (Publisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQPublish(err)
	}
	return &rabbitMQPublisher{channel: channel}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, queueName string, payload interface{}) error {
	_, err := p.channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = p.channel.PublishWithContext(ctx, "", queueName, false, false, amqp091.Publishing{
		ContentType: constvars.MIMEApplicationJSON,
		Body:        body,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err)
	}
	return nil
}
