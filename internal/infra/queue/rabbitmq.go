package mq

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Publisher publishes JSON events to a topic exchange. Consumers (client
// notification frontends, analytics) are external to this service.
type Publisher struct {
	ch       *amqp.Channel
	exchange string
	log      *zap.Logger
}

func NewPublisher(conn *amqp.Connection, exchange string, log *zap.Logger) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return nil, err
	}
	return &Publisher{ch: ch, exchange: exchange, log: log}, nil
}

func (p *Publisher) Close() error { return p.ch.Close() }

func (p *Publisher) PublishJSON(ctx context.Context, routingKey string, body any) error {
	b, err := sonic.Marshal(body)
	if err != nil {
		return err
	}

	ctx, span := otel.Tracer("mq").Start(ctx, "rabbitmq.publish",
		trace.WithAttributes(
			attribute.String("messaging.system", "rabbitmq"),
			attribute.String("messaging.destination", p.exchange),
			attribute.String("messaging.rabbitmq.routing_key", routingKey),
		))
	defer span.End()

	publishing := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         b,
	}

	if err := p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, publishing); err != nil {
		span.RecordError(err)
		p.log.Warn("publish failed", zap.String("routing_key", routingKey), zap.Error(err))
		return err
	}
	return nil
}
