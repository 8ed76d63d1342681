package notifications

import (
	"context"
	"time"
	"vitalia-service/internal/app/contracts"
	"vitalia-service/internal/pkg/constvars"
	"vitalia-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Service publishes domain events to a durable RabbitMQ queue with publisher
// confirms. Consumers (mailer, dashboards) run outside this service.
type Service struct {
	ch       *amqp.Channel
	log      *zap.Logger
	confirms chan amqp.Confirmation
}

func NewService(conn *amqp.Connection, log *zap.Logger) (contracts.NotificationQueue, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		constvars.ResponseReceivedEventQueueName, // name
		true,                                     // durable
		false,                                    // autoDelete
		false,                                    // exclusive
		false,                                    // noWait
		nil,                                      // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &Service{
		ch:       ch,
		log:      log,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

func (s *Service) PublishResponseReceived(ctx context.Context, event *contracts.ResponseReceivedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.ch.PublishWithContext(ctx,
		"", // default exchange
		constvars.ResponseReceivedEventQueueName,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, constvars.ResponseReceivedEventQueueName)
	}

	select {
	case confirmation := <-s.confirms:
		if !confirmation.Ack {
			s.log.Error("notification publish not confirmed by broker",
				zap.String(constvars.LoggingQueueNameKey, constvars.ResponseReceivedEventQueueName),
				zap.String(constvars.LoggingResponseIDKey, event.ResponseID),
			)
			return exceptions.ErrRabbitMQPublishMessage(nil, constvars.ResponseReceivedEventQueueName)
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}
