// Package amqpnotify publishes offer notifications to RabbitMQ so courier
// clients can react to new offers without waiting for their next poll.
// The broker is an optional accelerant: polling remains the source of truth,
// and the engine runs unchanged when no broker is configured.
package amqpnotify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"

	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeName = "offers_topic"

// offerCreatedMessage is the wire payload for a new-offer notification.
type offerCreatedMessage struct {
	CourierID string    `json:"courier_id"`
	OrderID   string    `json:"order_id"`
	CreatedAt time.Time `json:"created_at"`
}

// AmqpNotifier implements ports.Notifier over a RabbitMQ topic exchange.
// Messages are routed by courier ID, so each client subscribes to exactly
// its own stream.
type AmqpNotifier struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewAmqpNotifier dials the broker and declares the offers exchange.
func NewAmqpNotifier(url string) (*AmqpNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchangeName, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &AmqpNotifier{conn: conn, ch: ch}, nil
}

// NotifyOfferCreated publishes a new-offer notification routed to the courier.
// Transient delivery: a notification that outlives the offer TTL is useless,
// so there is no point persisting it at the broker.
func (n *AmqpNotifier) NotifyOfferCreated(ctx context.Context, courierID, orderID kernel.UUID) error {
	body, err := json.Marshal(offerCreatedMessage{
		CourierID: courierID.String(),
		OrderID:   orderID.String(),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return n.ch.PublishWithContext(ctx,
		exchangeName,
		"courier."+courierID.String(),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Transient,
			ContentType:  "application/json",
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}

// Close releases the channel and connection.
func (n *AmqpNotifier) Close() {
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		_ = n.conn.Close()
	}
}

// NopNotifier is the stand-in used when no broker is configured.
type NopNotifier struct{}

// NotifyOfferCreated does nothing and always succeeds.
func (NopNotifier) NotifyOfferCreated(context.Context, kernel.UUID, kernel.UUID) error {
	return nil
}
