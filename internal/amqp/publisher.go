package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dineshjasuja/SmartExpenseTracker/internal/websocket"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const publishTimeout = 5 * time.Second

// channel is the subset of *amqp091.Channel the publisher needs
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// EventMessage is the body published for every domain event
type EventMessage struct {
	UserID string          `json:"userId"`
	Event  websocket.Event `json:"event"`
}

// Publisher forwards domain events to a topic exchange. The routing key is
// the event type, e.g. "expense.created".
type Publisher struct {
	conn     *amqp091.Connection
	channel  channel
	exchange string
}

// Ensure Publisher implements EventPublisher
var _ websocket.EventPublisher = (*Publisher)(nil)

// NewPublisher dials the broker and declares the exchange
func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Publisher{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
	}, nil
}

// Publish sends the event to the broker. Failures are logged and never
// propagated to the caller.
func (p *Publisher) Publish(userID string, event websocket.Event) {
	if err := p.publish(context.Background(), userID, event); err != nil {
		log.Warn().
			Err(err).
			Str("user_id", userID).
			Str("event_type", event.Type).
			Str("exchange", p.exchange).
			Msg("Failed to publish event to broker")
	}
}

func (p *Publisher) publish(ctx context.Context, userID string, event websocket.Event) error {
	msg, err := buildPublishing(userID, event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := p.channel.PublishWithContext(ctx, p.exchange, event.Type, false, false, msg); err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	log.Debug().
		Str("user_id", userID).
		Str("event_type", event.Type).
		Str("exchange", p.exchange).
		Msg("Published event to broker")

	return nil
}

func buildPublishing(userID string, event websocket.Event) (amqp091.Publishing, error) {
	body, err := json.Marshal(EventMessage{UserID: userID, Event: event})
	if err != nil {
		return amqp091.Publishing{}, fmt.Errorf("marshal message: %w", err)
	}

	return amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    event.Timestamp,
		Type:         event.Type,
		Body:         body,
	}, nil
}

// Close releases the channel and the connection
func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
