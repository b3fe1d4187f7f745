package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/dineshjasuja/SmartExpenseTracker/internal/websocket"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	exchange string
	key      string
	msgs     []amqp091.Publishing
	err      error
	closed   bool
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.exchange = exchange
	f.key = key
	f.msgs = append(f.msgs, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{channel: ch, exchange: "expense-events"}

	event := websocket.ExpenseCreated(map[string]interface{}{"id": "12", "amount": "250"})
	p.Publish("auth0|alice", event)

	require.Len(t, ch.msgs, 1)
	assert.Equal(t, "expense-events", ch.exchange)
	assert.Equal(t, "expense.created", ch.key)

	msg := ch.msgs[0]
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp091.Persistent, msg.DeliveryMode)
	assert.Equal(t, "expense.created", msg.Type)

	var decoded EventMessage
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, "auth0|alice", decoded.UserID)
	assert.Equal(t, "expense.created", decoded.Event.Type)
	assert.Equal(t, websocket.EntityTypeExpense, decoded.Event.Entity)
}

func TestPublisher_Publish_BrokerError(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	p := &Publisher{channel: ch, exchange: "expense-events"}

	assert.NotPanics(t, func() {
		p.Publish("auth0|alice", websocket.AccountCleared(nil))
	})
	assert.Empty(t, ch.msgs)
}

func TestBuildPublishing_UnserializablePayload(t *testing.T) {
	_, err := buildPublishing("auth0|alice", websocket.ExpenseUpdated(make(chan int)))
	assert.Error(t, err)
}

func TestPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{channel: ch}

	assert.NoError(t, p.Close())
	assert.True(t, ch.closed)
}
