package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublisher_EscribeSobreConClaveYTopic(t *testing.T) {
	w := &fakeWriter{}
	p := newPublisher(w, "ecommerce-admin-api")

	err := p.Publish(context.Background(), "sales.recorded", "prod-1", map[string]any{"quantity": 3})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "sales.recorded", msg.Topic)
	assert.Equal(t, "prod-1", string(msg.Key))

	var env Envelope
	require.NoError(t, json.Unmarshal(msg.Value, &env))
	assert.Equal(t, "sales.recorded", env.EventType)
	assert.Equal(t, "ecommerce-admin-api", env.Producer)
	assert.Equal(t, 1, env.EventVersion)
	assert.NotEmpty(t, env.EventID)
	assert.JSONEq(t, `{"quantity":3}`, string(env.Payload))
}

func TestPublisher_PropagaErrorDelBroker(t *testing.T) {
	w := &fakeWriter{err: errors.New("leader not available")}
	p := newPublisher(w, "api")

	err := p.Publish(context.Background(), "inventory.low_stock", "k", struct{}{})
	assert.ErrorContains(t, err, "inventory.low_stock")

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestNewEnvelope_PayloadInvalido(t *testing.T) {
	_, err := NewEnvelope("api", "t", make(chan int))
	assert.Error(t, err)
}

func TestNopPublisher(t *testing.T) {
	var p NopPublisher
	assert.NoError(t, p.Publish(context.Background(), "t", "k", nil))
	assert.NoError(t, p.Close())
}
