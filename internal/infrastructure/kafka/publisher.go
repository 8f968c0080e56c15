// Package kafka publica los eventos de dominio en Kafka como sobres JSON.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/ports"
)

var (
	_ ports.EventPublisher = (*Publisher)(nil)
	_ ports.EventPublisher = NopPublisher{}
)

// Envelope sobre común a todos los eventos.
type Envelope struct {
	EventID      string          `json:"event_id"`
	EventType    string          `json:"event_type"`
	EventVersion int             `json:"event_version"`
	OccurredAt   time.Time       `json:"occurred_at"`
	Producer     string          `json:"producer"`
	Payload      json.RawMessage `json:"payload"`
}

// NewEnvelope envuelve payload. El tipo de evento es el topic.
func NewEnvelope(producer, topic string, payload any) (Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("serializar payload de %s: %w", topic, err)
	}
	return Envelope{
		EventID:      uuid.New().String(),
		EventType:    topic,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     producer,
		Payload:      raw,
	}, nil
}

// messageWriter lo que usamos de *kafka.Writer.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher escribe eventos de forma síncrona; el topic va en cada mensaje.
// La clave de partición es el id del agregado (producto), así los eventos de un producto quedan ordenados.
type Publisher struct {
	w        messageWriter
	producer string
	timeout  time.Duration
}

// NewPublisher construye el publisher sobre los brokers dados.
func NewPublisher(brokers []string, producer string) *Publisher {
	return newPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}, producer)
}

func newPublisher(w messageWriter, producer string) *Publisher {
	return &Publisher{w: w, producer: producer, timeout: 5 * time.Second}
}

// Publish serializa el evento y lo escribe en topic con la clave key.
func (p *Publisher) Publish(ctx context.Context, topic, key string, payload any) error {
	env, err := NewEnvelope(p.producer, topic, payload)
	if err != nil {
		return err
	}
	value, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("serializar evento %s: %w", topic, err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = p.w.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
		Time:  env.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(topic)},
			{Key: "event_id", Value: []byte(env.EventID)},
		},
	})
	if err != nil {
		return fmt.Errorf("publicar %s: %w", topic, err)
	}
	return nil
}

// Close vacía y cierra el writer.
func (p *Publisher) Close() error {
	return p.w.Close()
}

// NopPublisher descarta los eventos (sin brokers configurados).
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, string, any) error { return nil }
func (NopPublisher) Close() error                                       { return nil }
