// Package kafka publishes events to Kafka with segmentio/kafka-go.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodtrace/pkg/publisher"

	kafkago "github.com/segmentio/kafka-go"
)

// EventTypeHeader carries the event type of every message.
const EventTypeHeader = "event-type"

// Options configure the producer.
type Options struct {
	Brokers []string
	// WriteTimeout bounds a single write. Zero keeps the kafka-go default.
	WriteTimeout time.Duration
}

// writer is the subset of *kafkago.Writer the producer needs.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Producer implements publisher.Publisher on top of a single kafka-go writer.
// The topic is chosen per message and messages are hashed to partitions by key.
type Producer struct {
	w writer
}

var _ publisher.Publisher = (*Producer)(nil)

// NewProducer creates a producer for the given brokers. Connections are made
// lazily on the first publish.
func NewProducer(opts Options) (*Producer, error) {
	if len(opts.Brokers) == 0 {
		return nil, errors.New("kafka: no brokers configured")
	}

	return &Producer{w: &kafkago.Writer{
		Addr:                   kafkago.TCP(opts.Brokers...),
		Balancer:               &kafkago.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafkago.RequireAll,
		WriteTimeout:           opts.WriteTimeout,
		AllowAutoTopicCreation: true,
	}}, nil
}

// Publish writes events synchronously, returning once all brokers acked.
func (p *Producer) Publish(ctx context.Context, events ...publisher.Event) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafkago.Message, 0, len(events))
	for _, e := range events {
		msgs = append(msgs, toMessage(e))
	}
	if err := p.w.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("could not publish %d events: %w", len(msgs), err)
	}

	return nil
}

// Close flushes pending writes and closes connections.
func (p *Producer) Close() error {
	if err := p.w.Close(); err != nil {
		return fmt.Errorf("could not close kafka writer: %w", err)
	}

	return nil
}

func toMessage(e publisher.Event) kafkago.Message {
	m := kafkago.Message{
		Topic: e.Topic,
		Key:   []byte(e.Key),
		Value: e.Payload,
	}
	if e.Type != "" {
		m.Headers = append(m.Headers, kafkago.Header{Key: EventTypeHeader, Value: []byte(e.Type)})
	}
	for k, v := range e.Headers {
		m.Headers = append(m.Headers, kafkago.Header{Key: k, Value: []byte(v)})
	}

	return m
}
