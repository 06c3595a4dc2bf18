// Package publisher delivers domain events to downstream subscribers.
//
//go:generate mockgen -package mockpublisher -source=publisher.go -destination=mock/mockpublisher.go *
package publisher

import (
	"context"

	"foodtrace/pkg/logger"

	"go.uber.org/zap"
)

// Event is a serialized domain event addressed to a topic.
type Event struct {
	Topic string
	// Key selects the partition; events with the same key keep their order.
	Key     string
	Type    string
	Payload []byte
	Headers map[string]string
}

// Publisher sends events to a message broker.
type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
	Close() error
}

// LogPublisher writes events to the structured log. It is used when no
// broker is configured.
type LogPublisher struct{}

// NewLogPublisher returns a LogPublisher.
func NewLogPublisher() *LogPublisher { return &LogPublisher{} }

func (LogPublisher) Publish(ctx context.Context, events ...Event) error {
	for _, e := range events {
		logger.Info(ctx, "event published",
			zap.String("topic", e.Topic),
			zap.String("key", e.Key),
			zap.String("type", e.Type),
			zap.ByteString("payload", e.Payload),
		)
	}

	return nil
}

func (LogPublisher) Close() error { return nil }
