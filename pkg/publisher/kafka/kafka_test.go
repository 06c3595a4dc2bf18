package kafka

import (
	"context"
	"errors"
	"testing"

	"foodtrace/pkg/publisher"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafkago.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)

	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true

	return nil
}

func TestNewProducer(t *testing.T) {
	_, err := NewProducer(Options{})
	require.Error(t, err)

	p, err := NewProducer(Options{Brokers: []string{"localhost:9092"}})
	require.NoError(t, err)
	w, ok := p.w.(*kafkago.Writer)
	require.True(t, ok)
	require.IsType(t, &kafkago.Hash{}, w.Balancer)
	require.Empty(t, w.Topic, "topic is chosen per message")
}

func TestProducer_Publish(t *testing.T) {
	fw := &fakeWriter{}
	p := &Producer{w: fw}

	require.NoError(t, p.Publish(context.Background()))
	require.Empty(t, fw.msgs)

	err := p.Publish(context.Background(), publisher.Event{
		Topic:   "foodtrace.recalls",
		Key:     "B2024X",
		Type:    "product.recalled",
		Payload: []byte(`{"recall_id":1}`),
		Headers: map[string]string{"request-id": "abc"},
	})
	require.NoError(t, err)
	require.Len(t, fw.msgs, 1)

	m := fw.msgs[0]
	require.Equal(t, "foodtrace.recalls", m.Topic)
	require.Equal(t, []byte("B2024X"), m.Key)
	require.JSONEq(t, `{"recall_id":1}`, string(m.Value))
	require.Equal(t, []kafkago.Header{
		{Key: EventTypeHeader, Value: []byte("product.recalled")},
		{Key: "request-id", Value: []byte("abc")},
	}, m.Headers)

	require.NoError(t, p.Close())
	require.True(t, fw.closed)
}

func TestProducer_PublishError(t *testing.T) {
	boom := errors.New("leader not available")
	p := &Producer{w: &fakeWriter{err: boom}}

	err := p.Publish(context.Background(), publisher.Event{Topic: "t", Key: "k"})
	require.ErrorIs(t, err, boom)
}
