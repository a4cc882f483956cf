// Package kafka publishes order lifecycle events to a Kafka topic so board
// views can refresh without polling the API.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/ericks0nmartinez/burger/internal/core/ports"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Publisher implements ports.EventPublisher on top of franz-go.
// Events are keyed by order id so consumers see per-order ordering.
type Publisher struct {
	client *kgo.Client
	topic  string
}

// NewPublisher creates a Kafka publisher for the given brokers and topic.
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	opts := []kgo.Opt{
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProduceRequestTimeout(10 * time.Second),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ClientID("burger-api"),
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, err
	}

	return &Publisher{client: client, topic: topic}, nil
}

// Publish sends the event synchronously, respecting the context deadline.
func (p *Publisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: data,
	}

	return p.client.ProduceSync(ctx, record).FirstErr()
}

// Close flushes pending records and closes the client.
func (p *Publisher) Close() error {
	p.client.Close()
	return nil
}

// LogPublisher is the fallback publisher used when no broker is configured.
// It writes events to the structured log and never fails.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a publisher that only logs events.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs the event.
func (p *LogPublisher) Publish(_ context.Context, event ports.OrderEvent) error {
	p.logger.Info("order event",
		"eventId", event.EventID,
		"type", event.Type,
		"orderId", event.OrderID,
		"status", event.Status,
	)
	return nil
}

// Close is a no-op.
func (p *LogPublisher) Close() error {
	return nil
}
