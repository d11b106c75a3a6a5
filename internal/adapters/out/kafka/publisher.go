// Package kafka publishes committed order status changes to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"icetube/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

var ErrPublisherClosed = errors.New("order event publisher is closed")

// Writer is the part of *kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderStatusChangedMessage is the JSON payload written to the topic.
type OrderStatusChangedMessage struct {
	OrderID    string          `json:"order_id"`
	From       string          `json:"from"`
	To         string          `json:"to"`
	Quantity   int             `json:"quantity"`
	Size       string          `json:"size"`
	Total      decimal.Decimal `json:"total"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// OrderEventPublisher implements ports.OrderEventPublisher. Messages are keyed
// by order id so the events of one order stay on one partition.
type OrderEventPublisher struct {
	writer Writer
	topic  string
	closed atomic.Bool
}

// NewOrderEventPublisher writes synchronously to topic on the given brokers.
func NewOrderEventPublisher(topic string, brokers ...string) *OrderEventPublisher {
	return NewOrderEventPublisherWithWriter(topic, &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		MaxAttempts:            3,
		AllowAutoTopicCreation: true,
	})
}

func NewOrderEventPublisherWithWriter(topic string, writer Writer) *OrderEventPublisher {
	return &OrderEventPublisher{writer: writer, topic: topic}
}

func (p *OrderEventPublisher) PublishStatusChanged(ctx context.Context, event order.StatusChanged) error {
	if p.closed.Load() {
		return ErrPublisherClosed
	}

	payload, err := json.Marshal(OrderStatusChangedMessage{
		OrderID:    event.OrderID.String(),
		From:       fromStatus(event.From),
		To:         event.To.String(),
		Quantity:   event.Quantity,
		Size:       event.Size,
		Total:      event.Total,
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("order.status_changed")},
		},
	})
	if err != nil {
		return fmt.Errorf("publish to %s: %w", p.topic, err)
	}
	return nil
}

// Close flushes and closes the writer. Further publishes fail.
func (p *OrderEventPublisher) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	return p.writer.Close()
}

// fromStatus reports a freshly created order as coming from "".
func fromStatus(s order.Status) string {
	if s == order.Unknown {
		return ""
	}
	return s.String()
}
