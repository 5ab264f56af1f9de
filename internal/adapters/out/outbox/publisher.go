// Package outbox implements the EventPublisher port on top of the
// transactional outbox: publishing an event appends a row, and the relay job
// later produces it to the message bus.
package outbox

import (
	"context"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// orderPlacedPayload is the wire form of an OrderPlaced event.
// Consumers deduplicate by eventId.
type orderPlacedPayload struct {
	EventID    string    `json:"eventId"`
	EventType  string    `json:"eventType"`
	OrderID    string    `json:"orderId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EventPublisher appends integration events to the outbox table instead of
// producing them directly, so delivery survives broker downtime.
type EventPublisher struct {
	outboxRepo ports.OutboxRepository
	topic      string
}

// NewEventPublisher creates an outbox-backed event publisher for the given topic.
func NewEventPublisher(outboxRepo ports.OutboxRepository, topic string) *EventPublisher {
	return &EventPublisher{
		outboxRepo: outboxRepo,
		topic:      topic,
	}
}

// PublishOrderPlaced serializes the event and appends it to the outbox.
// The message key is the order id, so all events of one order keep their
// relative order on a partitioned bus.
func (p *EventPublisher) PublishOrderPlaced(ctx context.Context, event order.OrderPlacedEvent) error {
	payload, err := json.Marshal(orderPlacedPayload{
		EventID:    event.EventID.String(),
		EventType:  order.EventTypeOrderPlaced,
		OrderID:    event.OrderID.String(),
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("marshal order placed event: %w", err)
	}

	return p.outboxRepo.Add(ctx, ports.OutboxMessage{
		EventID: event.EventID.String(),
		Topic:   p.topic,
		Key:     event.OrderID.String(),
		Payload: payload,
	})
}
