package ports

import (
	"context"
	"time"
)

// OutboxMessage is a serialized integration event awaiting relay to the
// message bus. Rows are appended when an event is published and marked sent
// once the relay has produced them, giving at-least-once delivery.
type OutboxMessage struct {
	ID        int64
	EventID   string
	Topic     string
	Key       string
	Payload   []byte
	CreatedAt time.Time
	SentAt    *time.Time
}

// OutboxRepository is the persistence contract for the transactional outbox.
type OutboxRepository interface {
	// Add appends a pending message to the outbox.
	Add(ctx context.Context, message OutboxMessage) error

	// GetPending returns up to limit unsent messages in insertion order.
	GetPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkSent records that a message has been produced to the bus.
	MarkSent(ctx context.Context, id int64) error
}
