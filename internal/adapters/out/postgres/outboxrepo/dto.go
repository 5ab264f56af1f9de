// Package outboxrepo persists integration events in a transactional outbox
// table. A relay job drains the table and produces the payloads to the
// message bus, giving at-least-once delivery decoupled from request handling.
package outboxrepo

import (
	"time"

	"ordering/internal/core/ports"
)

// MessageDTO represents one outbox row. SentAt is NULL until the relay has
// produced the payload to the bus.
type MessageDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	EventID   string `gorm:"type:uuid;uniqueIndex"`
	Topic     string
	Key       string
	Payload   []byte     `gorm:"type:jsonb"`
	CreatedAt time.Time  `gorm:"index"`
	SentAt    *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox messages.
func (MessageDTO) TableName() string {
	return "outbox_messages"
}

func fromPort(message ports.OutboxMessage) MessageDTO {
	return MessageDTO{
		ID:        message.ID,
		EventID:   message.EventID,
		Topic:     message.Topic,
		Key:       message.Key,
		Payload:   message.Payload,
		CreatedAt: message.CreatedAt,
		SentAt:    message.SentAt,
	}
}

func toPort(dto MessageDTO) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:        dto.ID,
		EventID:   dto.EventID,
		Topic:     dto.Topic,
		Key:       dto.Key,
		Payload:   dto.Payload,
		CreatedAt: dto.CreatedAt,
		SentAt:    dto.SentAt,
	}
}
