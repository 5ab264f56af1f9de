package outboxrepo

import (
	"context"
	"time"

	"ordering/internal/core/ports"

	"gorm.io/gorm"
)

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add appends a pending message to the outbox.
func (r *GormOutboxRepository) Add(ctx context.Context, message ports.OutboxMessage) error {
	dto := fromPort(message)
	if dto.CreatedAt.IsZero() {
		dto.CreatedAt = time.Now().UTC()
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetPending returns up to limit unsent messages in insertion order.
func (r *GormOutboxRepository) GetPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Where("sent_at IS NULL").
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		messages = append(messages, toPort(dto))
	}

	return messages, nil
}

// MarkSent records that a message has been produced to the bus.
func (r *GormOutboxRepository) MarkSent(ctx context.Context, id int64) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id = ?", id).
		Update("sent_at", &now).Error
}
