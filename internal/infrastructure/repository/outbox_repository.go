package repository

import (
	"time"

	"github.com/monopay/monopay-api/internal/domain"

	"gorm.io/gorm"
)

// OutboxRepository implements domain.OutboxRepository
type OutboxRepository struct {
	db *gorm.DB
}

// NewOutboxRepository creates a new outbox repository
func NewOutboxRepository(db *gorm.DB) domain.OutboxRepository {
	return &OutboxRepository{db: db}
}

// Create records a new pending event
func (r *OutboxRepository) Create(event *domain.OutboxEvent) error {
	event.Status = domain.OutboxStatusPending
	event.CreatedAt = time.Now()
	return r.db.Create(event).Error
}

// GetPendingEvents retrieves pending events oldest first
func (r *OutboxRepository) GetPendingEvents(limit int) ([]*domain.OutboxEvent, error) {
	var events []*domain.OutboxEvent
	result := r.db.
		Where("status = ?", domain.OutboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

// MarkAsProcessed marks an event as successfully handled
func (r *OutboxRepository) MarkAsProcessed(id int64) error {
	now := time.Now()
	return r.db.Model(&domain.OutboxEvent{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       domain.OutboxStatusProcessed,
			"processed_at": &now,
		}).Error
}

// MarkAsFailed marks an event as permanently failed
func (r *OutboxRepository) MarkAsFailed(id int64, reason string) error {
	return r.db.Model(&domain.OutboxEvent{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     domain.OutboxStatusFailed,
			"last_error": reason,
		}).Error
}

// IncrementRetryCount bumps the retry counter for a failed attempt
func (r *OutboxRepository) IncrementRetryCount(id int64) error {
	return r.db.Model(&domain.OutboxEvent{}).
		Where("id = ?", id).
		Update("retry_count", gorm.Expr("retry_count + 1")).Error
}
