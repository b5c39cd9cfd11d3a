package domain

import "time"

// Outbox event types
const (
	EventTypeGameFinished = "game.finished"
)

// Outbox event statuses
const (
	OutboxStatusPending   = "pending"
	OutboxStatusProcessed = "processed"
	OutboxStatusFailed    = "failed"
)

// OutboxEvent is a deferred side effect recorded for background processing.
// Post-game stat updates flow through here so a crash mid-update is retried
// rather than leaving half-applied stats.
type OutboxEvent struct {
	ID          int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Type        string         `json:"type" gorm:"type:varchar(32);not null"`
	Data        map[string]any `json:"data" gorm:"serializer:json;type:jsonb"`
	Status      string         `json:"status" gorm:"index;type:varchar(16);not null;default:'pending'"`
	RetryCount  int            `json:"retry_count" gorm:"not null;default:0"`
	LastError   string         `json:"last_error" gorm:"type:varchar(512)"`
	CreatedAt   time.Time      `json:"created_at" gorm:"not null"`
	ProcessedAt *time.Time     `json:"processed_at,omitempty"`
}

// TableName specifies the table name for OutboxEvent
func (e OutboxEvent) TableName() string {
	return "outbox_events"
}

// OutboxRepository defines the interface for outbox event data
type OutboxRepository interface {
	Create(event *OutboxEvent) error
	GetPendingEvents(limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(id int64) error
	MarkAsFailed(id int64, reason string) error
	IncrementRetryCount(id int64) error
}

// OutboxProcessor defines the interface for the background event processor
type OutboxProcessor interface {
	Start(interval time.Duration)
	Stop()
	ProcessEvents() error
}
