package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the category service.
const (
	TopicCategoryCreated = "category.created"
	TopicCategoryUpdated = "category.updated"
	TopicCategoryDeleted = "category.deleted"
)

// Version is the current schema version of every category event.
// Increment on breaking changes.
const Version = 1

// CategoryCreatedEvent is published after a new Category is saved.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicCategoryCreated).
type CategoryCreatedEvent struct {
	EventID     uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version     int       `json:"version"`
	CategoryID  string    `json:"category_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// CategoryUpdatedEvent carries the state of a Category after an update.
type CategoryUpdatedEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	Version     int       `json:"version"`
	CategoryID  string    `json:"category_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// CategoryDeletedEvent is published after a Category is removed.
type CategoryDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	CategoryID string    `json:"category_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
