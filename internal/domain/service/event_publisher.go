package service

import (
	"context"
	"time"
)

// AvailabilityChangedEvent is published after a status change is committed.
type AvailabilityChangedEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	StoreID    int64     `json:"store_id"`
	StoreName  string    `json:"store_name"`
	FlavorName string    `json:"flavor_name"`
	Available  uint8     `json:"available"`
	Previous   uint8     `json:"previous"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAvailabilityChanged publishes a status change for async processing
	PublishAvailabilityChanged(ctx context.Context, event *AvailabilityChangedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
