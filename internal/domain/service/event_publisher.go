package service

import (
	"context"
	"time"
)

// Store lifecycle event types.
const (
	EventStoreSubmitted = "store.submitted"
	EventStoreApproved  = "store.approved"
	EventStoreRejected  = "store.rejected"
)

// StoreEvent is published whenever a store changes approval status.
type StoreEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	StoreID    string    `json:"store_id"`
	StoreName  string    `json:"store_name"`
	OwnerID    string    `json:"owner_id"`
	Status     string    `json:"status"`
	ActorID    string    `json:"actor_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishStoreEvent publishes a store lifecycle event
	PublishStoreEvent(ctx context.Context, event *StoreEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
