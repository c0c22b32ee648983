package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "acai/internal/delivery/context"
	"acai/internal/domain/entity"
	"acai/internal/domain/service"

	"github.com/google/uuid"
)

func newStoreEvent(ctx context.Context, eventType string, store *entity.Store, actorID uuid.UUID) *service.StoreEvent {
	event := &service.StoreEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		StoreID:    store.ID.String(),
		StoreName:  store.Name,
		OwnerID:    store.OwnerID.String(),
		Status:     store.Status.String(),
		OccurredAt: time.Now().UTC(),
	}
	if actorID != uuid.Nil {
		event.ActorID = actorID.String()
	}

	return event
}

// publishStoreEvent is best effort: the state change already happened, so a
// failed publish is logged and not returned.
func publishStoreEvent(ctx context.Context, logger *slog.Logger, publisher service.EventPublisher, event *service.StoreEvent) {
	if err := publisher.PublishStoreEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish store event",
			slog.String("event_type", event.Type),
			slog.String("store_id", event.StoreID),
			slog.Any("error", err),
		)
	}
}
