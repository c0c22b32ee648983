package usecase

import (
	"context"

	"acai/internal/domain/entity"
	"acai/internal/domain/pricing"

	"github.com/google/uuid"
)

// BowlOutput is a bowl with its current totals.
type BowlOutput struct {
	Bowl   *entity.Bowl
	Totals pricing.Totals
}

// QuoteInput prices a selection without opening a session. Items may repeat.
type QuoteInput struct {
	StoreID uuid.UUID
	ItemIDs []uuid.UUID
}

// BowlUsecase is the bowl builder.
type BowlUsecase interface {
	// Quote computes the totals of a selection against a store.
	Quote(ctx context.Context, input QuoteInput) (*pricing.Totals, error)

	// StartBowl opens an empty builder session for a listed store.
	StartBowl(ctx context.Context, storeID uuid.UUID) (*BowlOutput, error)

	GetBowl(ctx context.Context, bowlID uuid.UUID) (*BowlOutput, error)

	// AddItem appends an item the store offers.
	AddItem(ctx context.Context, bowlID, itemID uuid.UUID) (*BowlOutput, error)

	// RemoveItemAt removes the item at index. Out-of-range indexes leave the bowl unchanged.
	RemoveItemAt(ctx context.Context, bowlID uuid.UUID, index int) (*BowlOutput, error)

	// DiscardBowl ends the session.
	DiscardBowl(ctx context.Context, bowlID uuid.UUID) error
}
