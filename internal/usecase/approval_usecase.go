package usecase

import (
	"context"

	"acai/internal/domain/approval"
	"acai/internal/domain/entity"

	"github.com/google/uuid"
)

// ApprovalOutput is the store after the decision and what changed.
type ApprovalOutput struct {
	Store   *entity.Store
	Outcome approval.Outcome
}

// ApprovalUsecase is the admin side of the approval workflow.
type ApprovalUsecase interface {
	// ApproveStore approves (approved=true) or rejects the store. Only admins may call it.
	ApproveStore(ctx context.Context, actor Actor, storeID uuid.UUID, approved bool) (*ApprovalOutput, error)
}
