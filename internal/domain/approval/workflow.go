// Package approval implements the store approval state machine.
//
//	pending ──approve──▶ approved (listed)
//	   └─────reject───▶ rejected
//
// Both outcomes are terminal. Replaying the outcome a store already has is a no-op.
package approval

import (
	"time"

	"acai/internal/domain/entity"
	domainerrors "acai/internal/domain/errors"
)

// Decision is an admin's verdict on a store.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// DecisionFromBool maps the approved flag of the admin action to a Decision.
func DecisionFromBool(approved bool) Decision {
	if approved {
		return DecisionApprove
	}

	return DecisionReject
}

// Target returns the status the decision leads to.
func (d Decision) Target() entity.StoreStatus {
	if d == DecisionApprove {
		return entity.StoreStatusApproved
	}

	return entity.StoreStatusRejected
}

// Outcome describes what Apply did.
type Outcome struct {
	From    entity.StoreStatus
	To      entity.StoreStatus
	Changed bool
}

// Apply transitions the store in place. It returns ErrStatusTransition, leaving
// the store untouched, when the store already reached the other terminal status.
func Apply(store *entity.Store, decision Decision, now time.Time) (Outcome, error) {
	from := store.Status
	to := decision.Target()

	switch {
	case from == to:
		return Outcome{From: from, To: to}, nil
	case from.IsTerminal():
		return Outcome{From: from, To: from}, domainerrors.ErrStatusTransition.WithDetails(
			"store is already " + from.String(),
		)
	}

	store.Status = to
	store.IsPublic = to == entity.StoreStatusApproved
	store.UpdatedAt = now

	return Outcome{From: from, To: to, Changed: true}, nil
}
