package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "acai/internal/delivery/context"
	"acai/internal/domain/approval"
	"acai/internal/domain/entity"
	domainerrors "acai/internal/domain/errors"
	"acai/internal/domain/repository"
	"acai/internal/domain/service"
	"acai/internal/errors"
	"acai/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type approvalService struct {
	storeRepo repository.StoreRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// ApprovalServiceParams holds dependencies for ApprovalService, injected by Fx.
type ApprovalServiceParams struct {
	fx.In

	StoreRepo repository.StoreRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewApprovalService creates the admin approval workflow service.
func NewApprovalService(params ApprovalServiceParams) usecase.ApprovalUsecase {
	return &approvalService{
		storeRepo: params.StoreRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *approvalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ApproveStore applies the admin decision. Replaying a decision changes nothing and
// publishes nothing; an unknown store leaves every store untouched.
func (srv *approvalService) ApproveStore(ctx context.Context, actor usecase.Actor, storeID uuid.UUID, approved bool) (*usecase.ApprovalOutput, error) {
	logger := srv.log(ctx).With(
		slog.String("store_id", storeID.String()),
		slog.Bool("approved", approved),
	)

	if !actor.Is(entity.RoleAdmin) {
		logger.Warn("Store decision refused for non-admin actor", slog.String("actor_id", actor.UserID.String()))

		return nil, domainerrors.ErrForbidden
	}

	decision := approval.DecisionFromBool(approved)
	var outcome approval.Outcome
	store, err := srv.storeRepo.Modify(ctx, storeID, func(s *entity.Store) error {
		var applyErr error
		outcome, applyErr = approval.Apply(s, decision, time.Now().UTC())

		return applyErr
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrStoreNotFound):
			logger.Warn("Decision for unknown store ignored")

			return nil, domainerrors.ErrStoreNotFound
		case errors.Is(err, domainerrors.ErrStatusTransition):
			logger.Info("Store decision conflicts with current status", slog.Any("error", err))

			return nil, err
		default:
			return nil, errors.Wrap(err, "failed to apply store decision")
		}
	}

	if outcome.Changed {
		logger.Info("Store status changed",
			slog.String("from", outcome.From.String()),
			slog.String("to", outcome.To.String()),
		)
		eventType := service.EventStoreRejected
		if outcome.To == entity.StoreStatusApproved {
			eventType = service.EventStoreApproved
		}
		publishStoreEvent(ctx, logger, srv.publisher, newStoreEvent(ctx, eventType, store, actor.UserID))
	}

	return &usecase.ApprovalOutput{Store: store, Outcome: outcome}, nil
}
