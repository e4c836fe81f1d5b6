package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/replenish-inc/replenish/internal/domain/subscription"
	apperrors "github.com/replenish-inc/replenish/internal/shared/errors"
	"github.com/replenish-inc/replenish/internal/shared/logger"
)

type PauseSubscriptionCommand struct {
	SID        string
	PauseUntil time.Time
}

type PauseSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	logger           logger.Interface
}

func NewPauseSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	logger logger.Interface,
) *PauseSubscriptionUseCase {
	return &PauseSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *PauseSubscriptionUseCase) Execute(ctx context.Context, cmd PauseSubscriptionCommand) error {
	sub, err := loadBySID(ctx, uc.subscriptionRepo, cmd.SID)
	if err != nil {
		return err
	}

	if err := sub.Pause(cmd.PauseUntil); err != nil {
		return mapTransitionError(err)
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update subscription", "error", err, "sid", cmd.SID)
		return apperrors.NewInternalError("failed to update subscription")
	}

	uc.logger.Infow("subscription paused", "sid", cmd.SID, "pause_until", cmd.PauseUntil)
	return nil
}

// loadBySID resolves a subscription by public identifier, translating absence
// into a not-found error.
func loadBySID(ctx context.Context, repo subscription.SubscriptionRepository, sid string) (*subscription.Subscription, error) {
	sub, err := repo.GetBySID(ctx, sid)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load subscription")
	}
	if sub == nil {
		return nil, apperrors.NewNotFoundError("subscription not found", sid)
	}
	return sub, nil
}

func mapTransitionError(err error) error {
	if errors.Is(err, subscription.ErrInvalidStatusTransition) {
		return apperrors.NewConflictError("subscription state does not permit this action", err.Error())
	}
	if errors.Is(err, subscription.ErrPauseDateRequired) {
		return apperrors.NewValidationError("pause requires a pause-until date")
	}
	return apperrors.NewInternalError(err.Error())
}
