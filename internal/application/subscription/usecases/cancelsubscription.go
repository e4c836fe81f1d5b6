package usecases

import (
	"context"

	"github.com/replenish-inc/replenish/internal/domain/subscription"
	apperrors "github.com/replenish-inc/replenish/internal/shared/errors"
	"github.com/replenish-inc/replenish/internal/shared/logger"
)

type CancelSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	logger           logger.Interface
}

func NewCancelSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	logger logger.Interface,
) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, sid string) error {
	sub, err := loadBySID(ctx, uc.subscriptionRepo, sid)
	if err != nil {
		return err
	}

	if err := sub.Cancel(); err != nil {
		return mapTransitionError(err)
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update subscription", "error", err, "sid", sid)
		return apperrors.NewInternalError("failed to update subscription")
	}

	uc.logger.Infow("subscription cancelled", "sid", sid)
	return nil
}
