package usecases

import (
	"context"

	"github.com/replenish-inc/replenish/internal/domain/subscription"
	apperrors "github.com/replenish-inc/replenish/internal/shared/errors"
	"github.com/replenish-inc/replenish/internal/shared/logger"
)

type ResumeSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	logger           logger.Interface
}

func NewResumeSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	logger logger.Interface,
) *ResumeSubscriptionUseCase {
	return &ResumeSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ResumeSubscriptionUseCase) Execute(ctx context.Context, sid string) error {
	sub, err := loadBySID(ctx, uc.subscriptionRepo, sid)
	if err != nil {
		return err
	}

	if err := sub.Resume(); err != nil {
		return mapTransitionError(err)
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update subscription", "error", err, "sid", sid)
		return apperrors.NewInternalError("failed to update subscription")
	}

	uc.logger.Infow("subscription resumed", "sid", sid)
	return nil
}
