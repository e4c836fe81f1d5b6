package usecases

import (
	"context"

	"github.com/replenish-inc/replenish/internal/application/subscription/dto"
	"github.com/replenish-inc/replenish/internal/domain/subscription"
	"github.com/replenish-inc/replenish/internal/shared/logger"
)

type GetSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	logger           logger.Interface
}

func NewGetSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	logger logger.Interface,
) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, sid string) (*dto.SubscriptionDTO, error) {
	sub, err := loadBySID(ctx, uc.subscriptionRepo, sid)
	if err != nil {
		return nil, err
	}
	return dto.FromEntity(sub), nil
}
