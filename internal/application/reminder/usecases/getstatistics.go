package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/replenish-inc/replenish/internal/application/reminder/dto"
	"github.com/replenish-inc/replenish/internal/domain/subscription"
	vo "github.com/replenish-inc/replenish/internal/domain/subscription/valueobjects"
	"github.com/replenish-inc/replenish/internal/shared/biztime"
	"github.com/replenish-inc/replenish/internal/shared/logger"
)

// GetStatisticsUseCase is a read-only rollup over subscriptions and
// confirmations. It reads an eventually-consistent snapshot and is safe to
// call concurrently with the sweep and the action processor.
type GetStatisticsUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	confirmationRepo subscription.ConfirmationRepository
	logger           logger.Interface
}

func NewGetStatisticsUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	confirmationRepo subscription.ConfirmationRepository,
	logger logger.Interface,
) *GetStatisticsUseCase {
	return &GetStatisticsUseCase{
		subscriptionRepo: subscriptionRepo,
		confirmationRepo: confirmationRepo,
		logger:           logger,
	}
}

func (uc *GetStatisticsUseCase) Execute(ctx context.Context, now time.Time) (*dto.StatisticsDTO, error) {
	stats := &dto.StatisticsDTO{}

	var err error
	if stats.TotalActiveSubscriptions, err = uc.subscriptionRepo.CountByStatus(ctx, vo.StatusActive); err != nil {
		return nil, fmt.Errorf("failed to count active subscriptions: %w", err)
	}

	dayStart, dayEnd := biztime.StartOfDayUTC(now), biztime.EndOfDayUTC(now)
	if stats.RemindersSentToday, err = uc.confirmationRepo.CountCreatedBetween(ctx, dayStart, dayEnd); err != nil {
		return nil, fmt.Errorf("failed to count reminders sent today: %w", err)
	}

	if stats.PendingConfirmations, err = uc.confirmationRepo.CountPending(ctx, now); err != nil {
		return nil, fmt.Errorf("failed to count pending confirmations: %w", err)
	}

	if stats.ConfirmedCount, err = uc.confirmationRepo.CountConfirmedByResponse(ctx, vo.ActionContinue); err != nil {
		return nil, fmt.Errorf("failed to count continue responses: %w", err)
	}
	if stats.PausedCount, err = uc.confirmationRepo.CountConfirmedByResponse(ctx, vo.ActionPause); err != nil {
		return nil, fmt.Errorf("failed to count pause responses: %w", err)
	}
	if stats.CancelledCount, err = uc.confirmationRepo.CountConfirmedByResponse(ctx, vo.ActionCancel); err != nil {
		return nil, fmt.Errorf("failed to count cancel responses: %w", err)
	}

	return stats, nil
}
