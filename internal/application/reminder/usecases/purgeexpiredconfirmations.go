package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/replenish-inc/replenish/internal/domain/subscription"
	"github.com/replenish-inc/replenish/internal/shared/logger"
)

// PurgeExpiredConfirmationsUseCase garbage-collects confirmations long past
// their expiry. Expired rows are already inert; purging only keeps the table
// from growing without bound.
type PurgeExpiredConfirmationsUseCase struct {
	confirmationRepo subscription.ConfirmationRepository
	retention        time.Duration
	logger           logger.Interface
}

func NewPurgeExpiredConfirmationsUseCase(
	confirmationRepo subscription.ConfirmationRepository,
	retention time.Duration,
	logger logger.Interface,
) *PurgeExpiredConfirmationsUseCase {
	return &PurgeExpiredConfirmationsUseCase{
		confirmationRepo: confirmationRepo,
		retention:        retention,
		logger:           logger,
	}
}

func (uc *PurgeExpiredConfirmationsUseCase) Execute(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().Add(-uc.retention)

	purged, err := uc.confirmationRepo.DeleteExpiredBefore(ctx, cutoff)
	if err != nil {
		uc.logger.Errorw("failed to purge expired confirmations", "error", err)
		return 0, fmt.Errorf("failed to purge expired confirmations: %w", err)
	}

	if purged > 0 {
		uc.logger.Infow("expired confirmations purged", "count", purged)
	}
	return purged, nil
}
