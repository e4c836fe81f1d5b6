package usecases

import (
	"context"
	"time"

	"github.com/replenish-inc/replenish/internal/application/subscription/dto"
	"github.com/replenish-inc/replenish/internal/domain/subscription"
	vo "github.com/replenish-inc/replenish/internal/domain/subscription/valueobjects"
	apperrors "github.com/replenish-inc/replenish/internal/shared/errors"
	"github.com/replenish-inc/replenish/internal/shared/logger"
)

type CreateSubscriptionCommand struct {
	CustomerID        uint
	ProductID         uint
	PaymentMethodID   uint
	ShippingAddressID uint
	Frequency         string
	Quantity          int
	DiscountPercent   float64
	StartDate         time.Time
}

type CreateSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	logger           logger.Interface
}

func NewCreateSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	logger logger.Interface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, cmd CreateSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	frequency, err := vo.NewFrequency(cmd.Frequency)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid frequency", cmd.Frequency)
	}

	startDate := cmd.StartDate
	if startDate.IsZero() {
		startDate = time.Now().UTC()
	}

	sub, err := subscription.NewSubscription(
		cmd.CustomerID, cmd.ProductID, cmd.PaymentMethodID, cmd.ShippingAddressID,
		frequency, cmd.Quantity, cmd.DiscountPercent, startDate,
	)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
		uc.logger.Errorw("failed to create subscription", "error", err, "customer_id", cmd.CustomerID)
		return nil, apperrors.NewInternalError("failed to create subscription")
	}

	uc.logger.Infow("subscription created",
		"subscription_id", sub.ID(),
		"sid", sub.SID(),
		"customer_id", sub.CustomerID(),
		"frequency", sub.Frequency().String(),
	)

	return dto.FromEntity(sub), nil
}
