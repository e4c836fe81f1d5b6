package usecases

import (
	"context"
	"time"

	"github.com/replenish-inc/replenish/internal/application/reminder/dto"
	"github.com/replenish-inc/replenish/internal/domain/subscription"
	apperrors "github.com/replenish-inc/replenish/internal/shared/errors"
	"github.com/replenish-inc/replenish/internal/shared/logger"
)

// GetConfirmationUseCase assembles the landing-page view for one token.
// Expired and already-processed confirmations are still rendered, with the
// corresponding flag set, so the page can tell the customer exactly what
// happened; only an unknown token is an error.
type GetConfirmationUseCase struct {
	confirmationRepo subscription.ConfirmationRepository
	subscriptionRepo subscription.SubscriptionRepository
	catalog          ProductCatalog
	logger           logger.Interface
}

func NewGetConfirmationUseCase(
	confirmationRepo subscription.ConfirmationRepository,
	subscriptionRepo subscription.SubscriptionRepository,
	catalog ProductCatalog,
	logger logger.Interface,
) *GetConfirmationUseCase {
	return &GetConfirmationUseCase{
		confirmationRepo: confirmationRepo,
		subscriptionRepo: subscriptionRepo,
		catalog:          catalog,
		logger:           logger,
	}
}

func (uc *GetConfirmationUseCase) Execute(ctx context.Context, token string) (*dto.ConfirmationViewDTO, error) {
	conf, err := uc.confirmationRepo.GetByToken(ctx, token)
	if err != nil {
		uc.logger.Errorw("failed to look up confirmation", "error", err)
		return nil, apperrors.NewInternalError("failed to look up confirmation")
	}
	if conf == nil {
		return nil, apperrors.NewNotFoundError("confirmation not found")
	}

	sub, err := uc.subscriptionRepo.GetByID(ctx, conf.SubscriptionID())
	if err != nil {
		uc.logger.Errorw("failed to load subscription", "error", err, "subscription_id", conf.SubscriptionID())
		return nil, apperrors.NewInternalError("failed to load subscription")
	}
	if sub == nil {
		return nil, apperrors.NewNotFoundError("subscription not found")
	}

	view := &dto.ConfirmationViewDTO{
		SubscriptionSID:       sub.SID(),
		ScheduledDeliveryDate: conf.ScheduledDeliveryDate(),
		Frequency:             sub.Frequency().String(),
		Quantity:              sub.Quantity(),
		IsExpired:             conf.IsExpired(time.Now().UTC()),
		IsAlreadyProcessed:    conf.IsConfirmed(),
	}

	product, err := uc.catalog.GetProduct(ctx, sub.ProductID())
	if err != nil || product == nil {
		// Render the page without catalog data rather than failing it.
		uc.logger.Warnw("failed to resolve product for landing view", "error", err, "product_id", sub.ProductID())
		return view, nil
	}

	view.ProductName = product.Name
	view.ProductImageURL = product.ImageURL
	view.TotalAmount = product.Price * float64(sub.Quantity()) * (1 - sub.DiscountPercent()/100)

	return view, nil
}
