package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/replenish-inc/replenish/internal/domain/subscription"
	"github.com/replenish-inc/replenish/internal/shared/biztime"
	"github.com/replenish-inc/replenish/internal/shared/config"
	"github.com/replenish-inc/replenish/internal/shared/logger"
)

// SendPendingRemindersUseCase runs one reminder sweep: it finds active
// subscriptions whose next delivery is leadDays away, issues a confirmation
// per delivery instance, and dispatches the reminder email.
//
// The sweep is idempotent for a given day: a composite uniqueness constraint
// on (subscription, scheduled delivery date) backs the existence check, so
// re-running the sweep never produces duplicate confirmations. Per-item
// failures are logged and skipped; the sweep itself only fails when the due
// query fails.
type SendPendingRemindersUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	confirmationRepo subscription.ConfirmationRepository
	tokenGen         TokenGenerator
	notifier         ReminderNotifier
	directory        CustomerDirectory
	catalog          ProductCatalog
	reminderCfg      config.ReminderConfig
	dispatchTimeout  time.Duration
	logger           logger.Interface
}

func NewSendPendingRemindersUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	confirmationRepo subscription.ConfirmationRepository,
	tokenGen TokenGenerator,
	notifier ReminderNotifier,
	directory CustomerDirectory,
	catalog ProductCatalog,
	reminderCfg config.ReminderConfig,
	dispatchTimeout time.Duration,
	logger logger.Interface,
) *SendPendingRemindersUseCase {
	return &SendPendingRemindersUseCase{
		subscriptionRepo: subscriptionRepo,
		confirmationRepo: confirmationRepo,
		tokenGen:         tokenGen,
		notifier:         notifier,
		directory:        directory,
		catalog:          catalog,
		reminderCfg:      reminderCfg,
		dispatchTimeout:  dispatchTimeout,
		logger:           logger,
	}
}

// Execute sweeps for subscriptions due a reminder on the given day and
// returns the number of reminders successfully dispatched.
func (uc *SendPendingRemindersUseCase) Execute(ctx context.Context, today time.Time) (int, error) {
	targetDate := biztime.DateOnly(today).AddDate(0, 0, uc.reminderCfg.LeadDays)

	subs, err := uc.subscriptionRepo.FindActiveByNextDeliveryDate(ctx, targetDate)
	if err != nil {
		uc.logger.Errorw("failed to query due subscriptions", "error", err, "target_date", biztime.FormatDate(targetDate))
		return 0, fmt.Errorf("failed to query due subscriptions: %w", err)
	}

	uc.logger.Infow("reminder sweep started",
		"today", biztime.FormatDate(today),
		"target_date", biztime.FormatDate(targetDate),
		"candidates", len(subs),
	)

	sent := 0
	for _, sub := range subs {
		if uc.remind(ctx, sub, today) {
			sent++
		}
	}

	uc.logger.Infow("reminder sweep finished", "candidates", len(subs), "sent", sent)
	return sent, nil
}

// remind handles a single candidate. Returns true when the reminder email was
// dispatched. Failures never abort the sweep.
func (uc *SendPendingRemindersUseCase) remind(ctx context.Context, sub *subscription.Subscription, today time.Time) bool {
	log := uc.logger.With("subscription_id", sub.ID(), "sid", sub.SID())

	existing, err := uc.confirmationRepo.FindBySubscriptionAndDate(ctx, sub.ID(), sub.NextDeliveryDate())
	if err != nil {
		log.Errorw("failed to check for existing confirmation", "error", err)
		return false
	}
	if existing != nil {
		log.Debugw("reminder already issued for this delivery",
			"delivery_date", biztime.FormatDate(sub.NextDeliveryDate()))
		return false
	}

	token, err := uc.tokenGen.Generate()
	if err != nil {
		log.Errorw("failed to generate confirmation token", "error", err)
		return false
	}

	expiresAt := biztime.DateOnly(today).AddDate(0, 0, uc.reminderCfg.TokenExpiryDays)
	conf, err := subscription.NewConfirmation(sub.ID(), token, sub.NextDeliveryDate(), expiresAt)
	if err != nil {
		log.Errorw("failed to build confirmation", "error", err)
		return false
	}

	if err := uc.confirmationRepo.Create(ctx, conf); err != nil {
		if errors.Is(err, subscription.ErrDuplicateConfirmation) {
			// A concurrent sweep won the insert; the customer is covered.
			log.Debugw("confirmation created by concurrent sweep",
				"delivery_date", biztime.FormatDate(sub.NextDeliveryDate()))
			return false
		}
		log.Errorw("failed to create confirmation", "error", err)
		return false
	}

	recipient, err := uc.directory.GetRecipient(ctx, sub.CustomerID())
	if err != nil || recipient == nil {
		log.Warnw("failed to resolve recipient, skipping dispatch", "error", err, "customer_id", sub.CustomerID())
		return false
	}

	product, err := uc.catalog.GetProduct(ctx, sub.ProductID())
	if err != nil || product == nil {
		log.Warnw("failed to resolve product, skipping dispatch", "error", err, "product_id", sub.ProductID())
		return false
	}

	dispatchCtx, cancel := context.WithTimeout(ctx, uc.dispatchTimeout)
	defer cancel()

	if err := uc.notifier.SendSubscriptionReminder(dispatchCtx, recipient.Email, recipient.Name, product.Name, sub.NextDeliveryDate(), expiresAt, token); err != nil {
		log.Warnw("failed to dispatch reminder", "error", err, "email", recipient.Email)
		return false
	}

	log.Infow("reminder dispatched",
		"delivery_date", biztime.FormatDate(sub.NextDeliveryDate()),
		"expires_at", biztime.FormatDate(expiresAt),
	)
	return true
}
