package subscription

import (
	"context"
	"time"

	vo "github.com/replenish-inc/replenish/internal/domain/subscription/valueobjects"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	GetBySID(ctx context.Context, sid string) (*Subscription, error)
	GetByCustomerID(ctx context.Context, customerID uint) ([]*Subscription, error)
	Update(ctx context.Context, subscription *Subscription) error

	// FindActiveByNextDeliveryDate returns active subscriptions whose next
	// delivery falls on the given calendar day. This is the sweep's due query.
	FindActiveByNextDeliveryDate(ctx context.Context, date time.Time) ([]*Subscription, error)

	CountByStatus(ctx context.Context, status vo.SubscriptionStatus) (int64, error)
}

type ConfirmationRepository interface {
	// Create persists a new confirmation. When another confirmation already
	// exists for the same (subscription, scheduled delivery date) pair, the
	// storage-level uniqueness constraint fires and Create returns
	// ErrDuplicateConfirmation.
	Create(ctx context.Context, confirmation *Confirmation) error
	GetByID(ctx context.Context, id uint) (*Confirmation, error)

	// GetByToken looks up a confirmation by exact token match only.
	GetByToken(ctx context.Context, token string) (*Confirmation, error)

	// FindBySubscriptionAndDate returns the confirmation for one delivery
	// instance, or nil when none exists.
	FindBySubscriptionAndDate(ctx context.Context, subscriptionID uint, scheduledDeliveryDate time.Time) (*Confirmation, error)

	// Consume marks the confirmation as confirmed in one conditional update
	// (WHERE is_confirmed = false). It returns false when the row was already
	// consumed, which closes the double-click race without a read-then-write
	// sequence.
	Consume(ctx context.Context, id uint, response vo.CustomerAction, respondedAt time.Time) (bool, error)

	// DeleteExpiredBefore garbage-collects confirmations whose expiry is older
	// than the cutoff. Expired rows are inert either way; this only trims the
	// table.
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)

	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountPending(ctx context.Context, now time.Time) (int64, error)
	CountConfirmedByResponse(ctx context.Context, response vo.CustomerAction) (int64, error)
}
