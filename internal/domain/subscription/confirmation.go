package subscription

import (
	"fmt"
	"time"

	vo "github.com/replenish-inc/replenish/internal/domain/subscription/valueobjects"
)

// Confirmation is a single-use, time-boxed record of one reminder instance.
// The token is an opaque bearer secret; whoever holds it may act on exactly
// this delivery, exactly once, until expiresAt.
type Confirmation struct {
	id                    uint
	subscriptionID        uint
	token                 string
	scheduledDeliveryDate time.Time
	isConfirmed           bool
	customerResponse      *vo.CustomerAction
	respondedAt           *time.Time
	createdAt             time.Time
	expiresAt             time.Time
}

// NewConfirmation creates an unconsumed confirmation for one delivery instance.
func NewConfirmation(subscriptionID uint, token string, scheduledDeliveryDate, expiresAt time.Time) (*Confirmation, error) {
	if subscriptionID == 0 {
		return nil, fmt.Errorf("subscription ID is required")
	}
	if token == "" {
		return nil, fmt.Errorf("token is required")
	}
	if scheduledDeliveryDate.IsZero() {
		return nil, fmt.Errorf("scheduled delivery date is required")
	}

	if expiresAt.IsZero() {
		return nil, fmt.Errorf("expiry is required")
	}

	return &Confirmation{
		subscriptionID:        subscriptionID,
		token:                 token,
		scheduledDeliveryDate: scheduledDeliveryDate,
		createdAt:             time.Now().UTC(),
		expiresAt:             expiresAt,
	}, nil
}

// ReconstructConfirmation rebuilds a confirmation from persistence.
func ReconstructConfirmation(
	id, subscriptionID uint,
	token string,
	scheduledDeliveryDate time.Time,
	isConfirmed bool,
	customerResponse *vo.CustomerAction,
	respondedAt *time.Time,
	createdAt, expiresAt time.Time,
) (*Confirmation, error) {
	if id == 0 {
		return nil, fmt.Errorf("confirmation ID cannot be zero")
	}
	if subscriptionID == 0 {
		return nil, fmt.Errorf("subscription ID is required")
	}
	if isConfirmed && customerResponse == nil {
		return nil, fmt.Errorf("confirmed record must carry a customer response")
	}

	return &Confirmation{
		id:                    id,
		subscriptionID:        subscriptionID,
		token:                 token,
		scheduledDeliveryDate: scheduledDeliveryDate,
		isConfirmed:           isConfirmed,
		customerResponse:      customerResponse,
		respondedAt:           respondedAt,
		createdAt:             createdAt,
		expiresAt:             expiresAt,
	}, nil
}

func (c *Confirmation) ID() uint                             { return c.id }
func (c *Confirmation) SubscriptionID() uint                 { return c.subscriptionID }
func (c *Confirmation) Token() string                        { return c.token }
func (c *Confirmation) ScheduledDeliveryDate() time.Time     { return c.scheduledDeliveryDate }
func (c *Confirmation) IsConfirmed() bool                    { return c.isConfirmed }
func (c *Confirmation) CustomerResponse() *vo.CustomerAction { return c.customerResponse }
func (c *Confirmation) RespondedAt() *time.Time              { return c.respondedAt }
func (c *Confirmation) CreatedAt() time.Time                 { return c.createdAt }
func (c *Confirmation) ExpiresAt() time.Time                 { return c.expiresAt }

// SetID sets the confirmation ID (only for persistence layer use)
func (c *Confirmation) SetID(newID uint) error {
	if c.id != 0 {
		return fmt.Errorf("confirmation ID is already set")
	}
	if newID == 0 {
		return fmt.Errorf("confirmation ID cannot be zero")
	}
	c.id = newID
	return nil
}

// IsExpired reports whether the confirmation is past its expiry at the given
// instant. An expired confirmation is never actable, consumed or not.
func (c *Confirmation) IsExpired(now time.Time) bool {
	return now.After(c.expiresAt)
}

// Confirm consumes the confirmation with the customer's response. A consumed
// confirmation is immutable terminal state; consuming twice fails.
func (c *Confirmation) Confirm(action vo.CustomerAction, now time.Time) error {
	if c.isConfirmed {
		return ErrConfirmationAlreadyProcessed
	}
	if c.IsExpired(now) {
		return ErrConfirmationExpired
	}
	if !action.IsValid() {
		return ErrInvalidAction
	}

	c.isConfirmed = true
	c.customerResponse = &action
	respondedAt := now
	c.respondedAt = &respondedAt
	return nil
}
