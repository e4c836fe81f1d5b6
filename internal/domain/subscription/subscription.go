package subscription

import (
	"fmt"
	"time"

	vo "github.com/replenish-inc/replenish/internal/domain/subscription/valueobjects"
	"github.com/replenish-inc/replenish/internal/shared/id"
)

// Subscription is the recurring-delivery aggregate root. Customer, product,
// payment method and shipping address are opaque references owned elsewhere.
type Subscription struct {
	id                uint
	sid               string
	customerID        uint
	productID         uint
	paymentMethodID   uint
	shippingAddressID uint
	frequency         vo.Frequency
	quantity          int
	discountPercent   float64
	status            vo.SubscriptionStatus
	startDate         time.Time
	nextDeliveryDate  time.Time
	pauseUntil        *time.Time
	metadata          map[string]interface{}
	version           int
	createdAt         time.Time
	updatedAt         time.Time
}

// NewSubscription creates an active subscription starting at startDate with
// the first delivery computed from the frequency.
func NewSubscription(customerID, productID, paymentMethodID, shippingAddressID uint, frequency vo.Frequency, quantity int, discountPercent float64, startDate time.Time) (*Subscription, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if !frequency.IsValid() {
		return nil, fmt.Errorf("invalid frequency: %s", frequency)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}
	if discountPercent < 0 || discountPercent > 100 {
		return nil, fmt.Errorf("discount percent must be between 0 and 100")
	}

	now := time.Now().UTC()
	return &Subscription{
		sid:               id.MustGenerateWithPrefix(id.PrefixSubscription, id.DefaultLength),
		customerID:        customerID,
		productID:         productID,
		paymentMethodID:   paymentMethodID,
		shippingAddressID: shippingAddressID,
		frequency:         frequency,
		quantity:          quantity,
		discountPercent:   discountPercent,
		status:            vo.StatusActive,
		startDate:         startDate,
		nextDeliveryDate:  NextDeliveryDate(startDate, frequency),
		metadata:          make(map[string]interface{}),
		version:           1,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// ReconstructParams carries persisted state back into the aggregate.
type ReconstructParams struct {
	ID                uint
	SID               string
	CustomerID        uint
	ProductID         uint
	PaymentMethodID   uint
	ShippingAddressID uint
	Frequency         vo.Frequency
	Quantity          int
	DiscountPercent   float64
	Status            vo.SubscriptionStatus
	StartDate         time.Time
	NextDeliveryDate  time.Time
	PauseUntil        *time.Time
	Metadata          map[string]interface{}
	Version           int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ReconstructSubscription rebuilds a subscription from persistence.
func ReconstructSubscription(p ReconstructParams) (*Subscription, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}

	metadata := p.Metadata
	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	s := &Subscription{
		id:                p.ID,
		sid:               p.SID,
		customerID:        p.CustomerID,
		productID:         p.ProductID,
		paymentMethodID:   p.PaymentMethodID,
		shippingAddressID: p.ShippingAddressID,
		frequency:         p.Frequency,
		quantity:          p.Quantity,
		discountPercent:   p.DiscountPercent,
		status:            p.Status,
		startDate:         p.StartDate,
		nextDeliveryDate:  p.NextDeliveryDate,
		pauseUntil:        p.PauseUntil,
		metadata:          metadata,
		version:           p.Version,
		createdAt:         p.CreatedAt,
		updatedAt:         p.UpdatedAt,
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Subscription) ID() uint                         { return s.id }
func (s *Subscription) SID() string                      { return s.sid }
func (s *Subscription) CustomerID() uint                 { return s.customerID }
func (s *Subscription) ProductID() uint                  { return s.productID }
func (s *Subscription) PaymentMethodID() uint            { return s.paymentMethodID }
func (s *Subscription) ShippingAddressID() uint          { return s.shippingAddressID }
func (s *Subscription) Frequency() vo.Frequency          { return s.frequency }
func (s *Subscription) Quantity() int                    { return s.quantity }
func (s *Subscription) DiscountPercent() float64         { return s.discountPercent }
func (s *Subscription) Status() vo.SubscriptionStatus    { return s.status }
func (s *Subscription) StartDate() time.Time             { return s.startDate }
func (s *Subscription) NextDeliveryDate() time.Time      { return s.nextDeliveryDate }
func (s *Subscription) PauseUntil() *time.Time           { return s.pauseUntil }
func (s *Subscription) Metadata() map[string]interface{} { return s.metadata }
func (s *Subscription) Version() int                     { return s.version }
func (s *Subscription) CreatedAt() time.Time             { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time             { return s.updatedAt }

// SetID sets the subscription ID (only for persistence layer use)
func (s *Subscription) SetID(newID uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if newID == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = newID
	return nil
}

// Pause pauses the subscription until the given resume date. The resume date
// is mandatory: pause state cannot exist without it.
func (s *Subscription) Pause(until time.Time) error {
	if s.status == vo.StatusPaused {
		return nil
	}
	if !s.status.CanTransitionTo(vo.StatusPaused) {
		return ErrInvalidTransition(s.status.String(), vo.StatusPaused.String())
	}
	if until.IsZero() {
		return ErrPauseDateRequired
	}

	s.status = vo.StatusPaused
	s.pauseUntil = &until
	s.touch()
	return nil
}

// Resume reactivates a paused subscription and clears the pause date.
func (s *Subscription) Resume() error {
	if s.status == vo.StatusActive {
		return nil
	}
	if !s.status.CanTransitionTo(vo.StatusActive) {
		return ErrInvalidTransition(s.status.String(), vo.StatusActive.String())
	}

	s.status = vo.StatusActive
	s.pauseUntil = nil
	s.touch()
	return nil
}

// Cancel moves the subscription to its terminal state.
func (s *Subscription) Cancel() error {
	if s.status == vo.StatusCancelled {
		return nil
	}
	if !s.status.CanTransitionTo(vo.StatusCancelled) {
		return ErrInvalidTransition(s.status.String(), vo.StatusCancelled.String())
	}

	s.status = vo.StatusCancelled
	s.touch()
	return nil
}

// AdvanceNextDelivery moves the delivery schedule forward one interval.
// Called by the order-generation process after a successful delivery.
func (s *Subscription) AdvanceNextDelivery() error {
	if s.status != vo.StatusActive {
		return fmt.Errorf("cannot advance delivery for subscription with status %s", s.status)
	}

	s.nextDeliveryDate = NextDeliveryDate(s.nextDeliveryDate, s.frequency)
	s.touch()
	return nil
}

// IsActive reports whether the subscription is currently delivering.
func (s *Subscription) IsActive() bool {
	return s.status == vo.StatusActive
}

func (s *Subscription) touch() {
	s.updatedAt = time.Now().UTC()
	s.version++
}

// Validate performs domain-level validation
func (s *Subscription) Validate() error {
	if s.customerID == 0 {
		return fmt.Errorf("customer ID is required")
	}
	if s.productID == 0 {
		return fmt.Errorf("product ID is required")
	}
	if !vo.ValidStatuses[s.status] {
		return fmt.Errorf("invalid status: %s", s.status)
	}
	if s.quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if s.status == vo.StatusPaused && s.pauseUntil == nil {
		return fmt.Errorf("paused subscription must carry a pause-until date")
	}
	return nil
}
