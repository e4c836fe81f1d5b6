package dto

import (
	"time"

	"github.com/replenish-inc/replenish/internal/domain/subscription"
)

type SubscriptionDTO struct {
	SID              string     `json:"sid"`
	CustomerID       uint       `json:"customer_id"`
	ProductID        uint       `json:"product_id"`
	Frequency        string     `json:"frequency"`
	Quantity         int        `json:"quantity"`
	DiscountPercent  float64    `json:"discount_percent"`
	Status           string     `json:"status"`
	StartDate        time.Time  `json:"start_date"`
	NextDeliveryDate time.Time  `json:"next_delivery_date"`
	PauseUntil       *time.Time `json:"pause_until,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func FromEntity(sub *subscription.Subscription) *SubscriptionDTO {
	if sub == nil {
		return nil
	}
	return &SubscriptionDTO{
		SID:              sub.SID(),
		CustomerID:       sub.CustomerID(),
		ProductID:        sub.ProductID(),
		Frequency:        sub.Frequency().String(),
		Quantity:         sub.Quantity(),
		DiscountPercent:  sub.DiscountPercent(),
		Status:           sub.Status().String(),
		StartDate:        sub.StartDate(),
		NextDeliveryDate: sub.NextDeliveryDate(),
		PauseUntil:       sub.PauseUntil(),
		CreatedAt:        sub.CreatedAt(),
		UpdatedAt:        sub.UpdatedAt(),
	}
}
