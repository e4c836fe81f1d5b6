package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/replenish-inc/replenish/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for subscriptions
// This is the anti-corruption layer between domain and database
type SubscriptionModel struct {
	ID                uint      `gorm:"primarykey"`
	SID               string    `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: sub_xxx"`
	CustomerID        uint      `gorm:"not null;index:idx_customer_subscription"`
	ProductID         uint      `gorm:"not null;index:idx_product_subscription"`
	PaymentMethodID   uint      `gorm:"not null"`
	ShippingAddressID uint      `gorm:"not null"`
	Frequency         string    `gorm:"not null;size:20"`
	Quantity          int       `gorm:"not null;default:1"`
	DiscountPercent   float64   `gorm:"not null;default:0"`
	Status            string    `gorm:"not null;size:20;index:idx_status_next_delivery,priority:1"`
	StartDate         time.Time `gorm:"not null"`
	NextDeliveryDate  time.Time `gorm:"not null;index:idx_status_next_delivery,priority:2"`
	PauseUntil        *time.Time
	Metadata          datatypes.JSON
	Version           int `gorm:"not null;default:1"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

// BeforeCreate hook for GORM
func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.Version == 0 {
		s.Version = 1
	}
	return nil
}
