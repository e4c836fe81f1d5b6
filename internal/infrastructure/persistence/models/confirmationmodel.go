package models

import (
	"time"

	"github.com/replenish-inc/replenish/internal/shared/constants"
)

// ConfirmationModel represents the database persistence model for delivery
// confirmations. The composite unique index on (subscription_id,
// scheduled_delivery_date) makes the reminder sweep idempotent at the schema
// level; the unique token index backs bearer-token lookup.
type ConfirmationModel struct {
	ID                    uint      `gorm:"primarykey"`
	SubscriptionID        uint      `gorm:"not null;uniqueIndex:idx_subscription_delivery,priority:1"`
	Token                 string    `gorm:"uniqueIndex;not null;size:64"`
	ScheduledDeliveryDate time.Time `gorm:"not null;uniqueIndex:idx_subscription_delivery,priority:2"`
	IsConfirmed           bool      `gorm:"not null;default:false;index:idx_confirmed"`
	CustomerResponse      *string   `gorm:"size:20"`
	RespondedAt           *time.Time
	CreatedAt             time.Time `gorm:"not null;index:idx_created_at"`
	ExpiresAt             time.Time `gorm:"not null;index:idx_expires_at"`
}

// TableName specifies the table name for GORM
func (ConfirmationModel) TableName() string {
	return constants.TableDeliveryConfirmations
}
