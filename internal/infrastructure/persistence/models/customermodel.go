package models

import (
	"time"

	"github.com/replenish-inc/replenish/internal/shared/constants"
)

// CustomerModel is the minimal customer projection the reminder workflow
// reads. The customer table is owned by the storefront; this service only
// resolves contact details from it.
type CustomerModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:255"`
	Email     string `gorm:"not null;size:255;index:idx_email"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (CustomerModel) TableName() string {
	return constants.TableCustomers
}
