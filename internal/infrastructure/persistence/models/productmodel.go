package models

import (
	"time"

	"github.com/replenish-inc/replenish/internal/shared/constants"
)

// ProductModel is the minimal product projection rendered in reminder emails
// and the confirmation landing page.
type ProductModel struct {
	ID        uint    `gorm:"primarykey"`
	Name      string  `gorm:"not null;size:255"`
	ImageURL  string  `gorm:"size:500"`
	Price     float64 `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ProductModel) TableName() string {
	return constants.TableProducts
}
