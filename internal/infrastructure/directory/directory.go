// Package directory resolves opaque customer and product references against
// the storefront tables this service shares a database with.
package directory

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/replenish-inc/replenish/internal/application/reminder/usecases"
	"github.com/replenish-inc/replenish/internal/infrastructure/persistence/models"
	"github.com/replenish-inc/replenish/internal/shared/logger"
)

type GormDirectory struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewGormDirectory(db *gorm.DB, logger logger.Interface) *GormDirectory {
	return &GormDirectory{db: db, logger: logger}
}

// GetRecipient returns the contact details for a customer, or nil when the
// customer record no longer exists.
func (d *GormDirectory) GetRecipient(ctx context.Context, customerID uint) (*usecases.Recipient, error) {
	var model models.CustomerModel

	if err := d.db.WithContext(ctx).First(&model, customerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		d.logger.Errorw("failed to get customer", "customer_id", customerID, "error", err)
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &usecases.Recipient{
		Name:  model.Name,
		Email: model.Email,
	}, nil
}

// GetProduct returns display data for a product, or nil when the product
// record no longer exists.
func (d *GormDirectory) GetProduct(ctx context.Context, productID uint) (*usecases.Product, error) {
	var model models.ProductModel

	if err := d.db.WithContext(ctx).First(&model, productID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		d.logger.Errorw("failed to get product", "product_id", productID, "error", err)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &usecases.Product{
		Name:     model.Name,
		ImageURL: model.ImageURL,
		Price:    model.Price,
	}, nil
}
