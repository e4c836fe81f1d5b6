package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/replenish-inc/replenish/internal/domain/subscription"
	vo "github.com/replenish-inc/replenish/internal/domain/subscription/valueobjects"
	"github.com/replenish-inc/replenish/internal/infrastructure/persistence/mappers"
	"github.com/replenish-inc/replenish/internal/infrastructure/persistence/models"
	"github.com/replenish-inc/replenish/internal/shared/biztime"
	"github.com/replenish-inc/replenish/internal/shared/db"
	apperrors "github.com/replenish-inc/replenish/internal/shared/errors"
	"github.com/replenish-inc/replenish/internal/shared/logger"
)

type ConfirmationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ConfirmationMapper
	logger logger.Interface
}

func NewConfirmationRepository(
	db *gorm.DB,
	logger logger.Interface,
) subscription.ConfirmationRepository {
	return &ConfirmationRepositoryImpl{
		db:     db,
		mapper: mappers.NewConfirmationMapper(),
		logger: logger,
	}
}

func (r *ConfirmationRepositoryImpl) Create(ctx context.Context, confirmationEntity *subscription.Confirmation) error {
	model, err := r.mapper.ToModel(confirmationEntity)
	if err != nil {
		r.logger.Errorw("failed to map confirmation entity to model", "error", err)
		return fmt.Errorf("failed to map confirmation entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		// Unique index on (subscription_id, scheduled_delivery_date): a
		// concurrent sweep already inserted this delivery's confirmation.
		if apperrors.IsDuplicateError(err) {
			return subscription.ErrDuplicateConfirmation
		}
		r.logger.Errorw("failed to create confirmation in database", "error", err)
		return fmt.Errorf("failed to create confirmation: %w", err)
	}

	if err := confirmationEntity.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set confirmation ID", "error", err)
		return fmt.Errorf("failed to set confirmation ID: %w", err)
	}

	r.logger.Debugw("confirmation created", "id", model.ID, "subscription_id", model.SubscriptionID)
	return nil
}

func (r *ConfirmationRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Confirmation, error) {
	var model models.ConfirmationModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get confirmation by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get confirmation: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map confirmation model to entity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map confirmation: %w", err)
	}

	return entity, nil
}

func (r *ConfirmationRepositoryImpl) GetByToken(ctx context.Context, token string) (*subscription.Confirmation, error) {
	var model models.ConfirmationModel

	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get confirmation by token", "error", err)
		return nil, fmt.Errorf("failed to get confirmation: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map confirmation model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map confirmation: %w", err)
	}

	return entity, nil
}

func (r *ConfirmationRepositoryImpl) FindBySubscriptionAndDate(ctx context.Context, subscriptionID uint, scheduledDeliveryDate time.Time) (*subscription.Confirmation, error) {
	var model models.ConfirmationModel

	start := biztime.StartOfDayUTC(scheduledDeliveryDate)
	end := biztime.EndOfDayUTC(scheduledDeliveryDate)

	if err := r.db.WithContext(ctx).
		Where("subscription_id = ? AND scheduled_delivery_date BETWEEN ? AND ?", subscriptionID, start, end).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to find confirmation", "subscription_id", subscriptionID, "error", err)
		return nil, fmt.Errorf("failed to find confirmation: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map confirmation model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map confirmation: %w", err)
	}

	return entity, nil
}

// Consume flips is_confirmed in one conditional update. RowsAffected
// distinguishes a win from a lost race against another request holding the
// same token.
func (r *ConfirmationRepositoryImpl) Consume(ctx context.Context, id uint, response vo.CustomerAction, respondedAt time.Time) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.ConfirmationModel{}).
		Where("id = ? AND is_confirmed = ?", id, false).
		Updates(map[string]interface{}{
			"is_confirmed":      true,
			"customer_response": response.String(),
			"responded_at":      respondedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to consume confirmation", "id", id, "error", result.Error)
		return false, fmt.Errorf("failed to consume confirmation: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *ConfirmationRepositoryImpl) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", cutoff).
		Delete(&models.ConfirmationModel{})

	if result.Error != nil {
		r.logger.Errorw("failed to delete expired confirmations", "cutoff", cutoff, "error", result.Error)
		return 0, fmt.Errorf("failed to delete expired confirmations: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		r.logger.Infow("expired confirmations purged", "count", result.RowsAffected, "cutoff", cutoff)
	}

	return result.RowsAffected, nil
}

func (r *ConfirmationRepositoryImpl) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64

	if err := r.db.WithContext(ctx).
		Model(&models.ConfirmationModel{}).
		Where("created_at BETWEEN ? AND ?", from, to).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count confirmations by creation time", "error", err)
		return 0, fmt.Errorf("failed to count confirmations: %w", err)
	}

	return count, nil
}

func (r *ConfirmationRepositoryImpl) CountPending(ctx context.Context, now time.Time) (int64, error) {
	var count int64

	if err := r.db.WithContext(ctx).
		Model(&models.ConfirmationModel{}).
		Where("is_confirmed = ? AND expires_at >= ?", false, now).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count pending confirmations", "error", err)
		return 0, fmt.Errorf("failed to count pending confirmations: %w", err)
	}

	return count, nil
}

func (r *ConfirmationRepositoryImpl) CountConfirmedByResponse(ctx context.Context, response vo.CustomerAction) (int64, error) {
	var count int64

	if err := r.db.WithContext(ctx).
		Model(&models.ConfirmationModel{}).
		Where("is_confirmed = ? AND customer_response = ?", true, response.String()).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count confirmations by response", "response", response, "error", err)
		return 0, fmt.Errorf("failed to count confirmations: %w", err)
	}

	return count, nil
}
