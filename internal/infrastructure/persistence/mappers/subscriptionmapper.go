package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/replenish-inc/replenish/internal/domain/subscription"
	vo "github.com/replenish-inc/replenish/internal/domain/subscription/valueobjects"
	"github.com/replenish-inc/replenish/internal/infrastructure/persistence/models"
	"github.com/replenish-inc/replenish/internal/shared/mapper"
)

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error)
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
	ToModels(entities []*subscription.Subscription) ([]*models.SubscriptionModel, error)
}

type SubscriptionMapperImpl struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	status := vo.SubscriptionStatus(model.Status)
	if !vo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid subscription status: %s", model.Status)
	}

	frequency, err := vo.NewFrequency(model.Frequency)
	if err != nil {
		return nil, fmt.Errorf("failed to parse frequency: %w", err)
	}

	var metadata map[string]interface{}
	if model.Metadata != nil {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	}
	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	entity, err := subscription.ReconstructSubscription(subscription.ReconstructParams{
		ID:                model.ID,
		SID:               model.SID,
		CustomerID:        model.CustomerID,
		ProductID:         model.ProductID,
		PaymentMethodID:   model.PaymentMethodID,
		ShippingAddressID: model.ShippingAddressID,
		Frequency:         frequency,
		Quantity:          model.Quantity,
		DiscountPercent:   model.DiscountPercent,
		Status:            status,
		StartDate:         model.StartDate,
		NextDeliveryDate:  model.NextDeliveryDate,
		PauseUntil:        model.PauseUntil,
		Metadata:          metadata,
		Version:           model.Version,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription entity: %w", err)
	}

	return entity, nil
}

func (m *SubscriptionMapperImpl) ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	var metadataJSON datatypes.JSON
	if metadata := entity.Metadata(); len(metadata) > 0 {
		data, err := json.Marshal(metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal metadata: %w", err)
		}
		metadataJSON = data
	}

	return &models.SubscriptionModel{
		ID:                entity.ID(),
		SID:               entity.SID(),
		CustomerID:        entity.CustomerID(),
		ProductID:         entity.ProductID(),
		PaymentMethodID:   entity.PaymentMethodID(),
		ShippingAddressID: entity.ShippingAddressID(),
		Frequency:         entity.Frequency().String(),
		Quantity:          entity.Quantity(),
		DiscountPercent:   entity.DiscountPercent(),
		Status:            entity.Status().String(),
		StartDate:         entity.StartDate(),
		NextDeliveryDate:  entity.NextDeliveryDate(),
		PauseUntil:        entity.PauseUntil(),
		Metadata:          metadataJSON,
		Version:           entity.Version(),
		CreatedAt:         entity.CreatedAt(),
		UpdatedAt:         entity.UpdatedAt(),
	}, nil
}

func (m *SubscriptionMapperImpl) ToEntities(modelList []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	return mapper.MapSliceErr(modelList, m.ToEntity, func(model *models.SubscriptionModel) uint { return model.ID })
}

func (m *SubscriptionMapperImpl) ToModels(entities []*subscription.Subscription) ([]*models.SubscriptionModel, error) {
	return mapper.MapSliceErr(entities, m.ToModel, func(entity *subscription.Subscription) uint { return entity.ID() })
}
