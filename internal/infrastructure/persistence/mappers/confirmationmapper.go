package mappers

import (
	"fmt"

	"github.com/replenish-inc/replenish/internal/domain/subscription"
	vo "github.com/replenish-inc/replenish/internal/domain/subscription/valueobjects"
	"github.com/replenish-inc/replenish/internal/infrastructure/persistence/models"
	"github.com/replenish-inc/replenish/internal/shared/mapper"
)

type ConfirmationMapper interface {
	ToEntity(model *models.ConfirmationModel) (*subscription.Confirmation, error)
	ToModel(entity *subscription.Confirmation) (*models.ConfirmationModel, error)
	ToEntities(models []*models.ConfirmationModel) ([]*subscription.Confirmation, error)
}

type ConfirmationMapperImpl struct{}

func NewConfirmationMapper() ConfirmationMapper {
	return &ConfirmationMapperImpl{}
}

func (m *ConfirmationMapperImpl) ToEntity(model *models.ConfirmationModel) (*subscription.Confirmation, error) {
	if model == nil {
		return nil, nil
	}

	var response *vo.CustomerAction
	if model.CustomerResponse != nil && *model.CustomerResponse != "" {
		action, err := vo.NewCustomerAction(*model.CustomerResponse)
		if err != nil {
			return nil, fmt.Errorf("failed to parse customer response: %w", err)
		}
		response = &action
	}

	entity, err := subscription.ReconstructConfirmation(
		model.ID,
		model.SubscriptionID,
		model.Token,
		model.ScheduledDeliveryDate,
		model.IsConfirmed,
		response,
		model.RespondedAt,
		model.CreatedAt,
		model.ExpiresAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct confirmation entity: %w", err)
	}

	return entity, nil
}

func (m *ConfirmationMapperImpl) ToModel(entity *subscription.Confirmation) (*models.ConfirmationModel, error) {
	if entity == nil {
		return nil, nil
	}

	var response *string
	if r := entity.CustomerResponse(); r != nil {
		s := r.String()
		response = &s
	}

	return &models.ConfirmationModel{
		ID:                    entity.ID(),
		SubscriptionID:        entity.SubscriptionID(),
		Token:                 entity.Token(),
		ScheduledDeliveryDate: entity.ScheduledDeliveryDate(),
		IsConfirmed:           entity.IsConfirmed(),
		CustomerResponse:      response,
		RespondedAt:           entity.RespondedAt(),
		CreatedAt:             entity.CreatedAt(),
		ExpiresAt:             entity.ExpiresAt(),
	}, nil
}

func (m *ConfirmationMapperImpl) ToEntities(modelList []*models.ConfirmationModel) ([]*subscription.Confirmation, error) {
	return mapper.MapSliceErr(modelList, m.ToEntity, func(model *models.ConfirmationModel) uint { return model.ID })
}
