package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/replenish-inc/replenish/internal/application/reminder/dto"
	"github.com/replenish-inc/replenish/internal/domain/subscription"
	vo "github.com/replenish-inc/replenish/internal/domain/subscription/valueobjects"
	apperrors "github.com/replenish-inc/replenish/internal/shared/errors"
	"github.com/replenish-inc/replenish/internal/shared/logger"
)

type ProcessConfirmationCommand struct {
	Token      string
	Action     string
	PauseUntil *time.Time
}

// ProcessConfirmationUseCase consumes a confirmation token exactly once and
// applies the customer's chosen action to the subscription.
//
// Validation failures (unknown token, expiry, reuse, bad action, missing
// pause date) never mutate state. Consumption and the subscription mutation
// run in one transaction, and consumption itself is a conditional update, so
// two near-simultaneous requests for the same token cannot both succeed.
type ProcessConfirmationUseCase struct {
	confirmationRepo subscription.ConfirmationRepository
	subscriptionRepo subscription.SubscriptionRepository
	txManager        TransactionManager
	logger           logger.Interface
}

func NewProcessConfirmationUseCase(
	confirmationRepo subscription.ConfirmationRepository,
	subscriptionRepo subscription.SubscriptionRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *ProcessConfirmationUseCase {
	return &ProcessConfirmationUseCase{
		confirmationRepo: confirmationRepo,
		subscriptionRepo: subscriptionRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

func (uc *ProcessConfirmationUseCase) Execute(ctx context.Context, cmd ProcessConfirmationCommand) (*dto.ConfirmationResponseDTO, error) {
	action, err := vo.NewCustomerAction(cmd.Action)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid action", cmd.Action)
	}

	if action == vo.ActionPause && cmd.PauseUntil == nil {
		return nil, apperrors.NewValidationError("pause requires a pause-until date")
	}

	conf, err := uc.confirmationRepo.GetByToken(ctx, cmd.Token)
	if err != nil {
		uc.logger.Errorw("failed to look up confirmation", "error", err)
		return nil, apperrors.NewInternalError("failed to look up confirmation")
	}
	if conf == nil {
		return nil, apperrors.NewNotFoundError("confirmation not found")
	}

	now := time.Now().UTC()
	if conf.IsExpired(now) {
		return nil, apperrors.NewExpiredError("confirmation expired")
	}
	if conf.IsConfirmed() {
		return nil, apperrors.NewAlreadyProcessedError("confirmation already processed")
	}

	var sid string
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		consumed, err := uc.confirmationRepo.Consume(txCtx, conf.ID(), action, now)
		if err != nil {
			return err
		}
		if !consumed {
			// A concurrent request consumed the token between our read and
			// this update.
			return apperrors.NewAlreadyProcessedError("confirmation already processed")
		}

		if action == vo.ActionContinue {
			return nil
		}

		sub, err := uc.subscriptionRepo.GetByID(txCtx, conf.SubscriptionID())
		if err != nil {
			return err
		}
		if sub == nil {
			return apperrors.NewNotFoundError("subscription not found")
		}
		sid = sub.SID()

		switch action {
		case vo.ActionPause:
			if err := sub.Pause(*cmd.PauseUntil); err != nil {
				return uc.mapDomainError(err)
			}
		case vo.ActionCancel:
			if err := sub.Cancel(); err != nil {
				return uc.mapDomainError(err)
			}
		}

		return uc.subscriptionRepo.Update(txCtx, sub)
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to process confirmation", "error", err, "confirmation_id", conf.ID())
		return nil, apperrors.NewInternalError("failed to process confirmation")
	}

	uc.logger.Infow("confirmation processed",
		"confirmation_id", conf.ID(),
		"subscription_id", conf.SubscriptionID(),
		"action", action.String(),
	)

	return &dto.ConfirmationResponseDTO{
		SubscriptionSID: sid,
		Action:          action.String(),
		RespondedAt:     now,
	}, nil
}

func (uc *ProcessConfirmationUseCase) mapDomainError(err error) error {
	if errors.Is(err, subscription.ErrInvalidStatusTransition) {
		return apperrors.NewConflictError("subscription state does not permit this action", err.Error())
	}
	if errors.Is(err, subscription.ErrPauseDateRequired) {
		return apperrors.NewValidationError("pause requires a pause-until date")
	}
	return err
}
