package subscription

import (
	"errors"
	"fmt"
)

var (
	ErrSubscriptionNotFound         = errors.New("subscription not found")
	ErrInvalidStatusTransition      = errors.New("invalid status transition")
	ErrPauseDateRequired            = errors.New("pause requires a resume date")
	ErrConfirmationNotFound         = errors.New("confirmation not found")
	ErrConfirmationExpired          = errors.New("confirmation expired")
	ErrConfirmationAlreadyProcessed = errors.New("confirmation already processed")
	ErrDuplicateConfirmation        = errors.New("confirmation already exists for this delivery")
	ErrInvalidAction                = errors.New("invalid customer action")
	ErrInvalidFrequency             = errors.New("invalid frequency")
)

func ErrInvalidTransition(from, to string) error {
	return fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, from, to)
}
