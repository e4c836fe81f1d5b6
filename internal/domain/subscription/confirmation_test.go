package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/replenish-inc/replenish/internal/domain/subscription/valueobjects"
)

const testToken = "dGVzdC10b2tlbi1mb3ItY29uZmlybWF0aW9uLXRlc3Rz"

func newTestConfirmation(t *testing.T) *Confirmation {
	t.Helper()

	conf, err := NewConfirmation(42, testToken, date(2024, 6, 4), date(2024, 6, 8))
	require.NoError(t, err)
	require.NoError(t, conf.SetID(7))
	return conf
}

func TestNewConfirmation(t *testing.T) {
	conf := newTestConfirmation(t)

	assert.False(t, conf.IsConfirmed())
	assert.Nil(t, conf.CustomerResponse())
	assert.Nil(t, conf.RespondedAt())
	assert.Equal(t, date(2024, 6, 8), conf.ExpiresAt())
}

func TestNewConfirmation_Validation(t *testing.T) {
	_, err := NewConfirmation(0, testToken, date(2024, 6, 4), date(2024, 6, 8))
	assert.Error(t, err)

	_, err = NewConfirmation(42, "", date(2024, 6, 4), date(2024, 6, 8))
	assert.Error(t, err)

	_, err = NewConfirmation(42, testToken, date(2024, 6, 4), date(0, 1, 1))
	assert.Error(t, err)
}

func TestConfirmation_IsExpired(t *testing.T) {
	conf := newTestConfirmation(t)

	assert.False(t, conf.IsExpired(date(2024, 6, 7)))
	// Expiry instant itself is still actable.
	assert.False(t, conf.IsExpired(date(2024, 6, 8)))
	assert.True(t, conf.IsExpired(date(2024, 6, 9)))
}

func TestConfirmation_Confirm(t *testing.T) {
	conf := newTestConfirmation(t)
	now := date(2024, 6, 5)

	require.NoError(t, conf.Confirm(vo.ActionPause, now))
	assert.True(t, conf.IsConfirmed())
	require.NotNil(t, conf.CustomerResponse())
	assert.Equal(t, vo.ActionPause, *conf.CustomerResponse())
	require.NotNil(t, conf.RespondedAt())
	assert.Equal(t, now, *conf.RespondedAt())
}

func TestConfirmation_Confirm_SingleUse(t *testing.T) {
	conf := newTestConfirmation(t)
	now := date(2024, 6, 5)

	require.NoError(t, conf.Confirm(vo.ActionContinue, now))

	err := conf.Confirm(vo.ActionCancel, now)
	assert.ErrorIs(t, err, ErrConfirmationAlreadyProcessed)
	assert.Equal(t, vo.ActionContinue, *conf.CustomerResponse())
}

func TestConfirmation_Confirm_Expired(t *testing.T) {
	conf := newTestConfirmation(t)

	err := conf.Confirm(vo.ActionContinue, date(2024, 6, 9))
	assert.ErrorIs(t, err, ErrConfirmationExpired)
	assert.False(t, conf.IsConfirmed())
}

func TestConfirmation_Confirm_InvalidAction(t *testing.T) {
	conf := newTestConfirmation(t)

	err := conf.Confirm(vo.CustomerAction("skip"), date(2024, 6, 5))
	assert.ErrorIs(t, err, ErrInvalidAction)
	assert.False(t, conf.IsConfirmed())
}

func TestReconstructConfirmation_ConfirmedRequiresResponse(t *testing.T) {
	_, err := ReconstructConfirmation(7, 42, testToken, date(2024, 6, 4), true, nil, nil, date(2024, 6, 1), date(2024, 6, 8))
	assert.Error(t, err)

	action := vo.ActionContinue
	respondedAt := date(2024, 6, 5)
	conf, err := ReconstructConfirmation(7, 42, testToken, date(2024, 6, 4), true, &action, &respondedAt, date(2024, 6, 1), date(2024, 6, 8))
	require.NoError(t, err)
	assert.True(t, conf.IsConfirmed())
}
