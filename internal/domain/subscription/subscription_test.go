package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/replenish-inc/replenish/internal/domain/subscription/valueobjects"
)

func newTestSubscription(t *testing.T) *Subscription {
	t.Helper()

	sub, err := NewSubscription(1, 2, 3, 4, vo.FrequencyMonthly, 2, 10, date(2024, 6, 1))
	require.NoError(t, err)
	require.NoError(t, sub.SetID(42))
	return sub
}

func TestNewSubscription(t *testing.T) {
	sub := newTestSubscription(t)

	assert.Equal(t, vo.StatusActive, sub.Status())
	assert.Equal(t, date(2024, 7, 1), sub.NextDeliveryDate())
	assert.Equal(t, 1, sub.Version())
	assert.Nil(t, sub.PauseUntil())
	assert.Contains(t, sub.SID(), "sub_")
}

func TestNewSubscription_Validation(t *testing.T) {
	_, err := NewSubscription(0, 2, 3, 4, vo.FrequencyMonthly, 1, 0, date(2024, 6, 1))
	assert.Error(t, err)

	_, err = NewSubscription(1, 0, 3, 4, vo.FrequencyMonthly, 1, 0, date(2024, 6, 1))
	assert.Error(t, err)

	_, err = NewSubscription(1, 2, 3, 4, vo.Frequency("daily"), 1, 0, date(2024, 6, 1))
	assert.Error(t, err)

	_, err = NewSubscription(1, 2, 3, 4, vo.FrequencyWeekly, 0, 0, date(2024, 6, 1))
	assert.Error(t, err)

	_, err = NewSubscription(1, 2, 3, 4, vo.FrequencyWeekly, 1, 101, date(2024, 6, 1))
	assert.Error(t, err)
}

func TestSubscription_Pause(t *testing.T) {
	sub := newTestSubscription(t)
	until := date(2024, 8, 1)

	require.NoError(t, sub.Pause(until))
	assert.Equal(t, vo.StatusPaused, sub.Status())
	require.NotNil(t, sub.PauseUntil())
	assert.Equal(t, until, *sub.PauseUntil())
	assert.Equal(t, 2, sub.Version())
}

func TestSubscription_Pause_RequiresDate(t *testing.T) {
	sub := newTestSubscription(t)

	err := sub.Pause(time.Time{})
	assert.ErrorIs(t, err, ErrPauseDateRequired)
	assert.Equal(t, vo.StatusActive, sub.Status())
}

func TestSubscription_Pause_Idempotent(t *testing.T) {
	sub := newTestSubscription(t)
	require.NoError(t, sub.Pause(date(2024, 8, 1)))

	assert.NoError(t, sub.Pause(date(2024, 9, 1)))
	assert.Equal(t, date(2024, 8, 1), *sub.PauseUntil())
}

func TestSubscription_Resume(t *testing.T) {
	sub := newTestSubscription(t)
	require.NoError(t, sub.Pause(date(2024, 8, 1)))

	require.NoError(t, sub.Resume())
	assert.Equal(t, vo.StatusActive, sub.Status())
	assert.Nil(t, sub.PauseUntil())
}

func TestSubscription_Cancel(t *testing.T) {
	sub := newTestSubscription(t)

	require.NoError(t, sub.Cancel())
	assert.Equal(t, vo.StatusCancelled, sub.Status())
	assert.True(t, sub.Status().IsTerminal())
}

func TestSubscription_CancelledIsTerminal(t *testing.T) {
	sub := newTestSubscription(t)
	require.NoError(t, sub.Cancel())

	assert.Error(t, sub.Pause(date(2024, 8, 1)))
	assert.Error(t, sub.Resume())
	// Repeated cancel is a no-op, not an error.
	assert.NoError(t, sub.Cancel())
}

func TestSubscription_AdvanceNextDelivery(t *testing.T) {
	sub := newTestSubscription(t)

	require.NoError(t, sub.AdvanceNextDelivery())
	assert.Equal(t, date(2024, 8, 1), sub.NextDeliveryDate())

	require.NoError(t, sub.Cancel())
	assert.Error(t, sub.AdvanceNextDelivery())
}

func TestReconstructSubscription_PausedRequiresPauseUntil(t *testing.T) {
	until := date(2024, 8, 1)
	params := ReconstructParams{
		ID:               42,
		SID:              "sub_test12345678",
		CustomerID:       1,
		ProductID:        2,
		Frequency:        vo.FrequencyMonthly,
		Quantity:         1,
		Status:           vo.StatusPaused,
		StartDate:        date(2024, 6, 1),
		NextDeliveryDate: date(2024, 7, 1),
		Version:          1,
	}

	_, err := ReconstructSubscription(params)
	assert.Error(t, err)

	params.PauseUntil = &until
	sub, err := ReconstructSubscription(params)
	require.NoError(t, err)
	assert.Equal(t, vo.StatusPaused, sub.Status())
}

func TestReconstructSubscription_RejectsInvalidStatus(t *testing.T) {
	_, err := ReconstructSubscription(ReconstructParams{
		ID:         42,
		CustomerID: 1,
		ProductID:  2,
		Quantity:   1,
		Status:     vo.SubscriptionStatus("archived"),
	})
	assert.Error(t, err)
}

func TestReconstructSubscription_RejectsNonPositiveQuantity(t *testing.T) {
	_, err := ReconstructSubscription(ReconstructParams{
		ID:               42,
		SID:              "sub_test12345678",
		CustomerID:       1,
		ProductID:        2,
		Frequency:        vo.FrequencyMonthly,
		Quantity:         0,
		Status:           vo.StatusActive,
		StartDate:        date(2024, 6, 1),
		NextDeliveryDate: date(2024, 7, 1),
	})
	assert.Error(t, err)
}
