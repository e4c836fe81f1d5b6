package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/replenish-inc/replenish/internal/domain/subscription"
	vo "github.com/replenish-inc/replenish/internal/domain/subscription/valueobjects"
	"github.com/replenish-inc/replenish/internal/shared/config"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// dueSubscription builds an active subscription whose next delivery lands on
// the given date.
func dueSubscription(t *testing.T, id uint, nextDelivery time.Time) *subscription.Subscription {
	t.Helper()

	sub, err := subscription.NewSubscription(1, 2, 3, 4, vo.FrequencyMonthly, 1, 0, nextDelivery.AddDate(0, -1, 0))
	require.NoError(t, err)
	require.NoError(t, sub.SetID(id))
	require.Equal(t, nextDelivery, sub.NextDeliveryDate())
	return sub
}

func defaultReminderConfig() config.ReminderConfig {
	return config.ReminderConfig{
		LeadDays:        3,
		TokenExpiryDays: 7,
		RetentionDays:   90,
		SweepHour:       6,
	}
}

func newSweepUseCase(
	subRepo *mockSubscriptionRepository,
	confRepo *mockConfirmationRepository,
	tokenGen *mockTokenGenerator,
	notifier *mockReminderNotifier,
	directory *mockCustomerDirectory,
	catalog *mockProductCatalog,
) *SendPendingRemindersUseCase {
	return NewSendPendingRemindersUseCase(
		subRepo, confRepo, tokenGen, notifier, directory, catalog,
		defaultReminderConfig(), 5*time.Second, &mockLogger{},
	)
}

func TestSendPendingReminders_DispatchesDueReminders(t *testing.T) {
	today := date(2024, 6, 1)
	deliveryDate := date(2024, 6, 4)

	var queriedDate time.Time
	subRepo := &mockSubscriptionRepository{
		FindActiveByNextDeliveryDateFunc: func(ctx context.Context, d time.Time) ([]*subscription.Subscription, error) {
			queriedDate = d
			return []*subscription.Subscription{
				dueSubscription(t, 1, deliveryDate),
				dueSubscription(t, 2, deliveryDate),
			}, nil
		},
	}

	var created []*subscription.Confirmation
	confRepo := &mockConfirmationRepository{
		CreateFunc: func(ctx context.Context, conf *subscription.Confirmation) error {
			created = append(created, conf)
			return nil
		},
	}

	var sentTokens []string
	notifier := &mockReminderNotifier{
		SendSubscriptionReminderFunc: func(ctx context.Context, email, recipientName, productName string, d, expiresAt time.Time, token string) error {
			assert.Equal(t, "customer@example.com", email)
			assert.Equal(t, deliveryDate, d)
			assert.Equal(t, date(2024, 6, 8), expiresAt)
			sentTokens = append(sentTokens, token)
			return nil
		},
	}

	uc := newSweepUseCase(subRepo, confRepo, &mockTokenGenerator{}, notifier, &mockCustomerDirectory{}, &mockProductCatalog{})

	sent, err := uc.Execute(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Equal(t, deliveryDate, queriedDate)
	assert.Len(t, sentTokens, 2)

	require.Len(t, created, 2)
	for _, conf := range created {
		assert.Equal(t, deliveryDate, conf.ScheduledDeliveryDate())
		assert.Equal(t, date(2024, 6, 8), conf.ExpiresAt())
		assert.False(t, conf.IsConfirmed())
	}
}

func TestSendPendingReminders_SkipsExistingConfirmation(t *testing.T) {
	deliveryDate := date(2024, 6, 4)
	sub := dueSubscription(t, 1, deliveryDate)

	existing, err := subscription.NewConfirmation(1, "existing-token", deliveryDate, date(2024, 6, 8))
	require.NoError(t, err)

	subRepo := &mockSubscriptionRepository{
		FindActiveByNextDeliveryDateFunc: func(ctx context.Context, d time.Time) ([]*subscription.Subscription, error) {
			return []*subscription.Subscription{sub}, nil
		},
	}

	createCalled := false
	confRepo := &mockConfirmationRepository{
		FindBySubscriptionAndDateFunc: func(ctx context.Context, subscriptionID uint, d time.Time) (*subscription.Confirmation, error) {
			assert.Equal(t, uint(1), subscriptionID)
			return existing, nil
		},
		CreateFunc: func(ctx context.Context, conf *subscription.Confirmation) error {
			createCalled = true
			return nil
		},
	}

	uc := newSweepUseCase(subRepo, confRepo, &mockTokenGenerator{}, &mockReminderNotifier{}, &mockCustomerDirectory{}, &mockProductCatalog{})

	sent, err := uc.Execute(context.Background(), date(2024, 6, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	assert.False(t, createCalled)
}

func TestSendPendingReminders_ConcurrentInsertLosesQuietly(t *testing.T) {
	subRepo := &mockSubscriptionRepository{
		FindActiveByNextDeliveryDateFunc: func(ctx context.Context, d time.Time) ([]*subscription.Subscription, error) {
			return []*subscription.Subscription{dueSubscription(t, 1, date(2024, 6, 4))}, nil
		},
	}
	confRepo := &mockConfirmationRepository{
		CreateFunc: func(ctx context.Context, conf *subscription.Confirmation) error {
			return subscription.ErrDuplicateConfirmation
		},
	}

	notified := false
	notifier := &mockReminderNotifier{
		SendSubscriptionReminderFunc: func(ctx context.Context, email, recipientName, productName string, d, expiresAt time.Time, token string) error {
			notified = true
			return nil
		},
	}

	uc := newSweepUseCase(subRepo, confRepo, &mockTokenGenerator{}, notifier, &mockCustomerDirectory{}, &mockProductCatalog{})

	sent, err := uc.Execute(context.Background(), date(2024, 6, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	assert.False(t, notified)
}

func TestSendPendingReminders_SkipsWhenRecipientMissing(t *testing.T) {
	subRepo := &mockSubscriptionRepository{
		FindActiveByNextDeliveryDateFunc: func(ctx context.Context, d time.Time) ([]*subscription.Subscription, error) {
			return []*subscription.Subscription{dueSubscription(t, 1, date(2024, 6, 4))}, nil
		},
	}
	directory := &mockCustomerDirectory{
		GetRecipientFunc: func(ctx context.Context, customerID uint) (*Recipient, error) {
			return nil, nil
		},
	}

	uc := newSweepUseCase(subRepo, &mockConfirmationRepository{}, &mockTokenGenerator{}, &mockReminderNotifier{}, directory, &mockProductCatalog{})

	sent, err := uc.Execute(context.Background(), date(2024, 6, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
}

func TestSendPendingReminders_DispatchFailureNotCounted(t *testing.T) {
	subRepo := &mockSubscriptionRepository{
		FindActiveByNextDeliveryDateFunc: func(ctx context.Context, d time.Time) ([]*subscription.Subscription, error) {
			return []*subscription.Subscription{
				dueSubscription(t, 1, date(2024, 6, 4)),
				dueSubscription(t, 2, date(2024, 6, 4)),
			}, nil
		},
	}

	calls := 0
	notifier := &mockReminderNotifier{
		SendSubscriptionReminderFunc: func(ctx context.Context, email, recipientName, productName string, d, expiresAt time.Time, token string) error {
			calls++
			if calls == 1 {
				return errors.New("smtp unavailable")
			}
			return nil
		},
	}

	uc := newSweepUseCase(subRepo, &mockConfirmationRepository{}, &mockTokenGenerator{}, notifier, &mockCustomerDirectory{}, &mockProductCatalog{})

	sent, err := uc.Execute(context.Background(), date(2024, 6, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestSendPendingReminders_QueryFailureAborts(t *testing.T) {
	subRepo := &mockSubscriptionRepository{
		FindActiveByNextDeliveryDateFunc: func(ctx context.Context, d time.Time) ([]*subscription.Subscription, error) {
			return nil, errors.New("connection refused")
		},
	}

	uc := newSweepUseCase(subRepo, &mockConfirmationRepository{}, &mockTokenGenerator{}, &mockReminderNotifier{}, &mockCustomerDirectory{}, &mockProductCatalog{})

	_, err := uc.Execute(context.Background(), date(2024, 6, 1))
	assert.Error(t, err)
}

func TestSendPendingReminders_TokenGenerationFailureSkipsItem(t *testing.T) {
	subRepo := &mockSubscriptionRepository{
		FindActiveByNextDeliveryDateFunc: func(ctx context.Context, d time.Time) ([]*subscription.Subscription, error) {
			return []*subscription.Subscription{dueSubscription(t, 1, date(2024, 6, 4))}, nil
		},
	}
	tokenGen := &mockTokenGenerator{
		GenerateFunc: func() (string, error) {
			return "", errors.New("entropy exhausted")
		},
	}

	createCalled := false
	confRepo := &mockConfirmationRepository{
		CreateFunc: func(ctx context.Context, conf *subscription.Confirmation) error {
			createCalled = true
			return nil
		},
	}

	uc := newSweepUseCase(subRepo, confRepo, tokenGen, &mockReminderNotifier{}, &mockCustomerDirectory{}, &mockProductCatalog{})

	sent, err := uc.Execute(context.Background(), date(2024, 6, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	assert.False(t, createCalled)
}
