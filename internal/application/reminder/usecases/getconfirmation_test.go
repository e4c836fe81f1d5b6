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
	apperrors "github.com/replenish-inc/replenish/internal/shared/errors"
)

func newViewUseCase(confRepo *mockConfirmationRepository, subRepo *mockSubscriptionRepository, catalog *mockProductCatalog) *GetConfirmationUseCase {
	return NewGetConfirmationUseCase(confRepo, subRepo, catalog, &mockLogger{})
}

func TestGetConfirmation_RendersLandingView(t *testing.T) {
	conf := pendingConfirmation(t)

	sub, err := subscription.NewSubscription(1, 2, 3, 4, vo.FrequencyMonthly, 3, 10, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, sub.SetID(42))

	confRepo := &mockConfirmationRepository{
		GetByTokenFunc: func(ctx context.Context, token string) (*subscription.Confirmation, error) {
			assert.Equal(t, testConfirmationToken, token)
			return conf, nil
		},
	}
	subRepo := &mockSubscriptionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Subscription, error) {
			assert.Equal(t, uint(42), id)
			return sub, nil
		},
	}
	catalog := &mockProductCatalog{
		GetProductFunc: func(ctx context.Context, productID uint) (*Product, error) {
			return &Product{Name: "Coffee Beans 500g", ImageURL: "https://cdn.example.com/coffee.jpg", Price: 20.0}, nil
		},
	}

	view, err := newViewUseCase(confRepo, subRepo, catalog).Execute(context.Background(), testConfirmationToken)
	require.NoError(t, err)

	assert.Equal(t, sub.SID(), view.SubscriptionSID)
	assert.Equal(t, "Coffee Beans 500g", view.ProductName)
	assert.Equal(t, "monthly", view.Frequency)
	assert.Equal(t, 3, view.Quantity)
	// 20.00 * 3 units at 10% off.
	assert.InDelta(t, 54.0, view.TotalAmount, 0.001)
	assert.False(t, view.IsExpired)
	assert.False(t, view.IsAlreadyProcessed)
}

func TestGetConfirmation_FlagsExpiredAndProcessed(t *testing.T) {
	expired, err := subscription.NewConfirmation(42, testConfirmationToken,
		time.Now().UTC().AddDate(0, 0, -10), time.Now().UTC().AddDate(0, 0, -3))
	require.NoError(t, err)

	processed := pendingConfirmation(t)
	require.NoError(t, processed.Confirm(vo.ActionPause, time.Now().UTC()))

	for name, conf := range map[string]*subscription.Confirmation{"expired": expired, "processed": processed} {
		confRepo := &mockConfirmationRepository{
			GetByTokenFunc: func(ctx context.Context, token string) (*subscription.Confirmation, error) {
				return conf, nil
			},
		}
		subRepo := &mockSubscriptionRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Subscription, error) {
				return activeSubscription(t), nil
			},
		}

		view, err := newViewUseCase(confRepo, subRepo, &mockProductCatalog{}).Execute(context.Background(), testConfirmationToken)
		require.NoError(t, err, name)

		if name == "expired" {
			assert.True(t, view.IsExpired)
		} else {
			assert.True(t, view.IsAlreadyProcessed)
		}
	}
}

func TestGetConfirmation_UnknownToken(t *testing.T) {
	confRepo := &mockConfirmationRepository{
		GetByTokenFunc: func(ctx context.Context, token string) (*subscription.Confirmation, error) {
			return nil, nil
		},
	}

	_, err := newViewUseCase(confRepo, &mockSubscriptionRepository{}, &mockProductCatalog{}).Execute(context.Background(), "no-such-token")
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestGetConfirmation_CatalogFailureStillRenders(t *testing.T) {
	confRepo := &mockConfirmationRepository{
		GetByTokenFunc: func(ctx context.Context, token string) (*subscription.Confirmation, error) {
			return pendingConfirmation(t), nil
		},
	}
	subRepo := &mockSubscriptionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Subscription, error) {
			return activeSubscription(t), nil
		},
	}
	catalog := &mockProductCatalog{
		GetProductFunc: func(ctx context.Context, productID uint) (*Product, error) {
			return nil, errors.New("catalog unavailable")
		},
	}

	view, err := newViewUseCase(confRepo, subRepo, catalog).Execute(context.Background(), testConfirmationToken)
	require.NoError(t, err)
	assert.Empty(t, view.ProductName)
	assert.Zero(t, view.TotalAmount)
	assert.NotEmpty(t, view.SubscriptionSID)
}
