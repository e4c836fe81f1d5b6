package usecases

import (
	"context"
	"time"

	"github.com/replenish-inc/replenish/internal/domain/subscription"
	vo "github.com/replenish-inc/replenish/internal/domain/subscription/valueobjects"
	"github.com/replenish-inc/replenish/internal/shared/logger"
)

type mockSubscriptionRepository struct {
	CreateFunc                       func(ctx context.Context, sub *subscription.Subscription) error
	GetByIDFunc                      func(ctx context.Context, id uint) (*subscription.Subscription, error)
	GetBySIDFunc                     func(ctx context.Context, sid string) (*subscription.Subscription, error)
	GetByCustomerIDFunc              func(ctx context.Context, customerID uint) ([]*subscription.Subscription, error)
	UpdateFunc                       func(ctx context.Context, sub *subscription.Subscription) error
	FindActiveByNextDeliveryDateFunc func(ctx context.Context, date time.Time) ([]*subscription.Subscription, error)
	CountByStatusFunc                func(ctx context.Context, status vo.SubscriptionStatus) (int64, error)
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) GetBySID(ctx context.Context, sid string) (*subscription.Subscription, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) GetByCustomerID(ctx context.Context, customerID uint) ([]*subscription.Subscription, error) {
	if m.GetByCustomerIDFunc != nil {
		return m.GetByCustomerIDFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) FindActiveByNextDeliveryDate(ctx context.Context, date time.Time) ([]*subscription.Subscription, error) {
	if m.FindActiveByNextDeliveryDateFunc != nil {
		return m.FindActiveByNextDeliveryDateFunc(ctx, date)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) CountByStatus(ctx context.Context, status vo.SubscriptionStatus) (int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, status)
	}
	return 0, nil
}

type mockConfirmationRepository struct {
	CreateFunc                    func(ctx context.Context, conf *subscription.Confirmation) error
	GetByIDFunc                   func(ctx context.Context, id uint) (*subscription.Confirmation, error)
	GetByTokenFunc                func(ctx context.Context, token string) (*subscription.Confirmation, error)
	FindBySubscriptionAndDateFunc func(ctx context.Context, subscriptionID uint, scheduledDeliveryDate time.Time) (*subscription.Confirmation, error)
	ConsumeFunc                   func(ctx context.Context, id uint, response vo.CustomerAction, respondedAt time.Time) (bool, error)
	DeleteExpiredBeforeFunc       func(ctx context.Context, cutoff time.Time) (int64, error)
	CountCreatedBetweenFunc       func(ctx context.Context, from, to time.Time) (int64, error)
	CountPendingFunc              func(ctx context.Context, now time.Time) (int64, error)
	CountConfirmedByResponseFunc  func(ctx context.Context, response vo.CustomerAction) (int64, error)
}

func (m *mockConfirmationRepository) Create(ctx context.Context, conf *subscription.Confirmation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, conf)
	}
	return nil
}

func (m *mockConfirmationRepository) GetByID(ctx context.Context, id uint) (*subscription.Confirmation, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockConfirmationRepository) GetByToken(ctx context.Context, token string) (*subscription.Confirmation, error) {
	if m.GetByTokenFunc != nil {
		return m.GetByTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *mockConfirmationRepository) FindBySubscriptionAndDate(ctx context.Context, subscriptionID uint, scheduledDeliveryDate time.Time) (*subscription.Confirmation, error) {
	if m.FindBySubscriptionAndDateFunc != nil {
		return m.FindBySubscriptionAndDateFunc(ctx, subscriptionID, scheduledDeliveryDate)
	}
	return nil, nil
}

func (m *mockConfirmationRepository) Consume(ctx context.Context, id uint, response vo.CustomerAction, respondedAt time.Time) (bool, error) {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, id, response, respondedAt)
	}
	return true, nil
}

func (m *mockConfirmationRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.DeleteExpiredBeforeFunc != nil {
		return m.DeleteExpiredBeforeFunc(ctx, cutoff)
	}
	return 0, nil
}

func (m *mockConfirmationRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	if m.CountCreatedBetweenFunc != nil {
		return m.CountCreatedBetweenFunc(ctx, from, to)
	}
	return 0, nil
}

func (m *mockConfirmationRepository) CountPending(ctx context.Context, now time.Time) (int64, error) {
	if m.CountPendingFunc != nil {
		return m.CountPendingFunc(ctx, now)
	}
	return 0, nil
}

func (m *mockConfirmationRepository) CountConfirmedByResponse(ctx context.Context, response vo.CustomerAction) (int64, error) {
	if m.CountConfirmedByResponseFunc != nil {
		return m.CountConfirmedByResponseFunc(ctx, response)
	}
	return 0, nil
}

type mockTokenGenerator struct {
	GenerateFunc func() (string, error)
}

func (m *mockTokenGenerator) Generate() (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return "mock-token", nil
}

type mockReminderNotifier struct {
	SendSubscriptionReminderFunc func(ctx context.Context, email, recipientName, productName string, deliveryDate, expiresAt time.Time, token string) error
}

func (m *mockReminderNotifier) SendSubscriptionReminder(ctx context.Context, email, recipientName, productName string, deliveryDate, expiresAt time.Time, token string) error {
	if m.SendSubscriptionReminderFunc != nil {
		return m.SendSubscriptionReminderFunc(ctx, email, recipientName, productName, deliveryDate, expiresAt, token)
	}
	return nil
}

type mockCustomerDirectory struct {
	GetRecipientFunc func(ctx context.Context, customerID uint) (*Recipient, error)
}

func (m *mockCustomerDirectory) GetRecipient(ctx context.Context, customerID uint) (*Recipient, error) {
	if m.GetRecipientFunc != nil {
		return m.GetRecipientFunc(ctx, customerID)
	}
	return &Recipient{Name: "Mock Customer", Email: "customer@example.com"}, nil
}

type mockProductCatalog struct {
	GetProductFunc func(ctx context.Context, productID uint) (*Product, error)
}

func (m *mockProductCatalog) GetProduct(ctx context.Context, productID uint) (*Product, error) {
	if m.GetProductFunc != nil {
		return m.GetProductFunc(ctx, productID)
	}
	return &Product{Name: "Mock Product", Price: 25.0}, nil
}

type mockTransactionManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct {
	DebugwFunc func(msg string, keysAndValues ...interface{})
	InfowFunc  func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	WithFunc   func(args ...any) interface{}
	NamedFunc  func(name string) interface{}
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface {
	if m.WithFunc != nil {
		if result, ok := m.WithFunc(args...).(logger.Interface); ok {
			return result
		}
	}
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	if m.NamedFunc != nil {
		if result, ok := m.NamedFunc(name).(logger.Interface); ok {
			return result
		}
	}
	return m
}
