package usecases

import (
	"context"
	"time"
)

// TokenGenerator produces opaque confirmation link secrets.
type TokenGenerator interface {
	Generate() (string, error)
}

// ReminderNotifier dispatches a delivery reminder to one recipient. The email
// carries three action links (continue, pause, cancel) sharing the same
// token, which stops working at expiresAt. Implementations must respect the
// context deadline so one slow recipient cannot stall a sweep, and must
// report dispatch failures back as errors.
type ReminderNotifier interface {
	SendSubscriptionReminder(ctx context.Context, email, recipientName, productName string, deliveryDate time.Time, expiresAt time.Time, token string) error
}

// Recipient is the contact information a reminder is addressed to.
type Recipient struct {
	Name  string
	Email string
}

// Product is the catalog data rendered in reminders and the landing page.
type Product struct {
	Name     string
	ImageURL string
	Price    float64
}

// CustomerDirectory resolves opaque customer references to contact info.
type CustomerDirectory interface {
	GetRecipient(ctx context.Context, customerID uint) (*Recipient, error)
}

// ProductCatalog resolves opaque product references to display data.
type ProductCatalog interface {
	GetProduct(ctx context.Context, productID uint) (*Product, error)
}

// TransactionManager runs a function inside one database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
