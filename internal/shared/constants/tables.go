// Package constants defines shared constant values.
package constants

// Database table names
const (
	TableSubscriptions         = "subscriptions"
	TableDeliveryConfirmations = "delivery_confirmations"
	TableCustomers             = "customers"
	TableProducts              = "products"
)
