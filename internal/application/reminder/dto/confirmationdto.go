package dto

import "time"

// ConfirmationViewDTO is the landing-page view of one reminder. The page must
// be able to render expired and already-handled states, so both flags ride
// along instead of being errors.
type ConfirmationViewDTO struct {
	SubscriptionSID       string    `json:"subscription_sid"`
	ProductName           string    `json:"product_name"`
	ProductImageURL       string    `json:"product_image_url,omitempty"`
	ScheduledDeliveryDate time.Time `json:"scheduled_delivery_date"`
	Frequency             string    `json:"frequency"`
	Quantity              int       `json:"quantity"`
	TotalAmount           float64   `json:"total_amount"`
	IsExpired             bool      `json:"is_expired"`
	IsAlreadyProcessed    bool      `json:"is_already_processed"`
}

// ConfirmationResponseDTO reports a successfully applied customer action.
type ConfirmationResponseDTO struct {
	SubscriptionSID string    `json:"subscription_sid"`
	Action          string    `json:"action"`
	RespondedAt     time.Time `json:"responded_at"`
}
