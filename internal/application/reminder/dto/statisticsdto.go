package dto

// StatisticsDTO is a read-only rollup over subscriptions and confirmations.
type StatisticsDTO struct {
	TotalActiveSubscriptions int64 `json:"total_active_subscriptions"`
	RemindersSentToday       int64 `json:"reminders_sent_today"`
	PendingConfirmations     int64 `json:"pending_confirmations"`
	ConfirmedCount           int64 `json:"confirmed_count"`
	PausedCount              int64 `json:"paused_count"`
	CancelledCount           int64 `json:"cancelled_count"`
}
