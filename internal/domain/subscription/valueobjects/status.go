package valueobjects

type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "active"
	StatusPaused    SubscriptionStatus = "paused"
	StatusCancelled SubscriptionStatus = "cancelled"
)

func (s SubscriptionStatus) String() string {
	return string(s)
}

// CanTransitionTo encodes the status state machine: active and paused swap
// freely, both may cancel, and cancelled is terminal.
func (s SubscriptionStatus) CanTransitionTo(target SubscriptionStatus) bool {
	transitions := map[SubscriptionStatus][]SubscriptionStatus{
		StatusActive:    {StatusPaused, StatusCancelled},
		StatusPaused:    {StatusActive, StatusCancelled},
		StatusCancelled: {},
	}

	allowed, exists := transitions[s]
	if !exists {
		return false
	}

	for _, allowedStatus := range allowed {
		if allowedStatus == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves this status.
func (s SubscriptionStatus) IsTerminal() bool {
	return s == StatusCancelled
}

var ValidStatuses = map[SubscriptionStatus]bool{
	StatusActive:    true,
	StatusPaused:    true,
	StatusCancelled: true,
}
