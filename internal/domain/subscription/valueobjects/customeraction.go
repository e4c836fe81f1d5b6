package valueobjects

import "fmt"

// CustomerAction is the response a customer gives to a delivery reminder.
type CustomerAction string

const (
	ActionContinue CustomerAction = "continue"
	ActionPause    CustomerAction = "pause"
	ActionCancel   CustomerAction = "cancel"
)

var ValidCustomerActions = map[CustomerAction]bool{
	ActionContinue: true,
	ActionPause:    true,
	ActionCancel:   true,
}

func NewCustomerAction(value string) (CustomerAction, error) {
	a := CustomerAction(value)
	if !ValidCustomerActions[a] {
		return "", fmt.Errorf("invalid customer action: %q", value)
	}
	return a, nil
}

func (a CustomerAction) String() string {
	return string(a)
}

func (a CustomerAction) IsValid() bool {
	return ValidCustomerActions[a]
}
