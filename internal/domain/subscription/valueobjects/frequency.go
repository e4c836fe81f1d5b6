package valueobjects

import "fmt"

// Frequency is the recurrence interval of a subscription delivery.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

var ValidFrequencies = map[Frequency]bool{
	FrequencyWeekly:   true,
	FrequencyBiweekly: true,
	FrequencyMonthly:  true,
}

// NewFrequency parses a stored frequency value. Unknown values are rejected
// here; leniency toward legacy rows lives only in the next-delivery
// calculator.
func NewFrequency(value string) (Frequency, error) {
	f := Frequency(value)
	if !ValidFrequencies[f] {
		return "", fmt.Errorf("invalid frequency: %q", value)
	}
	return f, nil
}

func (f Frequency) String() string {
	return string(f)
}

func (f Frequency) IsValid() bool {
	return ValidFrequencies[f]
}
