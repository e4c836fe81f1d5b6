package subscription

import (
	"time"

	vo "github.com/replenish-inc/replenish/internal/domain/subscription/valueobjects"
)

// NextDeliveryDate computes the next scheduled delivery from a reference date.
// Pure function: no clock access, deterministic given its inputs.
//
// Monthly advancement clamps to the last valid day of the target month
// instead of letting time.AddDate overflow: Jan 31 + 1 month is Feb 29 in a
// leap year (Feb 28 otherwise), never Mar 2. Weekly and biweekly add 7 and
// 14 days.
//
// An unrecognized frequency falls back to monthly. Parse boundaries reject
// unknown values, so this branch is only reachable for legacy rows stored
// before validation existed.
func NextDeliveryDate(reference time.Time, frequency vo.Frequency) time.Time {
	switch frequency {
	case vo.FrequencyWeekly:
		return reference.AddDate(0, 0, 7)
	case vo.FrequencyBiweekly:
		return reference.AddDate(0, 0, 14)
	default:
		return addMonthClamped(reference)
	}
}

// addMonthClamped advances one calendar month, clamping the day-of-month to
// the last valid day of the target month.
func addMonthClamped(t time.Time) time.Time {
	year, month, day := t.Date()
	firstOfNext := time.Date(year, month+1, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())

	if last := lastDayOfMonth(firstOfNext.Year(), firstOfNext.Month()); day > last {
		day = last
	}
	return time.Date(firstOfNext.Year(), firstOfNext.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func lastDayOfMonth(year int, month time.Month) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
