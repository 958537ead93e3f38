package constants

// Check-in classification thresholds. All hours and minutes are evaluated in
// the reference timezone, never in the event's origin timezone.
const (
	// RequiredMinute is the minute-of-hour a check-in must land on.
	// Anything else is an infraction.
	RequiredMinute = 7

	// MorningHour and EveningHour are the local hours of the two target
	// windows. A non-infraction check-in outside both is "alternate".
	MorningHour = 6
	EveningHour = 18
)

const (
	// StartYear is the first year the aggregator walks. Nothing in the
	// channel predates it.
	StartYear = 2020

	// SummaryCharBudget is the maximum serialized table length for
	// summary-mode reports (Discord caps messages at 2000 characters).
	SummaryCharBudget = 2000
)

// DefaultTimezone is the reference timezone used to bucket every event into
// a calendar date and hour.
const DefaultTimezone = "America/New_York"
