package model

import (
	"fmt"
	"time"
)

// RawMessage is one message as retrieved from the monitored channel, either
// live via the gateway fetcher or from an exported history file.
type RawMessage struct {
	AuthorID  string `json:"authorId"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"` // RFC3339
}

// CheckInEvent is a RawMessage reduced to what classification needs.
// Immutable once created.
type CheckInEvent struct {
	AuthorID string
	Instant  time.Time // always UTC
	Proper   bool      // body matched the required pattern
}

// MonthKey identifies one (year, month) bucket.
type MonthKey struct {
	Year  int
	Month time.Month
}

func (k MonthKey) String() string {
	return fmt.Sprintf("%s, %d", k.Month.String(), k.Year)
}

// Before reports whether k is chronologically before other.
func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// MonthlyRecord accumulates one author's counters for one month. All fields
// only ever increase while days are folded in.
type MonthlyRecord struct {
	Morning     int `json:"morning"`
	Evening     int `json:"evening"`
	Proper      int `json:"proper"`
	MissedDays  int `json:"missedDays"`
	Infractions int `json:"infractions"`
	Alternate   int `json:"alternate"`
}

// IsZero reports whether no counter has been touched yet.
func (r MonthlyRecord) IsZero() bool {
	return r == MonthlyRecord{}
}
