package score

import (
	"fmt"
	"time"

	"github.com/rivertam/pants-off-podrick/internal/core/constants"
	"github.com/rivertam/pants-off-podrick/internal/core/model"
)

// dayTally is the classification outcome of one author's events on one
// calendar date. Morning, evening and alternate are independent booleans: a
// day can set more than one when the author checked in several times.
type dayTally struct {
	morning   bool
	evening   bool
	alternate bool

	morningProper   bool
	eveningProper   bool
	alternateProper bool

	infractions int
	events      int // events drained for this date, infractions included
}

// classifyDay removes from the front of queue the maximal prefix of events
// whose instants fall on (year, month, day) in loc, classifies them, and
// returns the tally plus the remaining queue.
//
// The queue must be sorted ascending and dates must be processed in strictly
// increasing order: only then does the prefix boundary identify all and only
// the target date's events. The head-not-earlier-than-target precondition is
// checked explicitly so that a traversal-order bug surfaces as an error
// instead of silent misclassification.
func classifyDay(queue []model.CheckInEvent, year int, month time.Month, day int, loc *time.Location) (dayTally, []model.CheckInEvent, error) {
	var tally dayTally

	if len(queue) > 0 {
		if local := queue[0].Instant.In(loc); dateBefore(local, year, month, day) {
			return tally, queue, fmt.Errorf(
				"event queue head %s predates target date %04d-%02d-%02d; days must be processed in ascending order",
				local.Format("2006-01-02"), year, month, day)
		}
	}

	boundary := 0
	for boundary < len(queue) {
		local := queue[boundary].Instant.In(loc)
		if !sameDate(local, year, month, day) {
			break
		}
		boundary++
	}

	for _, ev := range queue[:boundary] {
		local := ev.Instant.In(loc)

		if local.Minute() != constants.RequiredMinute {
			tally.infractions++
			continue
		}

		switch local.Hour() {
		case constants.MorningHour:
			tally.morning = true
			if ev.Proper {
				tally.morningProper = true
			}
		case constants.EveningHour:
			tally.evening = true
			if ev.Proper {
				tally.eveningProper = true
			}
		default:
			tally.alternate = true
			if ev.Proper {
				tally.alternateProper = true
			}
		}
	}

	tally.events = boundary
	return tally, queue[boundary:], nil
}

// missed reports whether the day counts as missed: no category fired, even
// if infractions were recorded.
func (t dayTally) missed() bool {
	return !t.morning && !t.evening && !t.alternate
}

// apply folds the day into the author's monthly record. A missed day touches
// only MissedDays; otherwise each set category increments once and Proper
// increments once per category-proper flag, so a day with a proper morning
// and a proper evening contributes 2.
func (t dayTally) apply(rec *model.MonthlyRecord) {
	rec.Infractions += t.infractions

	if t.missed() {
		rec.MissedDays++
		return
	}

	if t.morning {
		rec.Morning++
	}
	if t.evening {
		rec.Evening++
	}
	if t.alternate {
		rec.Alternate++
	}
	if t.morningProper {
		rec.Proper++
	}
	if t.eveningProper {
		rec.Proper++
	}
	if t.alternateProper {
		rec.Proper++
	}
}

func sameDate(t time.Time, year int, month time.Month, day int) bool {
	y, m, d := t.Date()
	return y == year && m == month && d == day
}

func dateBefore(t time.Time, year int, month time.Month, day int) bool {
	y, m, d := t.Date()
	if y != year {
		return y < year
	}
	if m != month {
		return m < month
	}
	return d < day
}
