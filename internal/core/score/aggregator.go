// Package score implements the check-in classification and monthly
// aggregation engine: per-day draining of each author's sorted event queue,
// category classification in the reference timezone, and accumulation of
// per-author monthly counters.
package score

import (
	"time"

	"github.com/rivertam/pants-off-podrick/internal/core/constants"
	"github.com/rivertam/pants-off-podrick/internal/core/model"
	"github.com/rivertam/pants-off-podrick/internal/core/timeline"
)

// Result holds the aggregation output: the months that qualify for
// rendering, in chronological order, and each month's per-author records.
// Every author observed in the history has a record in every emitted month;
// missed days accrue whether or not the author posted that month.
type Result struct {
	Months  []model.MonthKey
	Scores  map[model.MonthKey]map[string]*model.MonthlyRecord
	Authors []string // sorted, for deterministic row order
}

// Aggregator walks the calendar from the start year to the current date and
// folds each author's events into monthly records.
type Aggregator struct {
	loc       *time.Location
	startYear int
	clock     func() time.Time // injectable for deterministic tests
}

func NewAggregator(loc *time.Location) *Aggregator {
	return &Aggregator{
		loc:       loc,
		startYear: constants.StartYear,
		clock:     time.Now,
	}
}

// SetClock overrides the time source used to bound the calendar walk.
// Deterministic tests and replays pin this to a fixed instant.
func (a *Aggregator) SetClock(clock func() time.Time) {
	if clock != nil {
		a.clock = clock
	}
}

// Aggregate consumes the timeline and produces the monthly result. The
// timeline's buckets are drained front-to-first as dates advance; positions
// only ever move forward. Months are suppressed until the first check-in
// ever observed (the quiet-period guard) and months starting in the future
// are never emitted.
func (a *Aggregator) Aggregate(tl timeline.AuthorTimeline, authors []string) (*Result, error) {
	queues := make(map[string][]model.CheckInEvent, len(tl))
	for author, bucket := range tl {
		queues[author] = bucket
	}

	now := a.clock().In(a.loc)
	todayY, todayM, todayD := now.Date()
	today := time.Date(todayY, todayM, todayD, 0, 0, 0, 0, a.loc)

	result := &Result{
		Scores:  make(map[model.MonthKey]map[string]*model.MonthlyRecord),
		Authors: authors,
	}

	seen := false

	for year := a.startYear; year <= now.Year(); year++ {
		for month := time.January; month <= time.December; month++ {
			records := make(map[string]*model.MonthlyRecord, len(authors))

			for day := 1; day <= 31; day++ {
				date := time.Date(year, month, day, 0, 0, 0, 0, a.loc)
				if date.Year() != year || date.Month() != month || date.Day() != day {
					// Normalization moved the date: no such day this month.
					continue
				}
				if date.After(today) {
					break
				}

				for _, author := range authors {
					tally, rest, err := classifyDay(queues[author], year, month, day, a.loc)
					if err != nil {
						return nil, err
					}
					queues[author] = rest

					if tally.events > 0 {
						seen = true
					}

					rec, ok := records[author]
					if !ok {
						rec = &model.MonthlyRecord{}
						records[author] = rec
					}
					tally.apply(rec)
				}
			}

			first := time.Date(year, month, 1, 0, 0, 0, 0, a.loc)
			if !seen || first.After(today) {
				continue
			}

			key := model.MonthKey{Year: year, Month: month}
			result.Months = append(result.Months, key)
			result.Scores[key] = records
		}
	}

	return result, nil
}
