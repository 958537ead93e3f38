package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rivertam/pants-off-podrick/internal/core/model"
	"github.com/rivertam/pants-off-podrick/internal/core/timeline"
)

// fixedClock pins "now" so the calendar walk is deterministic.
func fixedClock(loc *time.Location, year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, loc)
	}
}

func aggregate(t *testing.T, loc *time.Location, clock func() time.Time, events []model.CheckInEvent) *Result {
	t.Helper()
	tl, authors := timeline.Build(events)
	agg := NewAggregator(loc)
	agg.SetClock(clock)
	result, err := agg.Aggregate(tl, authors)
	require.NoError(t, err)
	return result
}

func TestAggregateFullMorningMonth(t *testing.T) {
	loc := nyLocation(t)

	var events []model.CheckInEvent
	for day := 1; day <= 31; day++ {
		events = append(events, event(loc, 2024, time.March, day, 6, 7, true))
	}

	result := aggregate(t, loc, fixedClock(loc, 2024, time.April, 15), events)

	march := model.MonthKey{Year: 2024, Month: time.March}
	require.Contains(t, result.Scores, march)
	rec := result.Scores[march]["alice"]
	require.NotNil(t, rec)

	assert.Equal(t, 31, rec.Morning)
	assert.Equal(t, 31, rec.Proper)
	assert.Zero(t, rec.MissedDays)
	assert.Zero(t, rec.Infractions)
	assert.Zero(t, rec.Evening)
	assert.Zero(t, rec.Alternate)
}

func TestAggregateQuietPeriodGuard(t *testing.T) {
	loc := nyLocation(t)

	events := []model.CheckInEvent{event(loc, 2024, time.March, 10, 6, 7, true)}
	result := aggregate(t, loc, fixedClock(loc, 2024, time.April, 15), events)

	require.Len(t, result.Months, 2, "only months since the first event qualify")
	assert.Equal(t, model.MonthKey{Year: 2024, Month: time.March}, result.Months[0])
	assert.Equal(t, model.MonthKey{Year: 2024, Month: time.April}, result.Months[1])
}

func TestAggregateEmptyEventSet(t *testing.T) {
	loc := nyLocation(t)

	result := aggregate(t, loc, fixedClock(loc, 2024, time.April, 15), nil)

	assert.Empty(t, result.Months, "quiet-period guard never lifts")
	assert.Empty(t, result.Scores)
}

func TestAggregateMissedDaysAccrue(t *testing.T) {
	loc := nyLocation(t)

	// One check-in on March 10; every other March day is missed.
	events := []model.CheckInEvent{event(loc, 2024, time.March, 10, 6, 7, false)}
	result := aggregate(t, loc, fixedClock(loc, 2024, time.April, 15), events)

	march := result.Scores[model.MonthKey{Year: 2024, Month: time.March}]["alice"]
	require.NotNil(t, march)
	assert.Equal(t, 1, march.Morning)
	assert.Equal(t, 30, march.MissedDays)
	assert.Zero(t, march.Proper)

	// April counts missed days only through "today".
	april := result.Scores[model.MonthKey{Year: 2024, Month: time.April}]["alice"]
	require.NotNil(t, april)
	assert.Equal(t, 15, april.MissedDays)
}

func TestAggregateInfractionOnlyDay(t *testing.T) {
	loc := nyLocation(t)

	events := []model.CheckInEvent{event(loc, 2024, time.March, 10, 9, 12, true)}
	result := aggregate(t, loc, fixedClock(loc, 2024, time.March, 31), events)

	rec := result.Scores[model.MonthKey{Year: 2024, Month: time.March}]["alice"]
	require.NotNil(t, rec)
	assert.Equal(t, 1, rec.Infractions)
	assert.Equal(t, 31, rec.MissedDays, "an infraction-only day still counts as missed")
	assert.Zero(t, rec.Morning+rec.Evening+rec.Alternate)
}

func TestAggregateSameDayMorningAndEvening(t *testing.T) {
	loc := nyLocation(t)

	events := []model.CheckInEvent{
		event(loc, 2024, time.March, 10, 6, 7, true),
		event(loc, 2024, time.March, 10, 18, 7, true),
	}
	result := aggregate(t, loc, fixedClock(loc, 2024, time.March, 31), events)

	rec := result.Scores[model.MonthKey{Year: 2024, Month: time.March}]["alice"]
	require.NotNil(t, rec)
	assert.Equal(t, 1, rec.Morning)
	assert.Equal(t, 1, rec.Evening)
	assert.Equal(t, 2, rec.Proper)
	assert.Equal(t, 30, rec.MissedDays)
}

func TestAggregateEveryAuthorInEveryEmittedMonth(t *testing.T) {
	loc := nyLocation(t)

	events := []model.CheckInEvent{
		event(loc, 2024, time.February, 5, 6, 7, true),
		{AuthorID: "bob", Instant: time.Date(2024, time.March, 12, 18, 7, 0, 0, loc).UTC(), Proper: false},
	}
	result := aggregate(t, loc, fixedClock(loc, 2024, time.March, 31), events)

	require.Equal(t, []model.MonthKey{
		{Year: 2024, Month: time.February},
		{Year: 2024, Month: time.March},
	}, result.Months)

	for _, month := range result.Months {
		records := result.Scores[month]
		require.Contains(t, records, "alice")
		require.Contains(t, records, "bob")
	}

	// bob posted nothing in February: all 29 days of the leap month missed.
	assert.Equal(t, 29, result.Scores[result.Months[0]]["bob"].MissedDays)
}

func TestAggregateFutureMonthsSuppressed(t *testing.T) {
	loc := nyLocation(t)

	events := []model.CheckInEvent{event(loc, 2024, time.March, 10, 6, 7, true)}
	result := aggregate(t, loc, fixedClock(loc, 2024, time.March, 31), events)

	require.Len(t, result.Months, 1)
	assert.Equal(t, model.MonthKey{Year: 2024, Month: time.March}, result.Months[0])
}

func TestAggregateMissedVsCountedExclusive(t *testing.T) {
	loc := nyLocation(t)

	// Alternate minute-7 check-ins on scattered days.
	events := []model.CheckInEvent{
		event(loc, 2024, time.March, 1, 10, 7, false),
		event(loc, 2024, time.March, 2, 6, 12, false), // infraction only
		event(loc, 2024, time.March, 3, 18, 7, true),
	}
	result := aggregate(t, loc, fixedClock(loc, 2024, time.March, 31), events)

	rec := result.Scores[model.MonthKey{Year: 2024, Month: time.March}]["alice"]
	require.NotNil(t, rec)
	assert.Equal(t, 1, rec.Alternate)
	assert.Equal(t, 1, rec.Evening)
	assert.Equal(t, 1, rec.Infractions)
	// 31 days; day 1 and 3 counted, everything else (day 2 included) missed.
	assert.Equal(t, 29, rec.MissedDays)
	assert.Equal(t, 1, rec.Proper)
}

func TestAggregateDeterministicAuthorOrder(t *testing.T) {
	loc := nyLocation(t)

	var events []model.CheckInEvent
	for _, author := range []string{"zoe", "alice", "mallory", "bob"} {
		events = append(events, model.CheckInEvent{
			AuthorID: author,
			Instant:  time.Date(2024, time.March, 10, 6, 7, 0, 0, loc).UTC(),
		})
	}

	result := aggregate(t, loc, fixedClock(loc, 2024, time.March, 31), events)
	assert.Equal(t, []string{"alice", "bob", "mallory", "zoe"}, result.Authors)
}
