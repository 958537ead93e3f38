package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rivertam/pants-off-podrick/internal/core/model"
)

func TestNormalize(t *testing.T) {
	msgs := []model.RawMessage{
		{AuthorID: "alice", Content: "pants off", Timestamp: "2024-03-01T11:07:00Z"},
		{AuthorID: "bob", Content: "good morning", Timestamp: "2024-03-01T11:08:00Z"},
		{AuthorID: "bob", Content: "oops", Timestamp: "garbage"},
	}

	events := Normalize(msgs)

	require.Len(t, events, 2, "malformed timestamp must be excluded, not fatal")
	assert.Equal(t, "alice", events[0].AuthorID)
	assert.True(t, events[0].Proper)
	assert.Equal(t, time.UTC, events[0].Instant.Location())
	assert.Equal(t, "bob", events[1].AuthorID)
	assert.False(t, events[1].Proper)
}

func TestBuildGroupsAndSorts(t *testing.T) {
	ts := func(s string) time.Time {
		parsed, err := time.Parse(time.RFC3339, s)
		require.NoError(t, err)
		return parsed
	}

	// Reverse-chronological input, the order the live fetcher produces.
	events := []model.CheckInEvent{
		{AuthorID: "bob", Instant: ts("2024-03-03T11:07:00Z")},
		{AuthorID: "alice", Instant: ts("2024-03-02T11:07:00Z")},
		{AuthorID: "alice", Instant: ts("2024-03-01T11:07:00Z")},
	}

	tl, authors := Build(events)

	assert.Equal(t, []string{"alice", "bob"}, authors)
	require.Len(t, tl["alice"], 2)
	assert.True(t, tl["alice"][0].Instant.Before(tl["alice"][1].Instant))
	require.Len(t, tl["bob"], 1)
}

func TestBuildKeepsDuplicateTimestamps(t *testing.T) {
	instant := time.Date(2024, time.March, 1, 11, 7, 0, 0, time.UTC)
	events := []model.CheckInEvent{
		{AuthorID: "alice", Instant: instant, Proper: true},
		{AuthorID: "alice", Instant: instant, Proper: false},
	}

	tl, _ := Build(events)

	require.Len(t, tl["alice"], 2, "duplicates are legal and both retained")
	// Stable sort: ties keep their original relative order.
	assert.True(t, tl["alice"][0].Proper)
	assert.False(t, tl["alice"][1].Proper)
}

func TestBuildEmpty(t *testing.T) {
	tl, authors := Build(nil)
	assert.Empty(t, tl)
	assert.Empty(t, authors)
}
