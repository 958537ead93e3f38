// Package timeline turns the fetched message snapshot into per-author
// event sequences ready for day-by-day classification.
package timeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/rivertam/pants-off-podrick/internal/core/model"
	"github.com/rivertam/pants-off-podrick/internal/core/pattern"
	"github.com/rivertam/pants-off-podrick/internal/util"
)

// Normalize converts raw messages into check-in events. Messages arrive in
// whatever order the source produced them (the live fetcher yields them
// reverse-chronologically); ordering is restored by Build. A message whose
// timestamp cannot be parsed is excluded and logged as a data-quality
// warning, never a fatal error.
func Normalize(msgs []model.RawMessage) []model.CheckInEvent {
	events := make([]model.CheckInEvent, 0, len(msgs))
	for _, msg := range msgs {
		ts, err := time.Parse(time.RFC3339, msg.Timestamp)
		if err != nil {
			util.LogWarn(fmt.Sprintf("Skipping message with malformed timestamp %q (author %s): %v",
				msg.Timestamp, msg.AuthorID, err))
			continue
		}
		events = append(events, model.CheckInEvent{
			AuthorID: msg.AuthorID,
			Instant:  ts.UTC(),
			Proper:   pattern.Matches(msg.Content),
		})
	}
	return events
}

// Build groups events by author and sorts each author's bucket ascending by
// instant. The sort is stable, so events with equal timestamps keep their
// relative input order. The returned author ids are sorted for deterministic
// downstream iteration.
func Build(events []model.CheckInEvent) (AuthorTimeline, []string) {
	tl := make(AuthorTimeline)
	for _, ev := range events {
		tl[ev.AuthorID] = append(tl[ev.AuthorID], ev)
	}

	authors := make([]string, 0, len(tl))
	for author, bucket := range tl {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Instant.Before(bucket[j].Instant)
		})
		authors = append(authors, author)
	}
	sort.Strings(authors)

	return tl, authors
}
