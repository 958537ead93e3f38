package timeline

import (
	"github.com/rivertam/pants-off-podrick/internal/core/model"
)

// AuthorTimeline maps an author id to that author's check-in events, sorted
// ascending by instant. Duplicate timestamps are legal and both retained.
type AuthorTimeline map[string][]model.CheckInEvent
