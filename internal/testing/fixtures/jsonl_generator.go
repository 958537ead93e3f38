// Package fixtures generates channel-history export files for tests.
package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/rivertam/pants-off-podrick/internal/core/model"
)

// TestDataGenerator writes JSONL export fixtures under a base directory.
type TestDataGenerator struct {
	baseDir string
}

// NewTestDataGenerator creates a new test data generator
func NewTestDataGenerator(baseDir string) *TestDataGenerator {
	return &TestDataGenerator{baseDir: baseDir}
}

// WriteExport serializes messages as one JSONL export file and returns its
// path.
func (g *TestDataGenerator) WriteExport(name string, msgs []model.RawMessage) (string, error) {
	var b strings.Builder
	for _, msg := range msgs {
		line, err := sonic.Marshal(msg)
		if err != nil {
			return "", err
		}
		b.Write(line)
		b.WriteString("\n")
	}

	path := filepath.Join(g.baseDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// DailyCheckIns produces one message per day for the given month, all at the
// same local wall-clock time in loc.
func DailyCheckIns(authorID string, year int, month time.Month, days int, hour, minute int, content string, loc *time.Location) []model.RawMessage {
	msgs := make([]model.RawMessage, 0, days)
	for day := 1; day <= days; day++ {
		ts := time.Date(year, month, day, hour, minute, 0, 0, loc)
		msgs = append(msgs, model.RawMessage{
			AuthorID:  authorID,
			Content:   content,
			Timestamp: ts.UTC().Format(time.RFC3339),
		})
	}
	return msgs
}

// Message builds a single raw message at the given local time in loc.
func Message(authorID, content string, year int, month time.Month, day, hour, minute int, loc *time.Location) model.RawMessage {
	ts := time.Date(year, month, day, hour, minute, 0, 0, loc)
	return model.RawMessage{
		AuthorID:  authorID,
		Content:   content,
		Timestamp: ts.UTC().Format(time.RFC3339),
	}
}

// ReverseChronological returns a copy of msgs sorted newest first, matching
// the order the live fetcher produces.
func ReverseChronological(msgs []model.RawMessage) []model.RawMessage {
	out := make([]model.RawMessage, len(msgs))
	for i, msg := range msgs {
		out[len(msgs)-1-i] = msg
	}
	return out
}

// Malformed returns a raw message whose timestamp cannot be parsed.
func Malformed(authorID string) model.RawMessage {
	return model.RawMessage{
		AuthorID:  authorID,
		Content:   fmt.Sprintf("bad timestamp from %s", authorID),
		Timestamp: "not-a-timestamp",
	}
}
