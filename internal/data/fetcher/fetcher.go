// Package fetcher retrieves the monitored channel's full message history.
// Discord pages history reverse-chronologically; the fetcher walks the pages
// into one owned snapshot so that classification never depends on fetch
// order.
package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/rivertam/pants-off-podrick/internal/core/model"
	"github.com/rivertam/pants-off-podrick/internal/util"
)

const pageSize = 100 // Discord's maximum per history request

// historyAPI is the slice of the Discord session the fetcher needs.
type historyAPI interface {
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error)
}

// Fetcher pulls channel history page by page.
type Fetcher struct {
	api historyAPI
}

func New(session *discordgo.Session) *Fetcher {
	return &Fetcher{api: session}
}

// Fetch retrieves every message in the channel, newest first, into an owned
// snapshot. Cancellation is honored between pages; transport errors are
// propagated unchanged with no retries.
func (f *Fetcher) Fetch(ctx context.Context, channelID string) ([]model.RawMessage, error) {
	start := time.Now()
	var msgs []model.RawMessage
	before := ""

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		batch, err := f.api.ChannelMessages(channelID, pageSize, before, "", "", discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("fetching channel history: %w", err)
		}
		if len(batch) == 0 {
			break
		}

		for _, m := range batch {
			msgs = append(msgs, model.RawMessage{
				AuthorID:  m.Author.ID,
				Content:   m.Content,
				Timestamp: m.Timestamp.UTC().Format(time.RFC3339),
			})
		}

		before = batch[len(batch)-1].ID
		if len(batch) < pageSize {
			break
		}
	}

	util.LogDebug(fmt.Sprintf("Fetched %d messages from channel %s in %v", len(msgs), channelID, time.Since(start)))
	return msgs, nil
}
