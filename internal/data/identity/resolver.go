// Package identity resolves author ids to display names. Lookups are
// independent, so they fan out concurrently; a failed lookup is surfaced per
// author and never aborts the batch.
package identity

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/sync/errgroup"
)

// ResolutionError marks a display-name lookup failure for one author.
type ResolutionError struct {
	AuthorID string
	Err      error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolving display name for author %s: %v", e.AuthorID, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// Resolver looks up a single author's display name.
type Resolver interface {
	DisplayName(ctx context.Context, authorID string) (string, error)
}

// DiscordResolver resolves names through the Discord user API.
type DiscordResolver struct {
	session *discordgo.Session
}

func NewDiscordResolver(session *discordgo.Session) *DiscordResolver {
	return &DiscordResolver{session: session}
}

func (r *DiscordResolver) DisplayName(ctx context.Context, authorID string) (string, error) {
	user, err := r.session.User(authorID, discordgo.WithContext(ctx))
	if err != nil {
		return "", err
	}
	if user.GlobalName != "" {
		return user.GlobalName, nil
	}
	return user.Username, nil
}

// ResolveAll resolves every id with at most limit lookups in flight. It
// returns the resolved names plus a per-author error map; callers decide
// whether to fall back or fail.
func ResolveAll(ctx context.Context, r Resolver, ids []string, limit int) (map[string]string, map[string]error) {
	names := make(map[string]string, len(ids))
	failures := make(map[string]error)
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for _, id := range ids {
		id := id
		g.Go(func() error {
			name, err := r.DisplayName(ctx, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures[id] = &ResolutionError{AuthorID: id, Err: err}
				return nil
			}
			names[id] = name
			return nil
		})
	}

	g.Wait()
	return names, failures
}
