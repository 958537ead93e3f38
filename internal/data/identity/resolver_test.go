package identity

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	names map[string]string
}

func (f *fakeResolver) DisplayName(ctx context.Context, authorID string) (string, error) {
	if name, ok := f.names[authorID]; ok {
		return name, nil
	}
	return "", fmt.Errorf("unknown user %s", authorID)
}

func TestResolveAll(t *testing.T) {
	r := &fakeResolver{names: map[string]string{
		"111": "alice",
		"222": "bob",
	}}

	names, failures := ResolveAll(context.Background(), r, []string{"111", "222"}, 4)

	assert.Empty(t, failures)
	assert.Equal(t, map[string]string{"111": "alice", "222": "bob"}, names)
}

func TestResolveAllPartialFailure(t *testing.T) {
	r := &fakeResolver{names: map[string]string{"111": "alice"}}

	names, failures := ResolveAll(context.Background(), r, []string{"111", "404"}, 4)

	assert.Equal(t, map[string]string{"111": "alice"}, names, "one failure must not poison the batch")
	require.Len(t, failures, 1)

	var resErr *ResolutionError
	require.ErrorAs(t, failures["404"], &resErr)
	assert.Equal(t, "404", resErr.AuthorID)
	assert.Contains(t, resErr.Error(), "404")
	assert.NotNil(t, errors.Unwrap(resErr))
}

func TestResolveAllEmpty(t *testing.T) {
	names, failures := ResolveAll(context.Background(), &fakeResolver{}, nil, 4)
	assert.Empty(t, names)
	assert.Empty(t, failures)
}
