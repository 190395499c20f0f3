package favorites

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSetFavorite_RoundTrip(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	fav, err := s.IsFavorite(ctx, "a1")
	require.NoError(t, err)
	assert.False(t, fav)

	require.NoError(t, s.SetFavorite(ctx, "a1", true))
	fav, err = s.IsFavorite(ctx, "a1")
	require.NoError(t, err)
	assert.True(t, fav)

	// Setting twice is idempotent.
	require.NoError(t, s.SetFavorite(ctx, "a1", true))

	require.NoError(t, s.SetFavorite(ctx, "a1", false))
	fav, err = s.IsFavorite(ctx, "a1")
	require.NoError(t, err)
	assert.False(t, fav)
}

func TestFavorites_Set(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	require.NoError(t, s.SetFavorite(ctx, "a1", true))
	require.NoError(t, s.SetFavorite(ctx, "a2", true))
	require.NoError(t, s.SetFavorite(ctx, "a2", false))

	favs, err := s.Favorites(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"a1": true}, favs)
}

func TestTopics_RoundTrip(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	require.NoError(t, s.SetTopicFollowed(ctx, "go", true))
	require.NoError(t, s.SetTopicFollowed(ctx, "science", true))
	require.NoError(t, s.SetTopicFollowed(ctx, "science", false))

	topics, err := s.FollowedTopics(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"go": true}, topics)
}

func TestOpen_FileReopen(t *testing.T) {
	path := t.TempDir() + "/newsflow.db"
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.SetFavorite(ctx, "a1", true))
	require.NoError(t, s.Close())

	// Reopen: schema application is idempotent, data survives.
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	fav, err := s.IsFavorite(ctx, "a1")
	require.NoError(t, err)
	assert.True(t, fav)
}
