package article

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/newsflow/internal/flux"
)

func drain(t *testing.T, eff flux.Effect[Action]) []Action {
	t.Helper()
	if eff == nil {
		return nil
	}
	var out []Action
	eff(context.Background(), func(a Action) { out = append(out, a) })
	return out
}

func TestToggleFavorite_OptimisticThenSaved(t *testing.T) {
	var savedID string
	var savedFav bool
	env := Env{SaveFavorite: func(ctx context.Context, id string, fav bool) error {
		savedID, savedFav = id, fav
		return nil
	}}
	r := Reducer()

	s := State{ID: "a1", Favorite: false}
	s, eff := r(s, ToggleFavoriteTapped{}, env)

	assert.True(t, s.Favorite, "flip is optimistic")
	assert.True(t, s.Saving)

	actions := drain(t, eff)
	require.Len(t, actions, 1)
	assert.Equal(t, FavoriteSaved{Favorite: true}, actions[0])
	assert.Equal(t, "a1", savedID)
	assert.True(t, savedFav)

	s, eff = r(s, actions[0], env)
	assert.True(t, s.Favorite)
	assert.False(t, s.Saving)
	assert.Nil(t, eff)
}

func TestToggleFavorite_FailureReverts(t *testing.T) {
	env := Env{SaveFavorite: func(ctx context.Context, id string, fav bool) error {
		return errors.New("disk full")
	}}
	r := Reducer()

	s := State{ID: "a1"}
	s, eff := r(s, ToggleFavoriteTapped{}, env)
	require.True(t, s.Favorite)

	actions := drain(t, eff)
	require.Len(t, actions, 1)
	failed, ok := actions[0].(FavoriteSaveFailed)
	require.True(t, ok, "capability failure must surface as an action")
	assert.Equal(t, "disk full", failed.Reason)

	s, _ = r(s, failed, env)
	assert.False(t, s.Favorite, "optimistic flip reverted")
	assert.False(t, s.Saving)
	assert.Equal(t, "disk full", s.LastErr)
}

func TestToggleFavorite_DroppedWhileSaving(t *testing.T) {
	r := Reducer()
	s := State{ID: "a1", Saving: true, Favorite: true}

	next, eff := r(s, ToggleFavoriteTapped{}, Env{})
	assert.Equal(t, s, next)
	assert.Nil(t, eff)
}

func TestOpenTapped_NoOpAtCardLevel(t *testing.T) {
	r := Reducer()
	s := State{ID: "a1", Title: "t"}

	next, eff := r(s, OpenTapped{}, Env{})
	assert.Equal(t, s, next)
	assert.Nil(t, eff)
}
