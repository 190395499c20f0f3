package topics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/newsflow/internal/flux"
)

func drain(t *testing.T, eff flux.Effect[ItemAction]) []ItemAction {
	t.Helper()
	if eff == nil {
		return nil
	}
	var out []ItemAction
	eff(context.Background(), func(a ItemAction) { out = append(out, a) })
	return out
}

func TestItemReducer_StringKey(t *testing.T) {
	var gotKey string
	env := ItemEnv[string]{SetFollowed: func(ctx context.Context, key string, f bool) error {
		gotKey = key
		return nil
	}}
	r := ItemReducer[string]()

	s := ItemState[string]{Key: "go", Name: "Go"}
	s, eff := r(s, ToggleTapped{}, env)
	assert.True(t, s.Followed)
	assert.True(t, s.Saving)

	actions := drain(t, eff)
	require.Equal(t, []ItemAction{Saved{Followed: true}}, actions)
	assert.Equal(t, "go", gotKey, "the state's own key reaches the capability")

	s, _ = r(s, actions[0], env)
	assert.False(t, s.Saving)
}

func TestItemReducer_IntKey(t *testing.T) {
	// The reducer is generic over the key type; nothing else changes.
	var gotKey int
	env := ItemEnv[int]{SetFollowed: func(ctx context.Context, key int, f bool) error {
		gotKey = key
		return nil
	}}
	r := ItemReducer[int]()

	s := ItemState[int]{Key: 7, Name: "Science"}
	_, eff := r(s, ToggleTapped{}, env)
	drain(t, eff)
	assert.Equal(t, 7, gotKey)
}

func TestItemReducer_FailureReverts(t *testing.T) {
	env := ItemEnv[string]{SetFollowed: func(ctx context.Context, key string, f bool) error {
		return errors.New("offline")
	}}
	r := ItemReducer[string]()

	s := ItemState[string]{Key: "go"}
	s, eff := r(s, ToggleTapped{}, env)
	actions := drain(t, eff)
	require.Len(t, actions, 1)

	s, _ = r(s, actions[0], env)
	assert.False(t, s.Followed)
	assert.Equal(t, "offline", s.LastErr)
}

func TestItemReducer_ComposesWithForEach(t *testing.T) {
	type listState struct {
		Items map[string]ItemState[string]
	}
	type listAction struct {
		Item *flux.Keyed[string, ItemAction]
	}

	lens := flux.Lens[listState, map[string]ItemState[string]]{
		Get: func(s listState) map[string]ItemState[string] { return s.Items },
		Set: func(s listState, m map[string]ItemState[string]) listState { s.Items = m; return s },
	}
	prism := flux.Prism[listAction, flux.Keyed[string, ItemAction]]{
		Extract: func(a listAction) (flux.Keyed[string, ItemAction], bool) {
			if a.Item == nil {
				return flux.Keyed[string, ItemAction]{}, false
			}
			return *a.Item, true
		},
		Embed: func(k flux.Keyed[string, ItemAction]) listAction { return listAction{Item: &k} },
	}
	env := ItemEnv[string]{SetFollowed: func(context.Context, string, bool) error { return nil }}

	r := flux.ForEach(ItemReducer[string](), lens, prism,
		func(e ItemEnv[string]) ItemEnv[string] { return e })

	s := listState{Items: map[string]ItemState[string]{
		"go":   {Key: "go", Name: "Go"},
		"rust": {Key: "rust", Name: "Rust"},
	}}
	next, _ := r(s, listAction{Item: &flux.Keyed[string, ItemAction]{Key: "go", Action: ToggleTapped{}}}, env)

	assert.True(t, next.Items["go"].Followed)
	assert.False(t, next.Items["rust"].Followed)
}
