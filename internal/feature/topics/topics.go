// Package topics implements the followed-topics list. The item reducer is
// generic over the key type so applications can key topics however they
// like (string slugs here, numeric IDs elsewhere) without touching the
// composition combinators.
package topics

import (
	"context"

	"github.com/roach88/newsflow/internal/flux"
)

// ItemState is one topic row. It carries its own key so the generic reducer
// can address persistence without help from the combinator.
type ItemState[K comparable] struct {
	Key      K
	Name     string
	Followed bool
	Saving   bool
	LastErr  string
}

// ItemAction is the closed set of topic row events.
type ItemAction interface {
	isTopicAction()
}

// ToggleTapped is the user intent to follow or unfollow a topic.
type ToggleTapped struct{}

// Saved reports that persistence accepted the new followed value.
type Saved struct {
	Followed bool
}

// SaveFailed reports a persistence failure as an ordinary action.
type SaveFailed struct {
	Reason string
}

func (ToggleTapped) isTopicAction() {}
func (Saved) isTopicAction()       {}
func (SaveFailed) isTopicAction()  {}

// ItemEnv carries the topic capabilities, keyed like the state.
type ItemEnv[K comparable] struct {
	SetFollowed func(ctx context.Context, key K, followed bool) error
}

// ItemReducer returns the generic topic row transition function. The toggle
// is optimistic, mirroring the article favorite flow.
func ItemReducer[K comparable]() flux.Reducer[ItemState[K], ItemAction, ItemEnv[K]] {
	return func(s ItemState[K], a ItemAction, env ItemEnv[K]) (ItemState[K], flux.Effect[ItemAction]) {
		switch act := a.(type) {
		case ToggleTapped:
			if s.Saving {
				return s, nil
			}
			s.Followed = !s.Followed
			s.Saving = true
			s.LastErr = ""
			key, next := s.Key, s.Followed
			return s, flux.Future(func(ctx context.Context) (ItemAction, bool) {
				if err := env.SetFollowed(ctx, key, next); err != nil {
					return SaveFailed{Reason: err.Error()}, true
				}
				return Saved{Followed: next}, true
			})

		case Saved:
			s.Saving = false
			s.Followed = act.Followed
			s.LastErr = ""
			return s, nil

		case SaveFailed:
			s.Saving = false
			s.Followed = !s.Followed
			s.LastErr = act.Reason
			return s, nil
		}
		return s, nil
	}
}
