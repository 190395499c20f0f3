// Package article implements the per-article card state machine: one
// independent reducer per list entry, composed into the feed through
// flux.ForEach.
package article

import (
	"context"

	"github.com/roach88/newsflow/internal/flux"
)

// State is one article card as the list renders it.
type State struct {
	ID       string
	Title    string
	URL      string
	Topic    string
	Summary  string
	Favorite bool
	Saving   bool
	LastErr  string
}

// Action is the closed set of article card events.
type Action interface {
	isArticleAction()
}

// ToggleFavoriteTapped is the user intent to flip the favorite flag.
type ToggleFavoriteTapped struct{}

// OpenTapped is the user intent to read the article. The card reducer does
// not consume it; the application root claims it to activate the reader.
type OpenTapped struct{}

// FavoriteSaved reports that persistence accepted the new favorite value.
type FavoriteSaved struct {
	Favorite bool
}

// FavoriteSaveFailed reports that persistence rejected the toggle. It is an
// ordinary action: capability failures surface through the pipeline, never
// as errors escaping an effect.
type FavoriteSaveFailed struct {
	Reason string
}

func (ToggleFavoriteTapped) isArticleAction() {}
func (OpenTapped) isArticleAction()           {}
func (FavoriteSaved) isArticleAction()        {}
func (FavoriteSaveFailed) isArticleAction()   {}

// Env carries the card's side-effecting capabilities.
type Env struct {
	// SaveFavorite persists the favorite flag for an article.
	SaveFavorite func(ctx context.Context, id string, favorite bool) error
}

// Reducer returns the article card transition function.
//
// The favorite toggle is optimistic: the flag flips immediately and the
// persistence result arrives later as FavoriteSaved or FavoriteSaveFailed,
// the latter reverting the flip.
func Reducer() flux.Reducer[State, Action, Env] {
	return func(s State, a Action, env Env) (State, flux.Effect[Action]) {
		switch act := a.(type) {
		case ToggleFavoriteTapped:
			if s.Saving {
				// One save in flight at a time; drop the tap.
				return s, nil
			}
			s.Favorite = !s.Favorite
			s.Saving = true
			s.LastErr = ""
			id, next := s.ID, s.Favorite
			return s, flux.Future(func(ctx context.Context) (Action, bool) {
				if err := env.SaveFavorite(ctx, id, next); err != nil {
					return FavoriteSaveFailed{Reason: err.Error()}, true
				}
				return FavoriteSaved{Favorite: next}, true
			})

		case FavoriteSaved:
			s.Saving = false
			s.Favorite = act.Favorite
			s.LastErr = ""
			return s, nil

		case FavoriteSaveFailed:
			s.Saving = false
			s.Favorite = !s.Favorite // revert the optimistic flip
			s.LastErr = act.Reason
			return s, nil

		case OpenTapped:
			// Claimed by the application root; nothing to do at card level.
			return s, nil
		}
		return s, nil
	}
}
