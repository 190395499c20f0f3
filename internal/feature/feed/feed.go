// Package feed implements the article list feature: refreshing from a
// source and fanning item actions out to per-article card reducers.
package feed

import (
	"context"
	"sort"

	"github.com/roach88/newsflow/internal/feature/article"
	"github.com/roach88/newsflow/internal/flux"
)

// Article is what a source delivers. The feed owns the shape so sources and
// transports stay behind the Env closure.
type Article struct {
	ID       string
	Title    string
	URL      string
	Topic    string
	Summary  string
	Favorite bool
}

// State is the article list.
type State struct {
	// Articles holds one card state per article ID.
	Articles map[string]article.State
	// Order is the stable display order; insertion order of the map is
	// irrelevant.
	Order   []string
	Loading bool
	LastErr string
}

// Action is the closed set of feed events.
type Action interface {
	isFeedAction()
}

// RefreshTapped asks the feed to reload from its source.
type RefreshTapped struct{}

// Loaded carries a successful fetch result.
type Loaded struct {
	Articles []Article
}

// LoadFailed carries a fetch failure converted to an action at the effect
// boundary.
type LoadFailed struct {
	Reason string
}

// Item routes an action to one article card by ID.
type Item struct {
	flux.Keyed[string, article.Action]
}

func (RefreshTapped) isFeedAction() {}
func (Loaded) isFeedAction()       {}
func (LoadFailed) isFeedAction()   {}
func (Item) isFeedAction()         {}

// ItemOf builds the Item variant for a (key, card action) pair.
func ItemOf(id string, a article.Action) Item {
	return Item{flux.Keyed[string, article.Action]{Key: id, Action: a}}
}

// Env carries the feed capabilities. Fetch is the narrow boundary to
// whatever repository the host wired in; the feed never sees transports.
type Env struct {
	Fetch   func(ctx context.Context) ([]Article, error)
	Article article.Env
}

// ArticlesLens focuses the card collection; exported for composition tests
// and the application root.
var ArticlesLens = flux.Lens[State, map[string]article.State]{
	Get: func(s State) map[string]article.State { return s.Articles },
	Set: func(s State, m map[string]article.State) State { s.Articles = m; return s },
}

// ItemPrism matches Item actions into keyed card actions and back.
var ItemPrism = flux.Prism[Action, flux.Keyed[string, article.Action]]{
	Extract: func(a Action) (flux.Keyed[string, article.Action], bool) {
		item, ok := a.(Item)
		if !ok {
			return flux.Keyed[string, article.Action]{}, false
		}
		return item.Keyed, true
	},
	Embed: func(k flux.Keyed[string, article.Action]) Action { return Item{k} },
}

// Reducer returns the feed transition function: the list-level reducer
// combined with the card reducer fanned out over the article map.
func Reducer() flux.Reducer[State, Action, Env] {
	return flux.Combine(
		listReducer,
		flux.ForEach(article.Reducer(), ArticlesLens, ItemPrism, func(e Env) article.Env {
			return e.Article
		}),
	)
}

func listReducer(s State, a Action, env Env) (State, flux.Effect[Action]) {
	switch act := a.(type) {
	case RefreshTapped:
		if s.Loading {
			return s, nil
		}
		s.Loading = true
		s.LastErr = ""
		return s, flux.Future(func(ctx context.Context) (Action, bool) {
			articles, err := env.Fetch(ctx)
			if err != nil {
				return LoadFailed{Reason: err.Error()}, true
			}
			return Loaded{Articles: articles}, true
		})

	case Loaded:
		s.Loading = false
		s.LastErr = ""
		s.Articles = make(map[string]article.State, len(act.Articles))
		s.Order = make([]string, 0, len(act.Articles))
		for _, art := range act.Articles {
			s.Articles[art.ID] = article.State{
				ID:       art.ID,
				Title:    art.Title,
				URL:      art.URL,
				Topic:    art.Topic,
				Summary:  art.Summary,
				Favorite: art.Favorite,
			}
			s.Order = append(s.Order, art.ID)
		}
		return s, nil

	case LoadFailed:
		s.Loading = false
		s.LastErr = act.Reason
		return s, nil

	case Item:
		// The ForEach slice owns item actions.
		return s, nil
	}
	return s, nil
}

// Favorites returns the IDs currently marked favorite, sorted for
// deterministic output.
func (s State) Favorites() []string {
	var ids []string
	for id, card := range s.Articles {
		if card.Favorite {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
