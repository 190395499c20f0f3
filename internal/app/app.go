// Package app composes the newsflow features into the root state machine.
//
// The root reducer owns only cross-feature transitions (activating and
// dismissing the reader); everything else is pulled back from the feature
// packages, each aware of nothing beyond its own slice.
package app

import (
	"context"

	"github.com/roach88/newsflow/internal/feature/article"
	"github.com/roach88/newsflow/internal/feature/feed"
	"github.com/roach88/newsflow/internal/feature/reader"
	"github.com/roach88/newsflow/internal/feature/topics"
	"github.com/roach88/newsflow/internal/flux"
)

// TopicID keys the followed-topics collection.
type TopicID string

// State is the whole-application state tree.
type State struct {
	Feed feed.State
	// Reader is present only while an article is open.
	Reader *reader.State
	Topics map[TopicID]topics.ItemState[TopicID]
	// TopicOrder is the stable display order of the topic list.
	TopicOrder []TopicID
}

// NewState builds the initial state with the given topics, none followed.
func NewState(topicNames []string) State {
	s := State{
		Topics:     make(map[TopicID]topics.ItemState[TopicID], len(topicNames)),
		TopicOrder: make([]TopicID, 0, len(topicNames)),
	}
	for _, name := range topicNames {
		id := TopicID(name)
		s.Topics[id] = topics.ItemState[TopicID]{Key: id, Name: name}
		s.TopicOrder = append(s.TopicOrder, id)
	}
	return s
}

// Action is the root action sum. Feature actions arrive wrapped in their
// slice variant; the wrapping is what the pullback prisms match on.
type Action interface {
	isAppAction()
}

// FeedAction lifts a feed event into the root domain.
type FeedAction struct {
	Action feed.Action
}

// ReaderAction lifts a reader event into the root domain.
type ReaderAction struct {
	Action reader.Action
}

// TopicAction routes an event to one topic row.
type TopicAction struct {
	flux.Keyed[TopicID, topics.ItemAction]
}

func (FeedAction) isAppAction()   {}
func (ReaderAction) isAppAction() {}
func (TopicAction) isAppAction()  {}

// Env is the application capability bundle, supplied by the host. It is a
// pure value bag of closures, safe to share across concurrent effects.
type Env struct {
	Fetch            func(ctx context.Context) ([]feed.Article, error)
	SaveFavorite     func(ctx context.Context, id string, favorite bool) error
	SetTopicFollowed func(ctx context.Context, id TopicID, followed bool) error
}

func (e Env) feedEnv() feed.Env {
	return feed.Env{
		Fetch:   e.Fetch,
		Article: article.Env{SaveFavorite: e.SaveFavorite},
	}
}

var feedLens = flux.Lens[State, feed.State]{
	Get: func(s State) feed.State { return s.Feed },
	Set: func(s State, f feed.State) State { s.Feed = f; return s },
}

var feedPrism = flux.Prism[Action, feed.Action]{
	Extract: func(a Action) (feed.Action, bool) {
		fa, ok := a.(FeedAction)
		if !ok {
			return nil, false
		}
		return fa.Action, true
	},
	Embed: func(fa feed.Action) Action { return FeedAction{Action: fa} },
}

var readerOptional = flux.Optional[State, reader.State]{
	Get: func(s State) (reader.State, bool) {
		if s.Reader == nil {
			return reader.State{}, false
		}
		return *s.Reader, true
	},
	Set: func(s State, r reader.State) State {
		if s.Reader == nil {
			return s
		}
		cp := r
		s.Reader = &cp
		return s
	},
}

var readerPrism = flux.Prism[Action, reader.Action]{
	Extract: func(a Action) (reader.Action, bool) {
		ra, ok := a.(ReaderAction)
		if !ok {
			return nil, false
		}
		return ra.Action, true
	},
	Embed: func(ra reader.Action) Action { return ReaderAction{Action: ra} },
}

var topicsLens = flux.Lens[State, map[TopicID]topics.ItemState[TopicID]]{
	Get: func(s State) map[TopicID]topics.ItemState[TopicID] { return s.Topics },
	Set: func(s State, m map[TopicID]topics.ItemState[TopicID]) State { s.Topics = m; return s },
}

var topicPrism = flux.Prism[Action, flux.Keyed[TopicID, topics.ItemAction]]{
	Extract: func(a Action) (flux.Keyed[TopicID, topics.ItemAction], bool) {
		ta, ok := a.(TopicAction)
		if !ok {
			return flux.Keyed[TopicID, topics.ItemAction]{}, false
		}
		return ta.Keyed, true
	},
	Embed: func(k flux.Keyed[TopicID, topics.ItemAction]) Action { return TopicAction{k} },
}

// Reducer returns the root transition function. The root slice folds first
// so cross-feature transitions are visible to the feature slices in the
// same commit.
func Reducer() flux.Reducer[State, Action, Env] {
	return flux.Combine(
		rootReducer,
		flux.Pullback(feed.Reducer(), feedLens, feedPrism, Env.feedEnv),
		flux.PullbackOptional(reader.Reducer(), readerOptional, readerPrism,
			func(Env) reader.Env { return reader.Env{} }),
		flux.ForEach(topics.ItemReducer[TopicID](), topicsLens, topicPrism,
			func(e Env) topics.ItemEnv[TopicID] {
				return topics.ItemEnv[TopicID]{SetFollowed: e.SetTopicFollowed}
			}),
	)
}

// rootReducer claims the two cross-feature transitions: a card's OpenTapped
// activates the reader from the card's current state, and the reader's
// CloseTapped clears it (making the reader slice absent before its pullback
// runs, which is then a no-op by the optional contract).
func rootReducer(s State, a Action, _ Env) (State, flux.Effect[Action]) {
	switch act := a.(type) {
	case FeedAction:
		item, ok := act.Action.(feed.Item)
		if !ok {
			return s, nil
		}
		if _, ok := item.Action.(article.OpenTapped); !ok {
			return s, nil
		}
		card, ok := s.Feed.Articles[item.Key]
		if !ok {
			// Stale open on a removed article: no-op, same as ForEach.
			return s, nil
		}
		pane := reader.Open(card.ID, card.Title, card.URL, card.Summary)
		s.Reader = &pane
		return s, nil

	case ReaderAction:
		if _, ok := act.Action.(reader.CloseTapped); ok {
			s.Reader = nil
		}
		return s, nil
	}
	return s, nil
}
