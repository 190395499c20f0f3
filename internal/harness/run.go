package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/roach88/newsflow/internal/app"
	"github.com/roach88/newsflow/internal/feature/article"
	"github.com/roach88/newsflow/internal/feature/feed"
	"github.com/roach88/newsflow/internal/feature/reader"
	"github.com/roach88/newsflow/internal/feature/topics"
	"github.com/roach88/newsflow/internal/flux"
	"github.com/roach88/newsflow/internal/testutil"
)

// Run executes a scenario end to end against the real application store
// with scripted capabilities and returns the recorded trace, the final
// state and the assertion outcome.
//
// Each scenario runs in a fresh store with fresh in-memory capabilities for
// isolation; fixed tokens and per-step effect quiescence make the trace
// deterministic.
func Run(scenario *Scenario) (*Result, error) {
	caps := newScriptedCaps(scenario)
	trace := &tracer{}

	root := app.Reducer()
	recording := func(s app.State, a app.Action, e app.Env) (app.State, flux.Effect[app.Action]) {
		next, eff := root(s, a, e)
		trace.record(a, next)
		return next, eff
	}

	store := flux.New(app.NewState(scenario.Topics), flux.Reducer[app.State, app.Action, app.Env](recording), caps.env(),
		flux.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		flux.WithTokens(testutil.NewFixedTokens()),
	)
	defer store.Close()

	for i, step := range scenario.Steps {
		action, err := stepAction(step)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		store.Send(action)
		// Let the whole effect chain settle so the trace is deterministic.
		store.Wait()
	}

	result := &Result{
		Pass:  true,
		Trace: trace.snapshot(),
		Final: store.State(),
	}
	evaluateAssertions(result, scenario.Assertions)
	return result, nil
}

func stepAction(step Step) (app.Action, error) {
	switch step.Send {
	case "refresh":
		return app.FeedAction{Action: feed.RefreshTapped{}}, nil
	case "toggle_favorite":
		return app.FeedAction{Action: feed.ItemOf(step.ID, article.ToggleFavoriteTapped{})}, nil
	case "open_article":
		return app.FeedAction{Action: feed.ItemOf(step.ID, article.OpenTapped{})}, nil
	case "close_reader":
		return app.ReaderAction{Action: reader.CloseTapped{}}, nil
	case "font_increase":
		return app.ReaderAction{Action: reader.FontIncreased{}}, nil
	case "font_decrease":
		return app.ReaderAction{Action: reader.FontDecreased{}}, nil
	case "toggle_topic":
		return app.TopicAction{Keyed: flux.Keyed[app.TopicID, topics.ItemAction]{
			Key:    app.TopicID(step.ID),
			Action: topics.ToggleTapped{},
		}}, nil
	}
	return nil, fmt.Errorf("unknown send %q", step.Send)
}

// scriptedCaps are the in-memory capability implementations scenarios run
// against. All methods honor the scenario's FailSpec.
type scriptedCaps struct {
	mu        sync.Mutex
	scenario  *Scenario
	favorites map[string]bool
	followed  map[app.TopicID]bool
}

func newScriptedCaps(s *Scenario) *scriptedCaps {
	return &scriptedCaps{
		scenario:  s,
		favorites: make(map[string]bool),
		followed:  make(map[app.TopicID]bool),
	}
}

func (c *scriptedCaps) env() app.Env {
	return app.Env{
		Fetch: func(ctx context.Context) ([]feed.Article, error) {
			if msg := c.scenario.Fail.Fetch; msg != "" {
				return nil, errors.New(msg)
			}
			articles := make([]feed.Article, 0, len(c.scenario.Articles))
			for _, a := range c.scenario.Articles {
				articles = append(articles, feed.Article{
					ID:      a.ID,
					Title:   a.Title,
					URL:     a.URL,
					Topic:   a.Topic,
					Summary: a.Summary,
				})
			}
			return articles, nil
		},
		SaveFavorite: func(ctx context.Context, id string, fav bool) error {
			if msg := c.scenario.Fail.SaveFavorite; msg != "" {
				return errors.New(msg)
			}
			c.mu.Lock()
			defer c.mu.Unlock()
			c.favorites[id] = fav
			return nil
		},
		SetTopicFollowed: func(ctx context.Context, id app.TopicID, followed bool) error {
			if msg := c.scenario.Fail.FollowTopic; msg != "" {
				return errors.New(msg)
			}
			c.mu.Lock()
			defer c.mu.Unlock()
			c.followed[id] = followed
			return nil
		},
	}
}
