package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/roach88/newsflow/internal/app"
	"github.com/roach88/newsflow/internal/config"
	"github.com/roach88/newsflow/internal/favorites"
	"github.com/roach88/newsflow/internal/feature/feed"
	"github.com/roach88/newsflow/internal/source"
)

// loadConfig resolves the configuration: the --config file when given,
// built-in defaults otherwise.
func loadConfig(opts *RootOptions) (config.Config, error) {
	if opts.Config == "" {
		return config.Default(), nil
	}
	return config.Load(opts.Config)
}

// newLogger builds the CLI logger: text on stderr in verbose mode,
// discarded otherwise so the TUI owns the terminal.
func newLogger(opts *RootOptions) *slog.Logger {
	if opts.Verbose {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// runtime bundles the live capabilities a running application needs: the
// favorites database and the configured article sources.
type runtime struct {
	cfg config.Config
	db  *favorites.Store
	src source.Source
}

func newRuntime(cfg config.Config) (*runtime, error) {
	db, err := favorites.Open(cfg.Database)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "opening favorites database", err)
	}

	srcs := make([]source.Source, 0, len(cfg.Feeds))
	for _, f := range cfg.Feeds {
		srcs = append(srcs, source.NewFileSource(f.Path))
	}
	var src source.Source = &source.Multi{Sources: srcs}

	return &runtime{cfg: cfg, db: db, src: src}, nil
}

func (r *runtime) Close() error {
	return r.db.Close()
}

// env returns the application environment. Fetch overlays the persisted
// favorite flags onto whatever the sources deliver, so a restart shows the
// same stars as the last session.
func (r *runtime) env() app.Env {
	return app.Env{
		Fetch: func(ctx context.Context) ([]feed.Article, error) {
			articles, err := r.src.Fetch(ctx)
			if err != nil {
				return nil, err
			}
			favs, err := r.db.Favorites(ctx)
			if err != nil {
				return nil, fmt.Errorf("loading favorites: %w", err)
			}
			for i := range articles {
				articles[i].Favorite = favs[articles[i].ID]
			}
			return articles, nil
		},
		SaveFavorite: func(ctx context.Context, id string, favorite bool) error {
			return r.db.SetFavorite(ctx, id, favorite)
		},
		SetTopicFollowed: func(ctx context.Context, id app.TopicID, followed bool) error {
			return r.db.SetTopicFollowed(ctx, string(id), followed)
		},
	}
}

// initialState seeds the state tree from config topics and the persisted
// followed flags.
func (r *runtime) initialState(ctx context.Context) (app.State, error) {
	st := app.NewState(r.cfg.Topics)
	followed, err := r.db.FollowedTopics(ctx)
	if err != nil {
		return app.State{}, fmt.Errorf("loading followed topics: %w", err)
	}
	for name, on := range followed {
		id := app.TopicID(name)
		if row, ok := st.Topics[id]; ok && on {
			row.Followed = true
			st.Topics[id] = row
		}
	}
	return st, nil
}

// sortedKeys returns the true keys of a string-keyed flag map, sorted.
func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k, on := range m {
		if on {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
