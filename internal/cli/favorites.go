package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// favoritesResult is the JSON payload of the favorites command.
type favoritesResult struct {
	Favorites []string `json:"favorites"`
	Followed  []string `json:"followed"`
}

// NewFavoritesCommand creates the favorites command: list what the
// database has persisted.
func NewFavoritesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "favorites",
		Short:         "List persisted favorites and followed topics",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFavorites(rootOpts, cmd)
		},
	}
}

func runFavorites(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		formatter.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading config", err)
	}

	rt, err := newRuntime(cfg)
	if err != nil {
		formatter.Error(ErrCodeDatabase, err.Error(), nil)
		return err
	}
	defer rt.Close()

	ctx := context.Background()
	favs, err := rt.db.Favorites(ctx)
	if err != nil {
		formatter.Error(ErrCodeDatabase, err.Error(), nil)
		return WrapExitError(ExitFailure, "reading favorites", err)
	}
	followed, err := rt.db.FollowedTopics(ctx)
	if err != nil {
		formatter.Error(ErrCodeDatabase, err.Error(), nil)
		return WrapExitError(ExitFailure, "reading followed topics", err)
	}

	result := favoritesResult{
		Favorites: sortedKeys(favs),
		Followed:  sortedKeys(followed),
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "favorites (%d):\n", len(result.Favorites))
	for _, id := range result.Favorites {
		fmt.Fprintf(out, "  %s\n", id)
	}
	fmt.Fprintf(out, "followed topics (%d):\n", len(result.Followed))
	for _, t := range result.Followed {
		fmt.Fprintf(out, "  %s\n", t)
	}
	return nil
}
