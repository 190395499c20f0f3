package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// feedsResult is the JSON payload of the feeds command.
type feedsResult struct {
	Count    int           `json:"count"`
	Articles []feedArticle `json:"articles"`
}

type feedArticle struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url,omitempty"`
	Topic    string `json:"topic,omitempty"`
	Favorite bool   `json:"favorite"`
}

// NewFeedsCommand creates the feeds command: fetch and list articles
// without entering the reader.
func NewFeedsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "feeds",
		Short:         "Fetch and list the configured feeds",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFeeds(rootOpts, cmd)
		},
	}
}

func runFeeds(opts *RootOptions, cmd *cobra.Command) error {
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

	formatter.VerboseLog("Fetching %d feed file(s)", len(cfg.Feeds))

	articles, err := rt.env().Fetch(context.Background())
	if err != nil {
		formatter.Error(ErrCodeFetch, err.Error(), nil)
		return WrapExitError(ExitFailure, "fetching feeds", err)
	}

	result := feedsResult{Count: len(articles)}
	for _, a := range articles {
		result.Articles = append(result.Articles, feedArticle{
			ID:       a.ID,
			Title:    a.Title,
			URL:      a.URL,
			Topic:    a.Topic,
			Favorite: a.Favorite,
		})
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d article(s)\n", result.Count)
	for _, a := range result.Articles {
		mark := " "
		if a.Favorite {
			mark = "*"
		}
		fmt.Fprintf(&b, "%s %-12s %s", mark, a.ID, a.Title)
		if a.Topic != "" {
			fmt.Fprintf(&b, " [%s]", a.Topic)
		}
		b.WriteString("\n")
	}
	fmt.Fprint(cmd.OutOrStdout(), b.String())
	return nil
}
