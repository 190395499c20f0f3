package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/roach88/newsflow/internal/app"
	"github.com/roach88/newsflow/internal/flux"
	"github.com/roach88/newsflow/internal/ui"
)

// NewReadCommand creates the read command: the interactive terminal reader.
func NewReadCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "read",
		Short: "Open the interactive reader",
		Long:  `Open the full-screen terminal reader.

Feeds come from the configured feed files, favorites and followed topics
persist in the configured SQLite database across sessions.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(rootOpts)
		},
	}
}

func runRead(opts *RootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading config", err)
	}

	rt, err := newRuntime(cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	store, err := newStore(opts, rt)
	if err != nil {
		return err
	}
	defer store.Close()

	// The channel closes with the store's context when the store closes.
	states := store.States(store.Context())

	program := tea.NewProgram(ui.New(store, states), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return WrapExitError(ExitFailure, "running reader", err)
	}
	return nil
}

func newStore(opts *RootOptions, rt *runtime) (*flux.Store[app.State, app.Action], error) {
	initial, err := rt.initialState(context.Background())
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "seeding state", err)
	}
	return flux.New(initial, app.Reducer(), rt.env(),
		flux.WithLogger(newLogger(opts))), nil
}
