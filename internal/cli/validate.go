package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/roach88/newsflow/internal/config"
)

// validateResult is the JSON payload of the validate command.
type validateResult struct {
	Valid  bool   `json:"valid"`
	Code   string `json:"code,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// NewValidateCommand creates the validate command: check a config file
// against the schema without starting anything.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "validate <config-file>",
		Short:         "Validate a config file against the schema",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	_, err := config.Load(path)
	if err == nil {
		if opts.Format == "json" {
			return formatter.Success(validateResult{Valid: true})
		}
		return formatter.Success("config valid")
	}

	var loadErr *config.LoadError
	if errors.As(err, &loadErr) {
		formatter.Error(loadErr.Code, loadErr.Message, nil)
		if loadErr.Code == config.ErrCodeNotFound {
			return NewExitError(ExitCommandError, loadErr.Message)
		}
		return NewExitError(ExitFailure, loadErr.Message)
	}

	formatter.Error(ErrCodeGeneric, err.Error(), nil)
	return WrapExitError(ExitFailure, "validating config", err)
}
