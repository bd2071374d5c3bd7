package cmdutil

import (
	"context"

	"github.com/spf13/cobra"
)

// Option configures the command created by New.
type Option func(*cobra.Command) error

// New creates a root command from the given options. PreRun and
// PersistentPreRun hooks of all options get chained, so every option can
// register its own without overwriting the others.
func New(use, desc string, options ...Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: desc,
	}

	var (
		preRuns           = make([]func(*cobra.Command, []string), 0)
		persistentPreRuns = make([]func(*cobra.Command, []string), 0)
	)

	for _, o := range options {
		err := o(cmd)
		Must(err)

		if cmd.PreRun != nil {
			preRuns = append(preRuns, cmd.PreRun)
		}
		cmd.PreRun = nil

		if cmd.PersistentPreRun != nil {
			persistentPreRuns = append(persistentPreRuns, cmd.PersistentPreRun)
		}
		cmd.PersistentPreRun = nil
	}

	if len(persistentPreRuns) > 0 {
		cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
			for _, run := range persistentPreRuns {
				run(cmd, args)
			}
		}
	}

	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		for _, run := range preRuns {
			run(cmd, args)
		}
	}

	return cmd
}

// WithSubCommand attaches a sub command.
func WithSubCommand(sub *cobra.Command) Option {
	return func(parent *cobra.Command) error {
		parent.AddCommand(sub)
		return nil
	}
}

// RunFuncWithContext is the signature of WithRun callbacks. The context
// gets cancelled on SIGINT and SIGTERM.
type RunFuncWithContext func(ctx context.Context, cmd *cobra.Command, args []string)

// WithRun sets the function that gets executed when no sub command was
// selected.
func WithRun(run RunFuncWithContext) Option {
	return func(cmd *cobra.Command) error {
		cmd.Run = func(cmd *cobra.Command, args []string) {
			run(SignalRootContext(), cmd, args)
		}
		return nil
	}
}
