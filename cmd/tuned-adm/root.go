package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tunedadm/internal/daemonctl"
)

// errMissingArguments reports a bare invocation without a command.
var errMissingArguments = errors.New("missing arguments; run 'tuned-adm help' for usage")

type rootOption func(*commandContext)

// withEUID replaces the effective-uid lookup used for privilege checks.
func withEUID(fn func() int) rootOption {
	return func(c *commandContext) { c.euid = fn }
}

// withSignaler replaces real signal delivery to the daemon.
func withSignaler(s daemonctl.Signaler) rootOption {
	return func(c *commandContext) { c.signaler = s }
}

func newRootCommand(opts ...rootOption) *cobra.Command {
	var configFlag string
	var verbose bool

	ctx := newCommandContext(&configFlag, &verbose)
	for _, opt := range opts {
		opt(ctx)
	}

	rootCmd := &cobra.Command{
		Use:           "tuned-adm",
		Short:         "Manage tuned profiles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
			return errMissingArguments
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostic details to stderr")

	for _, cmd := range newProfileCommands(ctx) {
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
