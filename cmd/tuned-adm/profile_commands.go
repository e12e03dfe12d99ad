package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"
)

func newProfileCommands(ctx *commandContext) []*cobra.Command {
	return []*cobra.Command{
		newListCommand(ctx),
		newActiveCommand(ctx),
		newOffCommand(ctx),
		newProfileCommand(ctx),
	}
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var details bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available profiles and the active one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := ctx.controller(cmd)
			if err != nil {
				return err
			}
			result := ctl.List()
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			if details {
				fmt.Fprintln(out, renderProfileTable(result, colorize))
			} else {
				fmt.Fprintln(out, "Available profiles:")
				for _, name := range result.Profiles {
					fmt.Fprintf(out, "- %s\n", name)
				}
			}
			fmt.Fprintln(out, renderActiveLine(result.Active, result.HasActive, colorize))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&details, "details", "d", false, "Show the layers providing each profile")
	return cmd
}

func newActiveCommand(ctx *commandContext) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "active",
		Short: "Show the active profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			if watch {
				return watchActive(cmd, ctx, out, colorize)
			}

			ctl, err := ctx.controller(cmd)
			if err != nil {
				return err
			}
			names, ok := ctl.ShowActive()
			fmt.Fprintln(out, renderActiveLine(names, ok, colorize))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep running and print the active profile whenever it changes")
	return cmd
}

func watchActive(cmd *cobra.Command, ctx *commandContext, out io.Writer, colorize bool) error {
	store, err := ctx.store(cmd)
	if err != nil {
		return err
	}

	cmdCtx := cmd.Context()
	if cmdCtx == nil {
		cmdCtx = context.Background()
	}
	signalCtx, cancel := signal.NotifyContext(cmdCtx, unix.SIGINT, unix.SIGTERM)
	defer cancel()

	return store.Watch(signalCtx, func(names []string, ok bool) {
		fmt.Fprintln(out, renderActiveLine(names, ok, colorize))
	})
}

func newOffCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "off",
		Short: "Stop all tuning",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := ctx.controller(cmd)
			if err != nil {
				return err
			}
			_, err = ctl.Deactivate()
			return err
		},
	}
}

func newProfileCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "profile <name>...",
		Short: "Switch to the given profiles",
		Long: "Switch to the given profiles. All names must exist; the active profile record is\n" +
			"written and the running daemon is told to reload.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := ctx.controller(cmd)
			if err != nil {
				return err
			}
			_, err = ctl.Activate(args)
			return err
		},
	}
}
