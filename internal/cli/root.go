// Package cli defines Cobra command definitions for the scrapline CLI.
// This file contains the root command, version flag, and help output.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scrapline-dev/scrapline/internal/tui"
	"github.com/scrapline-dev/scrapline/internal/tui/app"
)

var version = "dev" // set via ldflags at build time

var rootCmd = &cobra.Command{
	Use:   "scrapline",
	Short: "Schedule and track scrap pickups from your terminal",
	Long: `Scrapline is a client for scheduling scrap-collection pickups.
Log in with your phone number, schedule a pickup for a date and time
slot, and follow each order from Pending to Completed.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// When no subcommand is provided, launch TUI if TTY, show help otherwise
		if !tui.IsTTY() {
			return cmd.Help()
		}

		env, err := openEnv()
		if err != nil {
			return err
		}
		defer env.Close()

		tuiApp := app.New(env.Cfg, env.Store, env.Verifier)
		return tui.Run(tuiApp)
	},
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(logoutCmd)
}
