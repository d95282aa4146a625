package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/orris-inc/footprint/internal/interfaces/cli/bootstrap"
	"github.com/orris-inc/footprint/internal/interfaces/cli/configcmd"
	"github.com/orris-inc/footprint/internal/interfaces/cli/events"
	"github.com/orris-inc/footprint/internal/interfaces/cli/migrate"
	"github.com/orris-inc/footprint/internal/interfaces/cli/tracker"
)

func main() {
	opts := &bootstrap.Options{}

	rootCmd := &cobra.Command{
		Use:          "footprint",
		Short:        "Footprint - local app usage and clipboard logger",
		Long:         `Footprint records which application and window has focus and what text you copy, into a local SQLite store under ~/.clip-log.`,
		SilenceUsage: true,
	}
	opts.AddFlags(rootCmd)

	rootCmd.AddCommand(
		tracker.NewAppsCommand(opts),
		tracker.NewClipCommand(opts),
		tracker.NewRunCommand(opts),
		events.NewCommand(opts),
		migrate.NewCommand(opts),
		configcmd.NewCommand(opts),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
