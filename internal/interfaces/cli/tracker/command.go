// Package tracker holds the long-running commands: apps, clip and run.
package tracker

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	clipboardApp "github.com/orris-inc/footprint/internal/application/clipboard"
	usageApp "github.com/orris-inc/footprint/internal/application/usage"
	"github.com/orris-inc/footprint/internal/infrastructure/platform"
	"github.com/orris-inc/footprint/internal/infrastructure/repository"
	"github.com/orris-inc/footprint/internal/infrastructure/scheduler"
	"github.com/orris-inc/footprint/internal/interfaces/cli/bootstrap"
	"github.com/orris-inc/footprint/internal/interfaces/console"
	"github.com/orris-inc/footprint/internal/shared/biztime"
)

// Job names, also printed in the startup banner.
const (
	AppTrackerName = "app-tracker"
	ClipLogName    = "clip-log"
)

// selection says which trackers a command hosts.
type selection struct {
	apps bool
	clip bool
}

func NewAppsCommand(opts *bootstrap.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "apps",
		Short: "Record which application and window has focus",
		Long:  `Sample the focused application and window title every 3 seconds and store one row per usage session of at least 2 seconds.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, selection{apps: true}, cmd.OutOrStdout())
		},
	}
}

func NewClipCommand(opts *bootstrap.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "clip",
		Short: "Record clipboard text",
		Long:  `Poll the clipboard every 500 milliseconds and store new, non-sensitive text copies.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, selection{clip: true}, cmd.OutOrStdout())
		},
	}
}

func NewRunCommand(opts *bootstrap.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the app tracker and the clipboard logger together",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, selection{apps: true, clip: true}, cmd.OutOrStdout())
		},
	}
}

func run(parent context.Context, opts *bootstrap.Options, sel selection, out io.Writer) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := bootstrap.Open(ctx, opts, true)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer rt.Close()

	sched, err := scheduler.NewSchedulerManager(rt.Logger)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	banners, err := register(ctx, rt, sched, sel, out)
	if err != nil {
		return err
	}

	sched.Start()
	for _, b := range banners {
		fmt.Fprintln(out, b)
	}

	<-ctx.Done()
	rt.Logger.Infow("received signal, shutting down")

	return sched.Stop()
}

// register builds the selected trackers and schedules their ticks. It
// returns the startup lines to print.
func register(
	ctx context.Context,
	rt *bootstrap.Runtime,
	sched *scheduler.SchedulerManager,
	sel selection,
	out io.Writer,
) ([]string, error) {
	log := rt.Logger
	clock := biztime.System()
	printer := console.NewPrinter(out)
	feed := rt.EventFeed()
	focus := platform.NewFocusProvider(log)
	dbPath := rt.Config.Store.Path()

	var banners []string

	if sel.apps {
		notifiers := []usageApp.SessionNotifier{printer}
		if feed != nil {
			notifiers = append(notifiers, feed)
		}

		tracker := usageApp.NewSessionTracker(
			repository.NewAppUsageRepository(rt.DB, log.Named("repository.app_usage")),
			focus,
			clock,
			log.Named(AppTrackerName),
			notifiers...,
		)
		if err := sched.Repeat(AppTrackerName, usageApp.TickInterval, tracker.Tick); err != nil {
			return nil, fmt.Errorf("failed to schedule %s: %w", AppTrackerName, err)
		}
		banners = append(banners, fmt.Sprintf("%s started. DB: %s", AppTrackerName, dbPath))
	}

	if sel.clip {
		notifiers := []clipboardApp.EntryNotifier{printer}
		if feed != nil {
			notifiers = append(notifiers, feed)
		}

		watcher := clipboardApp.NewWatcher(
			ctx,
			platform.NewSystemClipboard(log),
			focus,
			repository.NewClipboardRepository(rt.DB, log.Named("repository.clipboard")),
			clock,
			log.Named(ClipLogName),
			notifiers...,
		)
		if err := sched.Repeat(ClipLogName, clipboardApp.TickInterval, watcher.Tick); err != nil {
			return nil, fmt.Errorf("failed to schedule %s: %w", ClipLogName, err)
		}
		banners = append(banners, fmt.Sprintf("%s started. DB: %s", ClipLogName, dbPath))
	}

	return banners, nil
}
