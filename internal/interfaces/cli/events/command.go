// Package events follows the live event feed published by the trackers.
package events

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/orris-inc/footprint/internal/infrastructure/pubsub"
	"github.com/orris-inc/footprint/internal/interfaces/cli/bootstrap"
	"github.com/orris-inc/footprint/internal/interfaces/console"
	"github.com/orris-inc/footprint/internal/shared/biztime"
)

// ErrFeedDisabled is returned when redis.enabled is false.
var ErrFeedDisabled = errors.New("event feed is disabled: set redis.enabled")

func NewCommand(opts *bootstrap.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "Follow the live event feed",
		Long:  `Subscribe to the Redis channel the trackers publish to and print one line per usage session or clipboard entry.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return follow(ctx, opts, cmd.OutOrStdout())
		},
	}
}

func follow(ctx context.Context, opts *bootstrap.Options, out io.Writer) error {
	cfg, log, err := bootstrap.LoadConfig(opts)
	if err != nil {
		return err
	}
	if !cfg.Redis.Enabled {
		return ErrFeedDisabled
	}

	client, err := pubsub.NewRedisClient(ctx, &cfg.Redis)
	if err != nil {
		return err
	}
	defer client.Close()

	feed := pubsub.NewRedisEventFeed(client, cfg.Redis.Channel, log)
	fmt.Fprintf(out, "following %s on %s\n", cfg.Redis.Channel, cfg.Redis.GetAddr())

	err = feed.Subscribe(ctx, func(e pubsub.Event) {
		fmt.Fprintln(out, FormatEvent(e))
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// FormatEvent renders an event the way the trackers print their own lines.
func FormatEvent(e pubsub.Event) string {
	ts := biztime.FormatISO8601(biztime.FromUnix(e.Timestamp))

	switch e.Type {
	case pubsub.EventUsageSession:
		title := ""
		if e.WindowTitle != nil {
			title = *e.WindowTitle
		}
		return fmt.Sprintf("[%s] %s | %s | %s", ts, deref(e.AppName, ""), title, console.FormatDuration(e.Duration))
	case pubsub.EventClipboardEntry:
		return fmt.Sprintf("[%s] [%s] %s", ts, deref(e.AppName, "?"), console.Preview(e.Content))
	default:
		return fmt.Sprintf("[%s] %s", ts, e.Type)
	}
}

func deref(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
