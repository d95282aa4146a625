// Package pubsub publishes tracker activity to a Redis channel so other
// local tools can follow it live.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/orris-inc/footprint/internal/domain/clipboard"
	"github.com/orris-inc/footprint/internal/domain/usage"
	"github.com/orris-inc/footprint/internal/shared/config"
	"github.com/orris-inc/footprint/internal/shared/goroutine"
	"github.com/orris-inc/footprint/internal/shared/logger"
)

const publishTimeout = time.Second

// EventType represents the type of feed event.
type EventType string

const (
	EventUsageSession   EventType = "usage_session"
	EventClipboardEntry EventType = "clipboard_entry"
)

// Event is the JSON payload on the feed channel.
type Event struct {
	Type      EventType `json:"type"`
	Source    string    `json:"source"`
	Timestamp int64     `json:"timestamp"`

	AppName     *string `json:"app_name,omitempty"`
	WindowTitle *string `json:"window_title,omitempty"`
	StartTime   int64   `json:"start_time,omitempty"`
	Duration    int64   `json:"duration,omitempty"`

	Content string `json:"content,omitempty"`
}

// NewRedisClient creates and pings a client for cfg.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.GetAddr(), err)
	}
	return client, nil
}

// RedisEventFeed implements both tracker notifier interfaces. Publish
// failures are logged and otherwise ignored.
type RedisEventFeed struct {
	client     *redis.Client
	channel    string
	logger     logger.Interface
	instanceID string
}

// NewRedisEventFeed creates a feed publishing on channel.
func NewRedisEventFeed(client *redis.Client, channel string, logger logger.Interface) *RedisEventFeed {
	return &RedisEventFeed{
		client:     client,
		channel:    channel,
		logger:     logger.With("component", "pubsub.feed"),
		instanceID: uuid.NewString(),
	}
}

// InstanceID identifies this process in the Source field of its events.
func (f *RedisEventFeed) InstanceID() string {
	return f.instanceID
}

// SessionClosed publishes a usage_session event.
func (f *RedisEventFeed) SessionClosed(ctx context.Context, s *usage.Session) {
	app := s.AppName()
	f.publish(ctx, Event{
		Type:        EventUsageSession,
		Timestamp:   s.EndTime(),
		AppName:     &app,
		WindowTitle: s.WindowTitle(),
		StartTime:   s.StartTime(),
		Duration:    s.Duration(),
	})
}

// EntryRecorded publishes a clipboard_entry event.
func (f *RedisEventFeed) EntryRecorded(ctx context.Context, e *clipboard.Entry) {
	f.publish(ctx, Event{
		Type:      EventClipboardEntry,
		Timestamp: e.Timestamp(),
		AppName:   e.AppName(),
		Content:   e.Content(),
	})
}

func (f *RedisEventFeed) publish(ctx context.Context, event Event) {
	event.Source = f.instanceID

	data, err := json.Marshal(event)
	if err != nil {
		f.logger.Errorw("failed to marshal feed event", "type", event.Type, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := f.client.Publish(ctx, f.channel, data).Err(); err != nil {
		f.logger.Warnw("failed to publish feed event",
			"type", event.Type,
			"channel", f.channel,
			"error", err,
		)
		return
	}

	f.logger.Debugw("feed event published", "type", event.Type, "channel", f.channel)
}

// reconnectBackoff doubles the wait after each failed attempt up to max and
// starts over once a subscription succeeds.
type reconnectBackoff struct {
	initial time.Duration
	max     time.Duration
	current time.Duration
}

func newReconnectBackoff(initial, maxWait time.Duration) *reconnectBackoff {
	return &reconnectBackoff{initial: initial, max: maxWait, current: initial}
}

// Next returns the wait before the coming attempt.
func (b *reconnectBackoff) Next() time.Duration {
	wait := b.current
	b.current = min(b.current*2, b.max)
	return wait
}

func (b *reconnectBackoff) Reset() {
	b.current = b.initial
}

// Subscribe delivers feed events to handler until ctx is cancelled,
// reconnecting with exponential backoff when the connection drops.
func (f *RedisEventFeed) Subscribe(ctx context.Context, handler func(Event)) error {
	backoff := newReconnectBackoff(time.Second, 30*time.Second)

	for {
		err := f.subscribe(ctx, handler, backoff.Reset)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		wait := backoff.Next()
		f.logger.Warnw("feed subscription disconnected, reconnecting",
			"channel", f.channel,
			"error", err,
			"backoff", wait,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (f *RedisEventFeed) subscribe(ctx context.Context, handler func(Event), onSubscribed func()) error {
	sub := f.client.Subscribe(ctx, f.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to channel %s: %w", f.channel, err)
	}
	onSubscribed()

	f.logger.Infow("subscribed to feed channel", "channel", f.channel)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case msg, ok := <-ch:
			if !ok {
				return fmt.Errorf("channel %s closed", f.channel)
			}

			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				f.logger.Warnw("failed to unmarshal feed event", "payload", msg.Payload, "error", err)
				continue
			}

			goroutine.SafeRun(f.logger, "feed-handler", func() {
				handler(event)
			})
		}
	}
}
