package events

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/footprint/internal/infrastructure/pubsub"
	"github.com/orris-inc/footprint/internal/interfaces/cli/bootstrap"
)

func strPtr(s string) *string { return &s }

func TestFormatEvent(t *testing.T) {
	tests := []struct {
		name  string
		event pubsub.Event
		want  string
	}{
		{
			name: "usage session",
			event: pubsub.Event{
				Type:        pubsub.EventUsageSession,
				Timestamp:   1700000000,
				AppName:     strPtr("Safari"),
				WindowTitle: strPtr("Docs"),
				Duration:    61,
			},
			want: "[2023-11-14T22:13:20Z] Safari | Docs | 1m1s",
		},
		{
			name: "clipboard entry without app",
			event: pubsub.Event{
				Type:      pubsub.EventClipboardEntry,
				Timestamp: 1700000000,
				Content:   "a\nb",
			},
			want: "[2023-11-14T22:13:20Z] [?] a\\nb",
		},
		{
			name:  "unknown type",
			event: pubsub.Event{Type: "other", Timestamp: 1700000000},
			want:  "[2023-11-14T22:13:20Z] other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatEvent(tt.event))
		})
	}
}

func TestFollow_FeedDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logger:\n  level: error\n"), 0o600))

	var out bytes.Buffer
	err := follow(context.Background(), &bootstrap.Options{ConfigPath: path}, &out)
	assert.ErrorIs(t, err, ErrFeedDisabled)
}
