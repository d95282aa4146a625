package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceHandler(t *testing.T) {
	tests := []struct {
		name       string
		minLevel   slog.Level
		logLevel   slog.Level
		wantSource bool
	}{
		{name: "info below warn threshold", minLevel: slog.LevelWarn, logLevel: slog.LevelInfo, wantSource: false},
		{name: "warn at threshold", minLevel: slog.LevelWarn, logLevel: slog.LevelWarn, wantSource: true},
		{name: "error above threshold", minLevel: slog.LevelWarn, logLevel: slog.LevelError, wantSource: true},
		{name: "debug threshold covers info", minLevel: slog.LevelDebug, logLevel: slog.LevelInfo, wantSource: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			log := slog.New(NewSourceHandler(base, tt.minLevel))

			log.Log(context.Background(), tt.logLevel, "tick")

			assert.Equal(t, tt.wantSource, bytes.Contains(buf.Bytes(), []byte("source=")), buf.String())
		})
	}
}

func TestSourceHandler_KeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	log := slog.New(NewSourceHandler(base, slog.LevelError)).With("tracker", "apps").WithGroup("sample")

	log.Info("observed", "app", "Terminal")

	out := buf.String()
	assert.Contains(t, out, "tracker=apps")
	assert.Contains(t, out, "sample.app=Terminal")
	assert.NotContains(t, out, "source=")
}

func TestSourceHandler_Enabled(t *testing.T) {
	base := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo})
	h := NewSourceHandler(base, slog.LevelWarn)

	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
