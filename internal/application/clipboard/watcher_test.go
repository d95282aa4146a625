package clipboard

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/footprint/internal/domain/clipboard"
	"github.com/orris-inc/footprint/internal/shared/biztime"
	"github.com/orris-inc/footprint/internal/shared/logger"
)

const t0 int64 = 1_700_000_000

type watcherFixture struct {
	board    *fakeBoard
	focus    *fakeFocus
	repo     *memoryRepository
	clock    *biztime.ManualClock
	notifier *recordingNotifier
	watcher  *Watcher
}

func newWatcherFixture(t *testing.T, repo *memoryRepository) *watcherFixture {
	t.Helper()
	if repo == nil {
		repo = &memoryRepository{}
	}
	f := &watcherFixture{
		board:    &fakeBoard{},
		focus:    &fakeFocus{app: "Notes"},
		repo:     repo,
		clock:    biztime.NewManualClock(time.Unix(t0, 0)),
		notifier: &recordingNotifier{},
	}
	f.watcher = NewWatcher(context.Background(), f.board, f.focus, f.repo, f.clock, logger.NewNop(), f.notifier)
	return f
}

func (f *watcherFixture) copyAndTick(t *testing.T, text string) *clipboard.Entry {
	t.Helper()
	f.board.Copy(text)
	f.clock.Advance(time.Second)
	e, err := f.watcher.OnTick(context.Background())
	require.NoError(t, err)
	return e
}

func TestWatcher_RecordsNewText(t *testing.T) {
	f := newWatcherFixture(t, nil)

	e := f.copyAndTick(t, "Meeting at 3pm today")

	require.NotNil(t, e)
	assert.Equal(t, "Meeting at 3pm today", e.Content())
	assert.Equal(t, t0+1, e.Timestamp())
	assert.Equal(t, "Notes", *e.AppName())
	assert.Equal(t, []string{"Meeting at 3pm today"}, f.repo.contents())
	assert.Len(t, f.notifier.recorded, 1)
}

func TestWatcher_UnchangedMarkerDoesNothing(t *testing.T) {
	f := newWatcherFixture(t, nil)
	f.copyAndTick(t, "hello")

	e, err := f.watcher.OnTick(context.Background())
	require.NoError(t, err)
	assert.Nil(t, e)
	assert.Len(t, f.repo.entries, 1)
}

func TestWatcher_IgnoresContentPresentAtStartup(t *testing.T) {
	board := &fakeBoard{}
	board.Copy("already there")
	repo := &memoryRepository{}
	w := NewWatcher(context.Background(), board, nil, repo, biztime.NewManualClock(time.Unix(t0, 0)), logger.NewNop())

	e, err := w.OnTick(context.Background())
	require.NoError(t, err)
	assert.Nil(t, e)
	assert.Empty(t, repo.entries)
}

func TestWatcher_DuplicateSuppression(t *testing.T) {
	t.Run("same text twice is recorded once", func(t *testing.T) {
		f := newWatcherFixture(t, nil)
		f.copyAndTick(t, "hello")
		assert.Nil(t, f.copyAndTick(t, "hello"))
		assert.Equal(t, []string{"hello"}, f.repo.contents())
	})

	t.Run("A B A is recorded three times", func(t *testing.T) {
		f := newWatcherFixture(t, nil)
		f.copyAndTick(t, "hello")
		f.copyAndTick(t, "world")
		f.copyAndTick(t, "hello")
		assert.Equal(t, []string{"hello", "world", "hello"}, f.repo.contents())
	})

	t.Run("fresh process rejects the stored last value", func(t *testing.T) {
		repo := &memoryRepository{}
		first := newWatcherFixture(t, repo)
		first.copyAndTick(t, "x")

		restarted := newWatcherFixture(t, repo)
		assert.Nil(t, restarted.copyAndTick(t, "x"))
		assert.Equal(t, []string{"x"}, repo.contents())
	})
}

func TestWatcher_Filtering(t *testing.T) {
	tests := []struct {
		name string
		app  string
		text string
	}{
		{name: "api key prefix", app: "Terminal", text: "sk-ant-abc123def456"},
		{name: "keyword", app: "Terminal", text: "API_KEY=abc"},
		{name: "high entropy", app: "Terminal", text: strings.Repeat("Ab9_", 10)},
		{name: "blocked app", app: "1Password", text: "correct horse battery"},
		{name: "too long", app: "Terminal", text: strings.Repeat("a b ", 251)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWatcherFixture(t, nil)
			f.focus.app = tt.app

			assert.Nil(t, f.copyAndTick(t, tt.text))
			assert.Empty(t, f.repo.entries)

			// the marker was consumed: the same content is not re-examined
			e, err := f.watcher.OnTick(context.Background())
			require.NoError(t, err)
			assert.Nil(t, e)
		})
	}
}

func TestWatcher_EmptyOrMissingText(t *testing.T) {
	f := newWatcherFixture(t, nil)

	f.board.Clear()
	e, err := f.watcher.OnTick(context.Background())
	require.NoError(t, err)
	assert.Nil(t, e)

	assert.Nil(t, f.copyAndTick(t, ""))
	assert.Empty(t, f.repo.entries)
}

func TestWatcher_NoForegroundApp(t *testing.T) {
	f := newWatcherFixture(t, nil)
	f.focus.app = ""

	e := f.copyAndTick(t, "copied from nowhere")

	require.NotNil(t, e)
	assert.Nil(t, e.AppName())
}

func TestWatcher_WriteFailureStillUpdatesDedup(t *testing.T) {
	f := newWatcherFixture(t, nil)
	f.repo.saveErr = errors.New("disk full")

	f.board.Copy("hello")
	e, err := f.watcher.OnTick(context.Background())
	assert.Error(t, err)
	assert.Nil(t, e)
	assert.Empty(t, f.notifier.recorded)

	f.repo.saveErr = nil
	assert.Nil(t, f.copyAndTick(t, "hello"))
	assert.NotNil(t, f.copyAndTick(t, "world"))
	assert.Equal(t, []string{"world"}, f.repo.contents())
}

func TestWatcher_MarkerErrorSkipsTick(t *testing.T) {
	f := newWatcherFixture(t, nil)
	f.board.markerErr = errors.New("pasteboard busy")
	f.board.Copy("hello")

	e, err := f.watcher.OnTick(context.Background())
	require.NoError(t, err)
	assert.Nil(t, e)

	f.board.markerErr = nil
	e, err = f.watcher.OnTick(context.Background())
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "hello", e.Content())
}

func TestWatcher_RecopyFromUnblockedAppAfterBlocked(t *testing.T) {
	f := newWatcherFixture(t, nil)

	f.focus.app = "1Password"
	assert.Nil(t, f.copyAndTick(t, "correct horse battery"))

	f.focus.app = "Notes"
	e := f.copyAndTick(t, "correct horse battery")

	require.NotNil(t, e)
	require.NotNil(t, e.AppName())
	assert.Equal(t, "Notes", *e.AppName())
	assert.Equal(t, []string{"correct horse battery"}, f.repo.contents())
}

func TestWatcher_FocusLookupOutlivesTickDeadline(t *testing.T) {
	f := newWatcherFixture(t, nil)
	expired, cancel := context.WithCancel(context.Background())
	cancel()

	f.focus.app = "1Password"
	f.board.Copy("correct horse battery")
	e, err := f.watcher.OnTick(expired)
	require.NoError(t, err)
	assert.Nil(t, e)

	f.focus.app = "Notes"
	f.board.Copy("lunch at noon")
	e, err = f.watcher.OnTick(expired)
	require.NoError(t, err)
	require.NotNil(t, e)
	require.NotNil(t, e.AppName())
	assert.Equal(t, "Notes", *e.AppName())
}

func TestWatcher_FocusFailureIsLogged(t *testing.T) {
	board := &fakeBoard{}
	focus := &fakeFocus{err: errors.New("osascript: signal: killed")}
	repo := &memoryRepository{}
	var logs bytes.Buffer
	log := logger.NewWithHandler(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))
	w := NewWatcher(context.Background(), board, focus, repo, biztime.NewManualClock(time.Unix(t0, 0)), log)

	board.Copy("hello")
	e, err := w.OnTick(context.Background())
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Nil(t, e.AppName())
	assert.Contains(t, logs.String(), "blocked-app check skipped")

	logs.Reset()
	focus.err = nil
	focus.app = ""
	board.Copy("world")
	_, err = w.OnTick(context.Background())
	require.NoError(t, err)
	assert.Empty(t, logs.String(), "nothing focused is not worth a warning")
}
