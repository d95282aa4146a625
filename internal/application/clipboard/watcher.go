// Package clipboard turns clipboard changes into filtered, deduplicated
// entries.
package clipboard

import (
	"context"
	"errors"
	"time"

	"github.com/orris-inc/footprint/internal/domain/clipboard"
	"github.com/orris-inc/footprint/internal/domain/host"
	"github.com/orris-inc/footprint/internal/shared/biztime"
	"github.com/orris-inc/footprint/internal/shared/logger"
)

// TickInterval is how often the clipboard change marker is polled.
const TickInterval = 500 * time.Millisecond

// FocusLookupTimeout bounds the frontmost-app query. It is independent of
// the tick deadline so a slow query still feeds the blocked-app check.
const FocusLookupTimeout = 2 * time.Second

// EntryNotifier is told about every entry that was stored.
type EntryNotifier interface {
	EntryRecorded(ctx context.Context, e *clipboard.Entry)
}

// Watcher polls the clipboard. Its only state between ticks is the last
// change marker and the deduplicator's last value.
type Watcher struct {
	board      host.ClipboardProvider
	focus      host.FocusProvider
	repo       clipboard.Repository
	classifier *clipboard.Classifier
	dedup      *Deduplicator
	clock      biztime.Clock
	notifiers  []EntryNotifier
	logger     logger.Interface

	lastMarker host.Marker
	hasMarker  bool
}

// NewWatcher builds a watcher and primes it with the current change marker,
// so whatever is already on the clipboard at startup is not recorded.
func NewWatcher(
	ctx context.Context,
	board host.ClipboardProvider,
	focus host.FocusProvider,
	repo clipboard.Repository,
	clock biztime.Clock,
	log logger.Interface,
	notifiers ...EntryNotifier,
) *Watcher {
	w := &Watcher{
		board:      board,
		focus:      focus,
		repo:       repo,
		classifier: clipboard.NewClassifier(),
		dedup:      NewDeduplicator(repo, log),
		clock:      clock,
		notifiers:  notifiers,
		logger:     log,
	}

	if marker, err := board.ChangeMarker(ctx); err == nil {
		w.lastMarker = marker
		w.hasMarker = true
	} else {
		log.Warnw("failed to read initial clipboard marker", "error", err)
	}

	return w
}

// OnTick runs one poll. It returns the stored entry, or nil when nothing was
// recorded. A write error drops the entry but still updates the dedup state.
func (w *Watcher) OnTick(ctx context.Context) (*clipboard.Entry, error) {
	marker, err := w.board.ChangeMarker(ctx)
	if err != nil {
		w.logger.Debugw("clipboard marker unavailable", "error", err)
		return nil, nil
	}
	if w.hasMarker && marker == w.lastMarker {
		return nil, nil
	}
	w.lastMarker = marker
	w.hasMarker = true

	text, err := w.board.Text(ctx)
	if err != nil {
		w.logger.Debugw("clipboard text unavailable", "error", err)
		return nil, nil
	}
	if text == nil || *text == "" {
		return nil, nil
	}

	appName := w.frontmostApp(ctx)

	if reason := w.classifier.Classify(*text, appName); reason != clipboard.ReasonNone {
		w.logger.Debugw("skipping clipboard content", "reason", string(reason))
		return nil, nil
	}

	if !w.dedup.ShouldRecord(ctx, *text) {
		return nil, nil
	}

	entry, err := clipboard.NewEntry(*text, biztime.Unix(w.clock), appName)
	if err != nil {
		return nil, err
	}

	saveErr := w.repo.Save(ctx, entry)
	w.dedup.Remember(*text)
	if saveErr != nil {
		return nil, saveErr
	}

	for _, n := range w.notifiers {
		n.EntryRecorded(ctx, entry)
	}
	return entry, nil
}

// frontmostApp is a best-effort lookup of the source application. A failure
// other than "nothing focused" is logged because it disables the
// blocked-app rule for this copy.
func (w *Watcher) frontmostApp(ctx context.Context) *string {
	if w.focus == nil {
		return nil
	}

	lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), FocusLookupTimeout)
	defer cancel()

	app, err := w.focus.FrontmostApp(lookupCtx)
	if err != nil {
		if !errors.Is(err, host.ErrNoSample) {
			w.logger.Warnw("frontmost app unavailable, blocked-app check skipped", "error", err)
		}
		return nil
	}
	if app.Name == "" {
		return nil
	}
	name := app.Name
	return &name
}

// Tick is the scheduler entry point.
func (w *Watcher) Tick(ctx context.Context) {
	if _, err := w.OnTick(ctx); err != nil {
		w.logger.Errorw("failed to record clipboard entry", "error", err)
	}
}
