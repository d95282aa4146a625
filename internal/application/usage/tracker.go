// Package usage turns focus samples into usage sessions.
package usage

import (
	"context"
	"errors"
	"time"

	"github.com/orris-inc/footprint/internal/domain/host"
	"github.com/orris-inc/footprint/internal/domain/usage"
	"github.com/orris-inc/footprint/internal/shared/biztime"
	"github.com/orris-inc/footprint/internal/shared/logger"
)

// TickInterval is how often the focused application is sampled.
const TickInterval = 3 * time.Second

// UnknownAppName stands in for an application that reports no name.
const UnknownAppName = "Unknown"

// Sample is one observation of the focused application.
type Sample struct {
	AppName string
	Title   *string
}

// OpenSession is the session currently holding focus.
type OpenSession struct {
	AppName         string
	Title           *string
	NormalizedTitle *string
	StartTime       int64
}

// SessionNotifier is told about every session that was stored.
type SessionNotifier interface {
	SessionClosed(ctx context.Context, s *usage.Session)
}

// SessionTracker is a two-state machine: idle, or one open session. A
// session closes the moment the focused app or its normalized title
// changes. A session still open when the process exits is not stored.
type SessionTracker struct {
	repo      usage.Repository
	focus     host.FocusProvider
	clock     biztime.Clock
	notifiers []SessionNotifier
	logger    logger.Interface

	current *OpenSession
}

func NewSessionTracker(
	repo usage.Repository,
	focus host.FocusProvider,
	clock biztime.Clock,
	log logger.Interface,
	notifiers ...SessionNotifier,
) *SessionTracker {
	return &SessionTracker{
		repo:      repo,
		focus:     focus,
		clock:     clock,
		notifiers: notifiers,
		logger:    log,
	}
}

// Tick samples the host and feeds the result to OnTick. A tick without a
// frontmost application is skipped.
func (t *SessionTracker) Tick(ctx context.Context) {
	app, err := t.focus.FrontmostApp(ctx)
	if err != nil {
		if !errors.Is(err, host.ErrNoSample) {
			t.logger.Debugw("frontmost app unavailable", "error", err)
		}
		return
	}

	name := app.Name
	if name == "" {
		name = UnknownAppName
	}

	title, err := t.focus.WindowTitle(ctx, app.PID)
	if err != nil {
		t.logger.Debugw("window title unavailable", "app", name, "pid", app.PID, "error", err)
		title = nil
	}

	if _, err := t.OnTick(ctx, Sample{AppName: name, Title: title}, biztime.Unix(t.clock)); err != nil {
		t.logger.Errorw("failed to record usage session", "error", err)
	}
}

// OnTick advances the state machine with a sample taken at now (epoch
// seconds). It returns the session that was closed and stored, if any.
// On a write error the state still advances and the session is lost.
func (t *SessionTracker) OnTick(ctx context.Context, sample Sample, now int64) (*usage.Session, error) {
	norm := usage.NormalizeTitle(sample.Title)

	if t.current != nil &&
		t.current.AppName == sample.AppName &&
		usage.SameTitle(t.current.NormalizedTitle, norm) {
		return nil, nil
	}

	prev := t.current
	t.current = &OpenSession{
		AppName:         sample.AppName,
		Title:           sample.Title,
		NormalizedTitle: norm,
		StartTime:       now,
	}

	if prev == nil {
		return nil, nil
	}
	return t.close(ctx, prev, now)
}

func (t *SessionTracker) close(ctx context.Context, open *OpenSession, now int64) (*usage.Session, error) {
	session, err := usage.NewSession(open.AppName, open.Title, open.StartTime, now-open.StartTime)
	if err != nil {
		return nil, err
	}

	if !session.IsWorthStoring() {
		t.logger.Debugw("dropping short session",
			"app", session.AppName(),
			"duration", session.Duration(),
		)
		return nil, nil
	}

	if err := t.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	for _, n := range t.notifiers {
		n.SessionClosed(ctx, session)
	}
	return session, nil
}

// Current returns a copy of the open session, nil while idle.
func (t *SessionTracker) Current() *OpenSession {
	if t.current == nil {
		return nil
	}
	c := *t.current
	return &c
}
