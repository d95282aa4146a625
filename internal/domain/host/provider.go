// Package host declares what the trackers need from the operating system.
// Implementations live in internal/infrastructure/platform; tests use fakes.
package host

import (
	"context"
	"errors"
)

var (
	// ErrNoSample means the platform had nothing to report this tick,
	// e.g. no application currently holds focus.
	ErrNoSample = errors.New("no sample available")

	// ErrUnsupported is returned on platforms without an implementation.
	ErrUnsupported = errors.New("not supported on this platform")
)

// App identifies the foreground application.
type App struct {
	Name string
	PID  int
}

// FocusProvider reports the frontmost application and its window title.
type FocusProvider interface {
	// FrontmostApp returns ErrNoSample when nothing has focus.
	FrontmostApp(ctx context.Context) (App, error)

	// WindowTitle returns the title of pid's frontmost on-screen window,
	// nil when it has none.
	WindowTitle(ctx context.Context, pid int) (*string, error)
}

// Marker is an opaque clipboard change token. Equal markers mean the
// clipboard has not changed.
type Marker uint64

// ClipboardProvider exposes the system clipboard.
type ClipboardProvider interface {
	ChangeMarker(ctx context.Context) (Marker, error)

	// Text returns the current string contents, nil when the clipboard
	// holds no text.
	Text(ctx context.Context) (*string, error)
}
