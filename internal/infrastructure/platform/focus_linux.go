//go:build linux

package platform

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/orris-inc/footprint/internal/domain/host"
	"github.com/orris-inc/footprint/internal/shared/logger"
)

// xdotoolFocus reads the active X11 window through xdotool and resolves
// the process name from procfs.
type xdotoolFocus struct {
	run      runner
	readFile func(string) ([]byte, error)
	logger   logger.Interface
}

// NewFocusProvider returns the Linux focus provider. It needs xdotool and
// an X11 (or XWayland) session.
func NewFocusProvider(log logger.Interface) host.FocusProvider {
	return &xdotoolFocus{
		run:      execRunner,
		readFile: os.ReadFile,
		logger:   log.With("component", "host.focus"),
	}
}

func (f *xdotoolFocus) FrontmostApp(ctx context.Context) (host.App, error) {
	out, err := f.run(ctx, "xdotool", "getactivewindow", "getwindowpid")
	if err != nil {
		return host.App{}, err
	}

	pid, err := parsePID(out)
	if err != nil {
		return host.App{}, err
	}

	comm, err := f.readFile(fmt.Sprintf("/proc/%d/comm", pid))
	if err != nil {
		return host.App{}, fmt.Errorf("%w: process %d vanished: %v", host.ErrNoSample, pid, err)
	}

	return host.App{Name: strings.TrimSpace(string(comm)), PID: pid}, nil
}

// WindowTitle reads the active window's name; pid is the process reported
// by the preceding FrontmostApp call.
func (f *xdotoolFocus) WindowTitle(ctx context.Context, pid int) (*string, error) {
	out, err := f.run(ctx, "xdotool", "getactivewindow", "getwindowname")
	if err != nil {
		f.logger.Debugw("window title unavailable", "pid", pid, "error", err)
		return nil, err
	}
	return parseTitle(out), nil
}
