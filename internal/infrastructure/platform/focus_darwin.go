//go:build darwin

package platform

import (
	"context"
	"fmt"

	"github.com/orris-inc/footprint/internal/domain/host"
	"github.com/orris-inc/footprint/internal/shared/logger"
)

const frontmostScript = `tell application "System Events"
	set p to first application process whose frontmost is true
	return (name of p) & linefeed & (unix id of p)
end tell`

const windowTitleScript = `tell application "System Events"
	set p to first application process whose unix id is %d
	if (count of windows of p) is 0 then return ""
	return name of front window of p
end tell`

// appleScriptFocus asks System Events through osascript.
type appleScriptFocus struct {
	run    runner
	logger logger.Interface
}

// NewFocusProvider returns the macOS focus provider. Window titles need
// the Accessibility permission; without it titles come back empty.
func NewFocusProvider(log logger.Interface) host.FocusProvider {
	return &appleScriptFocus{
		run:    execRunner,
		logger: log.With("component", "host.focus"),
	}
}

func (f *appleScriptFocus) FrontmostApp(ctx context.Context) (host.App, error) {
	out, err := f.run(ctx, "osascript", "-e", frontmostScript)
	if err != nil {
		return host.App{}, err
	}
	return parseProcessLine(out)
}

func (f *appleScriptFocus) WindowTitle(ctx context.Context, pid int) (*string, error) {
	out, err := f.run(ctx, "osascript", "-e", fmt.Sprintf(windowTitleScript, pid))
	if err != nil {
		f.logger.Debugw("window title unavailable", "pid", pid, "error", err)
		return nil, err
	}
	return parseTitle(out), nil
}
