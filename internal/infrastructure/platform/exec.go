// Package platform implements the domain host providers on top of the
// operating system: the system clipboard and the focused window.
package platform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/orris-inc/footprint/internal/domain/host"
	apperrors "github.com/orris-inc/footprint/internal/shared/errors"
)

// runner executes a helper program and returns its stdout.
type runner func(ctx context.Context, name string, args ...string) (string, error)

func execRunner(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %s not installed", host.ErrUnsupported, name)
		}
		return "", apperrors.NewHostUnavailableError(name+" failed", err, strings.TrimSpace(stderr.String()))
	}
	return string(out), nil
}

// parsePID reads a process id printed on its own line.
func parsePID(out string) (int, error) {
	pid, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil || pid <= 0 {
		return 0, fmt.Errorf("%w: unexpected pid output %q", host.ErrNoSample, out)
	}
	return pid, nil
}

// parseTitle maps helper output to a title; blank output means no window.
func parseTitle(out string) *string {
	title := strings.TrimRight(out, "\r\n")
	if strings.TrimSpace(title) == "" {
		return nil
	}
	return &title
}

// parseProcessLine splits "name\npid" as printed by the focus scripts.
func parseProcessLine(out string) (host.App, error) {
	lines := strings.Split(strings.TrimRight(out, "\r\n"), "\n")
	if len(lines) != 2 {
		return host.App{}, fmt.Errorf("%w: unexpected output %q", host.ErrNoSample, out)
	}

	name := strings.TrimSpace(lines[0])
	pid, err := parsePID(lines[1])
	if err != nil {
		return host.App{}, err
	}
	return host.App{Name: name, PID: pid}, nil
}

// parseChangeCount reads the pasteboard change count printed by osascript.
func parseChangeCount(out string) (int64, error) {
	count, err := strconv.ParseInt(strings.TrimSpace(out), 10, 64)
	if err != nil {
		return 0, apperrors.NewHostUnavailableError("unexpected change count output", err, out)
	}
	return count, nil
}
