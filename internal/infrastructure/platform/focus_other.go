//go:build !darwin && !linux

package platform

import (
	"context"

	"github.com/orris-inc/footprint/internal/domain/host"
	"github.com/orris-inc/footprint/internal/shared/logger"
)

type unsupportedFocus struct{}

// NewFocusProvider returns a provider that always reports ErrUnsupported.
func NewFocusProvider(log logger.Interface) host.FocusProvider {
	log.Warnw("focus tracking is not supported on this platform")
	return unsupportedFocus{}
}

func (unsupportedFocus) FrontmostApp(ctx context.Context) (host.App, error) {
	return host.App{}, host.ErrUnsupported
}

func (unsupportedFocus) WindowTitle(ctx context.Context, pid int) (*string, error) {
	return nil, host.ErrUnsupported
}
