package platform

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/cespare/xxhash/v2"

	"github.com/orris-inc/footprint/internal/domain/host"
	apperrors "github.com/orris-inc/footprint/internal/shared/errors"
	"github.com/orris-inc/footprint/internal/shared/logger"
)

// changeCounter returns the pasteboard's own change count.
type changeCounter func(ctx context.Context) (int64, error)

// SystemClipboard reads the system clipboard. Where the platform keeps a
// change count (macOS) the marker is that count, so copying the same text
// again is still a change. Elsewhere the marker is the xxhash of the current
// text and identical contents give identical markers.
type SystemClipboard struct {
	readAll     func() (string, error)
	changeCount changeCounter
	unsupported bool
	logger      logger.Interface
}

// NewSystemClipboard returns a clipboard provider backed by the platform
// pasteboard (pbpaste, xclip/xsel/wl-paste, or the Windows API).
func NewSystemClipboard(log logger.Interface) *SystemClipboard {
	return &SystemClipboard{
		readAll:     clipboard.ReadAll,
		changeCount: newChangeCounter(execRunner),
		unsupported: clipboard.Unsupported,
		logger:      log.With("component", "host.clipboard"),
	}
}

func (c *SystemClipboard) read() (string, error) {
	if c.unsupported {
		return "", fmt.Errorf("%w: no clipboard utility found", host.ErrUnsupported)
	}
	text, err := c.readAll()
	if err != nil {
		return "", apperrors.NewHostUnavailableError("clipboard read failed", err)
	}
	return text, nil
}

func (c *SystemClipboard) ChangeMarker(ctx context.Context) (host.Marker, error) {
	if c.changeCount != nil {
		count, err := c.changeCount(ctx)
		if err != nil {
			return 0, err
		}
		return host.Marker(count), nil
	}

	text, err := c.read()
	if err != nil {
		return 0, err
	}
	return host.Marker(xxhash.Sum64String(text)), nil
}

func (c *SystemClipboard) Text(ctx context.Context) (*string, error) {
	text, err := c.read()
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	return &text, nil
}
