package clipboard

import (
	"context"

	"github.com/orris-inc/footprint/internal/domain/clipboard"
	"github.com/orris-inc/footprint/internal/shared/logger"
)

// Deduplicator suppresses a copy that repeats the previous record. It checks
// the value recorded by this process first, then the newest stored entry so
// the check survives restarts. Only the last value is compared: A, B, A
// records three entries.
type Deduplicator struct {
	repo   clipboard.Repository
	logger logger.Interface

	last    string
	hasLast bool
}

func NewDeduplicator(repo clipboard.Repository, log logger.Interface) *Deduplicator {
	return &Deduplicator{
		repo:   repo,
		logger: log,
	}
}

// ShouldRecord reports whether text differs from the last recorded value.
// A failed store lookup is logged and does not block recording.
func (d *Deduplicator) ShouldRecord(ctx context.Context, text string) bool {
	if d.hasLast && text == d.last {
		return false
	}

	last, err := d.repo.LastContent(ctx)
	if err != nil {
		d.logger.Warnw("failed to read last clipboard entry", "error", err)
		return true
	}
	return last == nil || *last != text
}

// Remember makes text the in-memory last value.
func (d *Deduplicator) Remember(text string) {
	d.last = text
	d.hasLast = true
}
