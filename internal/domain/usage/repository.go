package usage

import "context"

// Repository is the append-only store of closed sessions.
type Repository interface {
	// Save appends s and assigns its ID.
	Save(ctx context.Context, s *Session) error
}
