package clipboard

import "context"

// Repository is the append-only store of clipboard entries.
type Repository interface {
	// Save appends e and assigns its ID.
	Save(ctx context.Context, e *Entry) error

	// LastContent returns the content of the most recently inserted entry,
	// or nil when nothing has been recorded yet.
	LastContent(ctx context.Context) (*string, error)
}
