package clipboard

import "errors"

var (
	// ErrEmptyContent is returned when an entry has no text
	ErrEmptyContent = errors.New("clipboard content is required")
)
