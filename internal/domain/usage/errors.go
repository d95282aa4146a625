package usage

import "errors"

var (
	// ErrEmptyAppName is returned when a session has no application name
	ErrEmptyAppName = errors.New("app name is required")

	// ErrNegativeDuration is returned when a session ends before it starts
	ErrNegativeDuration = errors.New("session duration must not be negative")
)
