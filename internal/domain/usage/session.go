// Package usage models application focus sessions: which app and window
// title held focus, from when, and for how long.
package usage

import (
	"fmt"
)

// MinSessionDuration is the shortest session, in seconds, that is worth
// storing. Anything shorter is window-switching noise.
const MinSessionDuration int64 = 2

// Session is a closed, immutable usage interval.
type Session struct {
	id          uint
	appName     string
	windowTitle *string
	startTime   int64
	duration    int64
}

// NewSession creates a closed session. windowTitle is the raw title as last
// observed and may be nil.
func NewSession(appName string, windowTitle *string, startTime, duration int64) (*Session, error) {
	if appName == "" {
		return nil, ErrEmptyAppName
	}
	if duration < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDuration, duration)
	}

	return &Session{
		appName:     appName,
		windowTitle: cloneString(windowTitle),
		startTime:   startTime,
		duration:    duration,
	}, nil
}

// ReconstructSession rebuilds a session from persistence without validation
func ReconstructSession(id uint, appName string, windowTitle *string, startTime, duration int64) *Session {
	return &Session{
		id:          id,
		appName:     appName,
		windowTitle: cloneString(windowTitle),
		startTime:   startTime,
		duration:    duration,
	}
}

func (s *Session) ID() uint {
	return s.id
}

// SetID records the identifier assigned by the store.
func (s *Session) SetID(id uint) {
	s.id = id
}

func (s *Session) AppName() string {
	return s.appName
}

// WindowTitle returns a copy of the title, nil when the window had none.
func (s *Session) WindowTitle() *string {
	return cloneString(s.windowTitle)
}

func (s *Session) StartTime() int64 {
	return s.startTime
}

func (s *Session) Duration() int64 {
	return s.duration
}

// EndTime is StartTime + Duration.
func (s *Session) EndTime() int64 {
	return s.startTime + s.duration
}

// IsWorthStoring reports whether the session meets MinSessionDuration.
func (s *Session) IsWorthStoring() bool {
	return s.duration >= MinSessionDuration
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
