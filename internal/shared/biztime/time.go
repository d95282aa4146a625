// Package biztime provides the clock used by the trackers.
// All stored timestamps are epoch seconds (UTC); console output uses
// ISO-8601 in UTC.
package biztime

import (
	"sync"
	"time"
)

// Clock is the source of "now" for tick handlers. Tests inject a ManualClock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// System returns the wall clock in UTC.
func System() Clock {
	return systemClock{}
}

// Unix returns the epoch second of c's current time.
func Unix(c Clock) int64 {
	return c.Now().Unix()
}

// FormatISO8601 formats t as an ISO-8601 UTC timestamp, e.g.
// 2024-03-01T08:15:00Z.
func FormatISO8601(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// FromUnix converts stored epoch seconds back to a UTC time.
func FromUnix(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

// ManualClock is a Clock whose time only moves when told to.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start.UTC()}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d and returns the new time.
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t.UTC()
}
