// Package goroutine provides panic-safe wrappers for tick handlers and
// background goroutines.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/orris-inc/footprint/internal/shared/logger"
)

// SafeGo launches fn in a goroutine through SafeRun.
func SafeGo(log logger.Interface, name string, fn func()) {
	go SafeRun(log, name, fn)
}

// SafeRun calls fn and turns a panic into an error log with stack trace.
// It reports whether fn returned normally.
func SafeRun(log logger.Interface, name string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("goroutine panicked",
				"goroutine", name,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
			ok = false
		}
	}()
	fn()
	return true
}
