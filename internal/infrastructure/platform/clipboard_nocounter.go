//go:build !darwin

package platform

// newChangeCounter returns nil: X11, Wayland and Windows clipboards expose
// no change count to command-line helpers, so the content hash is used.
func newChangeCounter(run runner) changeCounter {
	return nil
}
