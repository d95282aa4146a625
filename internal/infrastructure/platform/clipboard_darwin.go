//go:build darwin

package platform

import "context"

const changeCountScript = `ObjC.import('AppKit'); $.NSPasteboard.generalPasteboard.changeCount`

func newChangeCounter(run runner) changeCounter {
	return func(ctx context.Context) (int64, error) {
		out, err := run(ctx, "osascript", "-l", "JavaScript", "-e", changeCountScript)
		if err != nil {
			return 0, err
		}
		return parseChangeCount(out)
	}
}
