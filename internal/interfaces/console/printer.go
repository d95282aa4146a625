// Package console prints one human-readable line per recorded event.
package console

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/orris-inc/footprint/internal/domain/clipboard"
	"github.com/orris-inc/footprint/internal/domain/usage"
	"github.com/orris-inc/footprint/internal/shared/biztime"
)

// PreviewLength is the number of runes of clipboard content shown.
const PreviewLength = 60

// Printer implements both tracker notifier interfaces.
type Printer struct {
	mu  sync.Mutex
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// SessionClosed prints "[time] app | title | duration".
func (p *Printer) SessionClosed(ctx context.Context, s *usage.Session) {
	title := ""
	if t := s.WindowTitle(); t != nil {
		title = *t
	}
	p.println(fmt.Sprintf("[%s] %s | %s | %s",
		biztime.FormatISO8601(biztime.FromUnix(s.EndTime())),
		s.AppName(),
		title,
		FormatDuration(s.Duration()),
	))
}

// EntryRecorded prints "[time] [app] preview".
func (p *Printer) EntryRecorded(ctx context.Context, e *clipboard.Entry) {
	app := "?"
	if a := e.AppName(); a != nil {
		app = *a
	}
	p.println(fmt.Sprintf("[%s] [%s] %s",
		biztime.FormatISO8601(biztime.FromUnix(e.Timestamp())),
		app,
		Preview(e.Content()),
	))
}

func (p *Printer) println(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, line)
}

// FormatDuration renders seconds as "45s" below a minute, else "2m5s".
func FormatDuration(seconds int64) string {
	if seconds >= 60 {
		return fmt.Sprintf("%dm%ds", seconds/60, seconds%60)
	}
	return fmt.Sprintf("%ds", seconds)
}

// Preview returns the first PreviewLength runes with newlines escaped.
func Preview(content string) string {
	runes := []rune(content)
	if len(runes) > PreviewLength {
		runes = runes[:PreviewLength]
	}
	return strings.ReplaceAll(string(runes), "\n", `\n`)
}
