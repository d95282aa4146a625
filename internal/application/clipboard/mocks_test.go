package clipboard

import (
	"context"
	"errors"

	"github.com/orris-inc/footprint/internal/domain/clipboard"
	"github.com/orris-inc/footprint/internal/domain/host"
)

type memoryRepository struct {
	entries   []*clipboard.Entry
	saveErr   error
	lookupErr error
}

func (r *memoryRepository) Save(ctx context.Context, e *clipboard.Entry) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	e.SetID(uint(len(r.entries) + 1))
	r.entries = append(r.entries, e)
	return nil
}

func (r *memoryRepository) LastContent(ctx context.Context) (*string, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	if len(r.entries) == 0 {
		return nil, nil
	}
	c := r.entries[len(r.entries)-1].Content()
	return &c, nil
}

func (r *memoryRepository) contents() []string {
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Content())
	}
	return out
}

// fakeBoard bumps its marker on every Copy, like a pasteboard change count.
type fakeBoard struct {
	marker    host.Marker
	text      *string
	markerErr error
}

func (b *fakeBoard) Copy(text string) {
	b.marker++
	b.text = &text
}

func (b *fakeBoard) Clear() {
	b.marker++
	b.text = nil
}

func (b *fakeBoard) ChangeMarker(ctx context.Context) (host.Marker, error) {
	return b.marker, b.markerErr
}

func (b *fakeBoard) Text(ctx context.Context) (*string, error) {
	return b.text, nil
}

// fakeFocus honours cancellation like a helper process would.
type fakeFocus struct {
	app string
	err error
}

func (f *fakeFocus) FrontmostApp(ctx context.Context) (host.App, error) {
	if err := ctx.Err(); err != nil {
		return host.App{}, err
	}
	if f.err != nil {
		return host.App{}, f.err
	}
	if f.app == "" {
		return host.App{}, host.ErrNoSample
	}
	return host.App{Name: f.app, PID: 1}, nil
}

func (f *fakeFocus) WindowTitle(ctx context.Context, pid int) (*string, error) {
	return nil, errors.New("not used")
}

type recordingNotifier struct {
	recorded []*clipboard.Entry
}

func (n *recordingNotifier) EntryRecorded(ctx context.Context, e *clipboard.Entry) {
	n.recorded = append(n.recorded, e)
}
