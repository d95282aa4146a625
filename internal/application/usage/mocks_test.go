package usage

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/orris-inc/footprint/internal/domain/host"
	"github.com/orris-inc/footprint/internal/domain/usage"
)

type memoryRepository struct {
	sessions []*usage.Session
	err      error
}

func (r *memoryRepository) Save(ctx context.Context, s *usage.Session) error {
	if r.err != nil {
		return r.err
	}
	s.SetID(uint(len(r.sessions) + 1))
	r.sessions = append(r.sessions, s)
	return nil
}

type mockFocusProvider struct {
	mock.Mock
}

func (m *mockFocusProvider) FrontmostApp(ctx context.Context) (host.App, error) {
	args := m.Called(ctx)
	return args.Get(0).(host.App), args.Error(1)
}

func (m *mockFocusProvider) WindowTitle(ctx context.Context, pid int) (*string, error) {
	args := m.Called(ctx, pid)
	title, _ := args.Get(0).(*string)
	return title, args.Error(1)
}

type recordingNotifier struct {
	closed []*usage.Session
}

func (n *recordingNotifier) SessionClosed(ctx context.Context, s *usage.Session) {
	n.closed = append(n.closed, s)
}

func strPtr(s string) *string {
	return &s
}
