package platform

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/footprint/internal/domain/host"
	apperrors "github.com/orris-inc/footprint/internal/shared/errors"
	"github.com/orris-inc/footprint/internal/shared/logger"
)

func newTestClipboard(content *string, readErr *error) *SystemClipboard {
	c := NewSystemClipboard(logger.NewNop())
	c.unsupported = false
	c.changeCount = nil
	c.readAll = func() (string, error) {
		return *content, *readErr
	}
	return c
}

func TestSystemClipboard_MarkerFollowsContent(t *testing.T) {
	content := "hello"
	var readErr error
	c := newTestClipboard(&content, &readErr)
	ctx := context.Background()

	m1, err := c.ChangeMarker(ctx)
	require.NoError(t, err)
	m2, err := c.ChangeMarker(ctx)
	require.NoError(t, err)
	assert.Equal(t, m1, m2)

	content = "world"
	m3, err := c.ChangeMarker(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, m1, m3)

	text, err := c.Text(ctx)
	require.NoError(t, err)
	require.NotNil(t, text)
	assert.Equal(t, "world", *text)
}

func TestSystemClipboard_EmptyIsNoText(t *testing.T) {
	content := ""
	var readErr error
	c := newTestClipboard(&content, &readErr)

	text, err := c.Text(context.Background())
	require.NoError(t, err)
	assert.Nil(t, text)
}

func TestSystemClipboard_Errors(t *testing.T) {
	content := ""
	readErr := errors.New("xclip: no selection")
	c := newTestClipboard(&content, &readErr)

	_, err := c.ChangeMarker(context.Background())
	assert.True(t, apperrors.IsHostUnavailable(err))

	c.unsupported = true
	_, err = c.Text(context.Background())
	assert.ErrorIs(t, err, host.ErrUnsupported)
}

func TestSystemClipboard_CounterMarker(t *testing.T) {
	content := "correct horse battery"
	var readErr error
	c := newTestClipboard(&content, &readErr)

	count := int64(41)
	var countErr error
	c.changeCount = func(ctx context.Context) (int64, error) {
		return count, countErr
	}
	ctx := context.Background()

	m1, err := c.ChangeMarker(ctx)
	require.NoError(t, err)

	// same text copied again from another app
	count++
	m2, err := c.ChangeMarker(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, m1, m2)
	assert.Equal(t, host.Marker(42), m2)

	countErr = apperrors.NewHostUnavailableError("osascript failed", errors.New("exit status 1"))
	_, err = c.ChangeMarker(ctx)
	assert.True(t, apperrors.IsHostUnavailable(err))
}
