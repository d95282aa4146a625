package clipboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/footprint/internal/domain/clipboard"
	"github.com/orris-inc/footprint/internal/shared/logger"
)

func TestDeduplicator_InMemoryLayer(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRepository{}
	d := NewDeduplicator(repo, logger.NewNop())

	assert.True(t, d.ShouldRecord(ctx, "hello"))
	d.Remember("hello")
	assert.False(t, d.ShouldRecord(ctx, "hello"))
	assert.True(t, d.ShouldRecord(ctx, "world"))
}

func TestDeduplicator_PersistedLayerAfterRestart(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRepository{}
	e, err := clipboard.NewEntry("x", 1, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, e))

	cold := NewDeduplicator(repo, logger.NewNop())

	assert.False(t, cold.ShouldRecord(ctx, "x"))
	assert.True(t, cold.ShouldRecord(ctx, "y"))
}

func TestDeduplicator_EmptyStoreAccepts(t *testing.T) {
	d := NewDeduplicator(&memoryRepository{}, logger.NewNop())
	assert.True(t, d.ShouldRecord(context.Background(), "first"))
}

func TestDeduplicator_LookupFailureDoesNotBlock(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRepository{lookupErr: errors.New("no such table: clipboard")}
	d := NewDeduplicator(repo, logger.NewNop())

	assert.True(t, d.ShouldRecord(ctx, "hello"))
	d.Remember("hello")
	assert.False(t, d.ShouldRecord(ctx, "hello"))
}
