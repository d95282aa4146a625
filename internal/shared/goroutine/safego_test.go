package goroutine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orris-inc/footprint/internal/shared/logger"
)

func TestSafeRun(t *testing.T) {
	log := logger.NewNop()

	assert.True(t, SafeRun(log, "ok", func() {}))
	assert.False(t, SafeRun(log, "boom", func() { panic("boom") }))
}

func TestSafeGo_RecoversPanic(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)

	SafeGo(logger.NewNop(), "boom", func() {
		defer wg.Done()
		panic("boom")
	})

	wg.Wait()
}
