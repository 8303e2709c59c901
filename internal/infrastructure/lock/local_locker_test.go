package lock_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/khohang-api/internal/domain"
	"github.com/jhoicas/khohang-api/internal/infrastructure/lock"
)

func TestLocalLocker_ClaveTomada(t *testing.T) {
	ctx := context.Background()
	l := lock.NewLocalLocker()

	first, err := l.Acquire(ctx, "document:1")
	require.NoError(t, err)

	_, err = l.Acquire(ctx, "document:1")
	assert.ErrorIs(t, err, domain.ErrLocked)

	other, err := l.Acquire(ctx, "document:2")
	require.NoError(t, err, "otra clave no se bloquea")
	require.NoError(t, other.Release(ctx))

	require.NoError(t, first.Release(ctx))
	require.NoError(t, first.Release(ctx), "liberar dos veces no falla")

	again, err := l.Acquire(ctx, "document:1")
	require.NoError(t, err)
	require.NoError(t, again.Release(ctx))
}

func TestLocalLocker_UnSoloGanadorConcurrente(t *testing.T) {
	ctx := context.Background()
	l := lock.NewLocalLocker()

	var wins int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, err := l.Acquire(ctx, "document:9"); err == nil {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	close(start)
	wg.Wait()
	assert.Equal(t, int32(1), wins)
}
