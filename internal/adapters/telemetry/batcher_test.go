package telemetry_test

import (
	"slices"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/gantrybuild/gantry/internal/adapters/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchProcessor_FlushOnSize(t *testing.T) {
	var collected []byte
	var mu sync.Mutex

	// Large time limit so only the size limit can trigger the flush.
	bp := telemetry.NewBatchProcessor(5, time.Hour, func(data []byte) {
		mu.Lock()
		defer mu.Unlock()
		collected = append(collected, data...)
	})
	defer func() { _ = bp.Close() }()

	_, err := bp.Write([]byte("123"))
	require.NoError(t, err)

	mu.Lock()
	assert.Empty(t, collected)
	mu.Unlock()

	// Crossing the limit flushes synchronously within Write.
	_, err = bp.Write([]byte("456"))
	require.NoError(t, err)

	mu.Lock()
	assert.Equal(t, "123456", string(collected))
	mu.Unlock()
}

func TestBatchProcessor_FlushOnTime(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		flushed := make(chan []byte, 1)
		start := time.Now()

		bp := telemetry.NewBatchProcessor(100, 50*time.Millisecond, func(data []byte) {
			flushed <- slices.Clone(data)
		})
		defer func() { _ = bp.Close() }()

		_, err := bp.Write([]byte("test"))
		require.NoError(t, err)

		data := <-flushed
		assert.Equal(t, "test", string(data))
		assert.Equal(t, 50*time.Millisecond, time.Since(start))
	})
}

func TestBatchProcessor_ManualFlush(t *testing.T) {
	var collected []byte
	var mu sync.Mutex

	bp := telemetry.NewBatchProcessor(100, time.Hour, func(data []byte) {
		mu.Lock()
		defer mu.Unlock()
		collected = append(collected, data...)
	})
	defer func() { _ = bp.Close() }()

	_, err := bp.Write([]byte("hello"))
	require.NoError(t, err)

	mu.Lock()
	assert.Empty(t, collected)
	mu.Unlock()

	bp.Flush()

	mu.Lock()
	assert.Equal(t, "hello", string(collected))
	mu.Unlock()
}

func TestBatchProcessor_CloseFlushes(t *testing.T) {
	var collected []byte
	var mu sync.Mutex

	bp := telemetry.NewBatchProcessor(100, time.Hour, func(data []byte) {
		mu.Lock()
		defer mu.Unlock()
		collected = append(collected, data...)
	})

	_, err := bp.Write([]byte("pending"))
	require.NoError(t, err)

	require.NoError(t, bp.Close())

	mu.Lock()
	assert.Equal(t, "pending", string(collected))
	mu.Unlock()

	// Closing twice is fine, writing afterwards is not.
	require.NoError(t, bp.Close())
	_, err = bp.Write([]byte("late"))
	assert.Error(t, err)
}

func TestBatchProcessor_ConcurrentWrites(t *testing.T) {
	var collected []byte
	var mu sync.Mutex

	// Small limits so both size and time flushes fire during the run.
	bp := telemetry.NewBatchProcessor(20, 10*time.Millisecond, func(data []byte) {
		mu.Lock()
		defer mu.Unlock()
		collected = append(collected, data...)
	})

	var wg sync.WaitGroup
	workers := 10
	iterations := 100

	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for j := range iterations {
				_, _ = bp.Write([]byte("a"))
				if j%10 == 0 {
					bp.Flush()
				}
			}
		}()
	}

	wg.Wait()
	require.NoError(t, bp.Close())

	mu.Lock()
	assert.Len(t, collected, workers*iterations)
	mu.Unlock()
}
