package watcher_test

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gantrybuild/gantry/internal/adapters/watcher"
)

func TestDebouncer_DeliversSinglePath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls int
		var got []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			calls++
			got = paths
		})

		d.Add("/work/src/main.go")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, calls)
		assert.Equal(t, []string{"/work/src/main.go"}, got)
	})
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls int
		var got []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			calls++
			got = paths
		})

		d.Add("/work/a.go")
		d.Add("/work/b.go")
		d.Add("/work/a.go")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		// One delivery, duplicates collapsed. Batch order is not defined.
		require.Equal(t, 1, calls)
		require.Len(t, got, 2)
		assert.Contains(t, got, "/work/a.go")
		assert.Contains(t, got, "/work/b.go")
	})
}

func TestDebouncer_AddRestartsQuietPeriod(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls int

		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			calls++
		})

		d.Add("/work/a.go")
		time.Sleep(60 * time.Millisecond)

		d.Add("/work/b.go")
		time.Sleep(60 * time.Millisecond)

		// 120ms after the first add, but only 60ms after the second: the
		// window restarted and must not have expired yet.
		synctest.Wait()
		assert.Equal(t, 0, calls)

		time.Sleep(50 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, 1, calls)
	})
}

func TestDebouncer_FlushDeliversImmediately(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls int
		var got []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			calls++
			got = paths
		})

		d.Add("/work/a.go")
		d.Add("/work/b.go")

		d.Flush()

		require.Equal(t, 1, calls)
		assert.Len(t, got, 2)

		// The stopped timer must not deliver the batch a second time.
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, 1, calls)
	})
}

func TestDebouncer_FlushWithoutPendingIsNoOp(t *testing.T) {
	var calls int

	d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
		calls++
	})

	d.Flush()

	assert.Equal(t, 0, calls)
}

func TestDebouncer_FlushAfterFireDoesNotRedeliver(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls int

		d := watcher.NewDebouncer(50*time.Millisecond, func([]string) {
			calls++
		})

		d.Add("/work/a.go")

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		require.Equal(t, 1, calls)

		d.Flush()
		assert.Equal(t, 1, calls)
	})
}

func TestDebouncer_ReusableAfterDelivery(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls int
		var got []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			calls++
			got = paths
		})

		d.Add("/work/a.go")
		d.Flush()
		require.Equal(t, 1, calls)

		d.Add("/work/b.go")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 2, calls)
		assert.Equal(t, []string{"/work/b.go"}, got)
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)

		d.Add("/work/a.go")

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Flush()
	})
}
