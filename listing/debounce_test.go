package listing

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebounceCollapsesBursts(t *testing.T) {
	var runs atomic.Int32
	call, stop := Debounce(30*time.Millisecond, func() { runs.Add(1) })
	defer stop()

	for i := 0; i < 10; i++ {
		call()
		time.Sleep(2 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)

	// No further runs after the quiet period.
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
}

func TestDebounceStopCancelsPending(t *testing.T) {
	var runs atomic.Int32
	call, stop := Debounce(30*time.Millisecond, func() { runs.Add(1) })

	call()
	stop()

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), runs.Load())
}

func TestDebounceSeparateQuietPeriodsEachFire(t *testing.T) {
	var runs atomic.Int32
	call, stop := Debounce(20*time.Millisecond, func() { runs.Add(1) })
	defer stop()

	call()
	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)

	call()
	assert.Eventually(t, func() bool { return runs.Load() == 2 }, time.Second, 5*time.Millisecond)
}
