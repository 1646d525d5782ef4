package time_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	pkgtime "github.com/klwxsrx/simctl/pkg/time"
)

func TestClock_EveryStopsAfterStop(t *testing.T) {
	clock := pkgtime.NewClock()
	var ticks atomic.Int32
	ticker := clock.Every(5*time.Millisecond, func() { ticks.Add(1) })

	assert.Eventually(t, func() bool { return ticks.Load() >= 2 }, time.Second, time.Millisecond)
	assert.True(t, ticker.Stop())
	assert.False(t, ticker.Stop())

	stoppedAt := ticks.Load()
	time.Sleep(30 * time.Millisecond)
	assert.LessOrEqual(t, ticks.Load(), stoppedAt+1)
}

func TestClock_AfterFunc(t *testing.T) {
	clock := pkgtime.NewClock()
	done := make(chan struct{})
	clock.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}
