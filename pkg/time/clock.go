package time

import (
	"sync"
	"time"
)

type (
	Clock interface {
		Now() time.Time
		// AfterFunc calls f once in its own goroutine after d elapses.
		AfterFunc(d time.Duration, f func()) Timer
		// Every calls f each period until the returned Timer is stopped.
		Every(period time.Duration, f func()) Timer
	}

	Timer interface {
		// Stop reports whether the call stopped the timer, false if it already expired or was stopped.
		Stop() bool
	}

	clockImpl struct{}
)

func NewClock() Clock {
	return clockImpl{}
}

func (c clockImpl) Now() time.Time {
	return time.Now()
}

func (c clockImpl) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

func (c clockImpl) Every(period time.Duration, f func()) Timer {
	t := &ticker{
		impl: time.NewTicker(period),
		done: make(chan struct{}),
	}
	go t.run(f)

	return t
}

type ticker struct {
	impl     *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
}

func (t *ticker) run(f func()) {
	for {
		select {
		case <-t.impl.C:
			select {
			case <-t.done:
				return
			default:
			}
			f()
		case <-t.done:
			return
		}
	}
}

func (t *ticker) Stop() bool {
	stopped := false
	t.stopOnce.Do(func() {
		t.impl.Stop()
		close(t.done)
		stopped = true
	})

	return stopped
}
