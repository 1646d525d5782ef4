// Package fake provides a manually driven time.Clock for tests.
package fake

import (
	"sort"
	"sync"
	"time"

	pkgtime "github.com/klwxsrx/simctl/pkg/time"
)

type Clock struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers map[int]*timer
}

type timer struct {
	clock  *Clock
	id     int
	at     time.Time
	period time.Duration
	f      func()
}

func NewClock(now time.Time) *Clock {
	return &Clock{
		now:    now,
		timers: make(map[int]*timer),
	}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *Clock) AfterFunc(d time.Duration, f func()) pkgtime.Timer {
	return c.add(d, 0, f)
}

func (c *Clock) Every(period time.Duration, f func()) pkgtime.Timer {
	if period <= 0 {
		panic("non-positive period for fake.Clock.Every")
	}

	return c.add(period, period, f)
}

// Advance moves the clock forward by d, synchronously firing every timer that
// becomes due, in due-time order. Timer callbacks run without the clock lock held.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.nextDue(target)
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}

		c.now = next.at
		if next.period > 0 {
			next.at = next.at.Add(next.period)
		} else {
			delete(c.timers, next.id)
		}
		c.mu.Unlock()

		next.f()
	}
}

// Skip moves the clock forward without firing anything, like a suspended process.
// Overdue timers fire on the next Advance.
func (c *Clock) Skip(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// Timers returns the number of live one-shot and periodic timers.
func (c *Clock) Timers() (oneShot, periodic int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, t := range c.timers {
		if t.period > 0 {
			periodic++
		} else {
			oneShot++
		}
	}

	return oneShot, periodic
}

func (c *Clock) add(d, period time.Duration, f func()) *timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	t := &timer{
		clock:  c,
		id:     c.seq,
		at:     c.now.Add(d),
		period: period,
		f:      f,
	}
	c.timers[t.id] = t

	return t
}

func (c *Clock) nextDue(target time.Time) *timer {
	due := make([]*timer, 0, len(c.timers))
	for _, t := range c.timers {
		if !t.at.After(target) {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].at.Equal(due[j].at) {
			return due[i].id < due[j].id
		}
		return due[i].at.Before(due[j].at)
	})

	return due[0]
}

func (t *timer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if _, ok := t.clock.timers[t.id]; !ok {
		return false
	}

	delete(t.clock.timers, t.id)
	return true
}
