// Package searchtest provides a hand-driven scheduler for debouncer tests.
package searchtest

import (
	"sync"
	"time"

	"dispatchdash/internal/ui/services/search"
)

// Clock queues debounce callbacks until Flush runs them. Plug it in with
// Service.SetScheduler.
type Clock struct {
	mu     sync.Mutex
	queued []*entry
}

type entry struct {
	fn      func()
	stopped bool
}

func (e *entry) Stop() bool {
	was := !e.stopped
	e.stopped = true
	return was
}

// Schedule implements search.Scheduler
func (c *Clock) Schedule(_ time.Duration, fn func()) search.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := &entry{fn: fn}
	c.queued = append(c.queued, e)
	return e
}

// Flush runs every queued callback that was not stopped, oldest first
func (c *Clock) Flush() {
	c.mu.Lock()
	queued := c.queued
	c.queued = nil
	c.mu.Unlock()

	for _, e := range queued {
		if !e.stopped {
			e.fn()
		}
	}
}
