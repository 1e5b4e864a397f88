// Package daycycle drives per-enclosure day callbacks, standing in for the host
// simulation's end-of-day trigger.
package daycycle

import (
	"context"
	"sync"
	"time"
)

// Cycle advances a simulated day counter and invokes each registered callback once
// per day, sequentially, in registration order.
//
// Invariant: callbacks never run concurrently with each other.
type Cycle struct {
	mu        sync.Mutex
	day       int
	ids       []string
	callbacks map[string]func(day int)
	running   sync.Mutex
}

// New returns a cycle whose first Advance produces startDay.
//
// Precondition: startDay >= 1.
func New(startDay int) *Cycle {
	if startDay < 1 {
		panic("daycycle.New: startDay must be >= 1")
	}
	return &Cycle{
		day:       startDay - 1,
		callbacks: make(map[string]func(day int)),
	}
}

// Register adds fn under id. Re-registering an id replaces its callback in place.
func (c *Cycle) Register(id string, fn func(day int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.callbacks[id]; !exists {
		c.ids = append(c.ids, id)
	}
	c.callbacks[id] = fn
}

// Unregister removes the callback for id.
func (c *Cycle) Unregister(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.callbacks[id]; !exists {
		return
	}
	delete(c.callbacks, id)
	for i, existing := range c.ids {
		if existing == id {
			c.ids = append(c.ids[:i], c.ids[i+1:]...)
			break
		}
	}
}

// Day returns the most recently completed day, or startDay-1 before the first Advance.
func (c *Cycle) Day() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.day
}

// Advance moves to the next day and runs every callback for it.
//
// Postcondition: each callback registered at the start of the call ran exactly once.
func (c *Cycle) Advance() int {
	c.running.Lock()
	defer c.running.Unlock()

	c.mu.Lock()
	c.day++
	day := c.day
	fns := make([]func(int), 0, len(c.ids))
	for _, id := range c.ids {
		fns = append(fns, c.callbacks[id])
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(day)
	}
	return day
}

// Run advances once per interval until ctx is cancelled.
//
// Precondition: interval must be > 0.
func (c *Cycle) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.Advance()
		}
	}
}
