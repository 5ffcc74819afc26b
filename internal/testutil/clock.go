package testutil

import (
	"sync"
	"time"
)

// FakeClock is a manually advanced clock for deterministic timing tests.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a clock fixed at an arbitrary instant.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)}
}

// Now returns the clock's current time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type manualRequest struct {
	id uint64
	fn func()
}

// ManualScheduler queues frame callbacks until the test runs them with Frame.
//
// When IgnoreCancel is set, cancel funcs do nothing, which lets a test fire
// callbacks that their owner has already abandoned.
type ManualScheduler struct {
	IgnoreCancel bool

	mu      sync.Mutex
	nextID  uint64
	pending []manualRequest
}

// RequestFrame queues fn for the next call to Frame.
func (s *ManualScheduler) RequestFrame(fn func()) func() {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.pending = append(s.pending, manualRequest{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		if s.IgnoreCancel {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, req := range s.pending {
			if req.id == id {
				s.pending = append(s.pending[:i], s.pending[i+1:]...)
				return
			}
		}
	}
}

// Frame runs every callback queued before the call and returns how many ran.
func (s *ManualScheduler) Frame() int {
	s.mu.Lock()
	batch := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, req := range batch {
		req.fn()
	}
	return len(batch)
}

// Pending returns the number of queued callbacks.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Hold removes and returns every queued callback without running it, so a
// test can fire them later, out of order with newer requests.
func (s *ManualScheduler) Hold() []func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	held := make([]func(), 0, len(s.pending))
	for _, req := range s.pending {
		held = append(held, req.fn)
	}
	s.pending = nil
	return held
}
