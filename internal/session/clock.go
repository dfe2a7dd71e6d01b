package session

import "sync/atomic"

// Clock is a monotonic logical clock for press ordering.
//
// Every press is stamped with a strictly increasing seq number from this
// clock. Ordering is logical, never wall-clock: replaying the same press
// script always produces the same seq values, which is what makes trace
// comparison and golden files deterministic.
//
// Thread-safety: safe for concurrent use (atomic operations), though the
// session's single-writer design means one goroutine typically calls Next.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a clock starting at 0. The first Next returns 1.
func NewClock() *Clock {
	return &Clock{}
}

// Next returns the next sequence number and advances the clock.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without advancing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
