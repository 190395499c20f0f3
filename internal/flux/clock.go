package flux

import "sync/atomic"

// Clock is the monotonic logical clock stamping store commits.
//
// Every committed state carries a strictly increasing seq number from this
// clock. Ordering guarantees and trace assertions are expressed in seq
// numbers, never wall-clock timestamps.
//
// Thread-safety: Clock is safe for concurrent use (atomic operations),
// though a store's single-writer commit loop is the only caller of Next in
// practice.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a new clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// NewClockAt creates a new clock starting at a specific sequence number.
func NewClockAt(start int64) *Clock {
	c := &Clock{}
	c.seq.Store(start)
	return c
}

// Next returns the next sequence number and increments the clock.
// Each call returns a unique, increasing value.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
