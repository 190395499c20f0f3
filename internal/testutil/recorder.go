package testutil

import "sync"

// Recorder collects published states in order. Attach with
// store.Observe(rec.Record) and assert on States afterwards.
type Recorder[S any] struct {
	mu     sync.Mutex
	states []S
}

// Record appends a published state.
func (r *Recorder[S]) Record(state S) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, state)
}

// States returns a copy of everything recorded so far.
func (r *Recorder[S]) States() []S {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]S, len(r.states))
	copy(out, r.states)
	return out
}

// Len returns the number of recorded publishes.
func (r *Recorder[S]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}

// Last returns the most recent state; ok is false when nothing was
// recorded yet.
func (r *Recorder[S]) Last() (S, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.states) == 0 {
		var zero S
		return zero, false
	}
	return r.states[len(r.states)-1], true
}
