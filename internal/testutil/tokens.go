// Package testutil provides deterministic helpers for store and harness
// tests: fixed correlation tokens and a publish recorder.
package testutil

import (
	"fmt"
	"sync"
)

// FixedTokens returns predetermined correlation tokens, enabling
// deterministic golden traces. Once the provided tokens are exhausted it
// keeps generating "token-N" values rather than failing, since token demand
// depends on how many effects a scenario happens to schedule.
//
// Thread-safety: safe for concurrent use via internal mutex.
type FixedTokens struct {
	mu     sync.Mutex
	tokens []string
	idx    int
}

// NewFixedTokens creates a generator returning the given tokens in order.
func NewFixedTokens(tokens ...string) *FixedTokens {
	return &FixedTokens{tokens: tokens}
}

// Generate returns the next predetermined token, or a counted fallback when
// the fixed ones run out.
func (g *FixedTokens) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.idx < len(g.tokens) {
		t := g.tokens[g.idx]
		g.idx++
		return t
	}
	g.idx++
	return fmt.Sprintf("token-%d", g.idx)
}

// Reset rewinds the generator for test reuse.
func (g *FixedTokens) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.idx = 0
}
