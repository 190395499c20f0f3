// Package flux implements the newsflow unidirectional state runtime.
//
// Every feature in the application is a triple of (State, Action, Reducer)
// plus an Environment of side-effecting capabilities. A Store owns exactly
// one live State value, applies the Reducer to each incoming Action, and
// drains the returned Effect asynchronously, feeding follow-up Actions back
// into itself.
//
// ARCHITECTURE:
//
// Single-Writer Commits:
// Each Store serializes all state transitions through a single committer.
// Send appends an action to a pending queue; whichever caller finds the
// queue idle becomes the committer and processes actions in FIFO order.
// This ensures:
// - Exactly one authoritative State value per Store at any instant
// - Published states appear in the order their actions committed
// - Re-entrant Send (from an observer or a drained effect) never deadlocks
//
// Action Processing Flow:
// 1. Send(action) appends to the pending queue
// 2. The committer dequeues actions one at a time
// 3. reducer(state, action, env) produces (nextState, effect)
// 4. nextState is committed and stamped with a logical clock sequence
// 5. Observers receive nextState before the committer moves on
// 6. The effect drains on a goroutine bound to the store scope; each action
//    it yields re-enters Send
//
// Composition:
// Reducers compose through Pullback (focus by lens + action prism),
// PullbackOptional / PullbackWhen (child state may be absent), ForEach
// (fan-out over a keyed collection), and Combine (sequential state fold,
// concurrent effect merge). Scope derives read/route-through child stores
// from a parent without duplicating state.
//
// CRITICAL PATTERNS:
//
// Logical Clock:
// All commits are stamped with a monotonic seq counter from Clock.Next().
// Ordering assertions never use wall-clock time.
//
// Deterministic Folding:
// Combine evaluates reducers in declaration order; each reducer observes
// its predecessors' state. Only effect interleaving is unordered.
//
// Scope Teardown:
// Closing a store cancels its context; in-flight effects observe the
// cancellation and late completions are dropped, never delivered.
package flux
