// Package harness provides a conformance testing framework for the
// newsflow state runtime.
//
// Scenarios are YAML files describing a sequence of root actions against a
// fixture feed, executed end to end on the real application store with
// scripted capabilities: an in-memory favorites set, an in-memory topic
// set, and a fixed article source (all optionally failing on demand).
//
// Every commit the store makes is recorded as a trace event: the action
// name, the key it addressed (for fan-out slices), a monotonic seq, and a
// summary of the state after the commit. Scenarios assert over the final
// state and the trace; golden tests additionally compare the canonical
// JSON rendering of the whole trace against files in testdata/golden.
//
// Determinism:
//   - Steps run strictly sequentially; the harness waits for all in-flight
//     effects to settle before the next step
//   - Correlation tokens come from testutil.FixedTokens
//   - Trace seq numbers count commits, not wall-clock anything
//   - Canonical JSON sorts keys and NFC-normalizes strings, so goldens are
//     byte-stable across platforms
package harness
