package harness

import (
	"fmt"
	"slices"
)

// evaluateAssertions checks every assertion against the result, recording
// failures rather than stopping at the first one.
func evaluateAssertions(r *Result, assertions []Assertion) {
	for i, a := range assertions {
		switch a.Type {
		case AssertState:
			assertState(r, i, a)
		case AssertTraceContains:
			assertTraceContains(r, i, a)
		case AssertTraceOrder:
			assertTraceOrder(r, i, a)
		case AssertTraceCount:
			assertTraceCount(r, i, a)
		default:
			r.AddError(fmt.Sprintf("assertion %d: unknown type %q", i, a.Type))
		}
	}
}

func assertState(r *Result, i int, a Assertion) {
	got := summarize(r.Final)

	if a.Loaded != nil && got.Loaded != *a.Loaded {
		r.AddError(fmt.Sprintf("assertion %d: loaded = %d, want %d", i, got.Loaded, *a.Loaded))
	}
	if a.Favorites != nil && !slices.Equal(got.Favorites, a.Favorites) {
		r.AddError(fmt.Sprintf("assertion %d: favorites = %v, want %v", i, got.Favorites, a.Favorites))
	}
	if a.Followed != nil && !slices.Equal(got.Followed, a.Followed) {
		r.AddError(fmt.Sprintf("assertion %d: followed = %v, want %v", i, got.Followed, a.Followed))
	}
	if a.ReaderOpen != nil && got.ReaderOpen != *a.ReaderOpen {
		r.AddError(fmt.Sprintf("assertion %d: reader_open = %v, want %v", i, got.ReaderOpen, *a.ReaderOpen))
	}
	if a.Reader != "" && got.Reader != a.Reader {
		r.AddError(fmt.Sprintf("assertion %d: reader = %q, want %q", i, got.Reader, a.Reader))
	}
	if a.FeedError != nil && got.FeedError != *a.FeedError {
		r.AddError(fmt.Sprintf("assertion %d: feed_error = %q, want %q", i, got.FeedError, *a.FeedError))
	}
}

func assertTraceContains(r *Result, i int, a Assertion) {
	for _, e := range r.Trace {
		if e.Action == a.Action && (a.Key == "" || e.Key == a.Key) {
			return
		}
	}
	r.AddError(fmt.Sprintf("assertion %d: trace does not contain %q (key %q)", i, a.Action, a.Key))
}

// assertTraceOrder checks that the named actions appear in the trace as a
// subsequence: other events may interleave, but the relative order must
// hold.
func assertTraceOrder(r *Result, i int, a Assertion) {
	next := 0
	for _, e := range r.Trace {
		if next < len(a.Actions) && e.Action == a.Actions[next] {
			next++
		}
	}
	if next != len(a.Actions) {
		r.AddError(fmt.Sprintf("assertion %d: trace order %v broken at %q", i, a.Actions, a.Actions[next]))
	}
}

func assertTraceCount(r *Result, i int, a Assertion) {
	count := 0
	for _, e := range r.Trace {
		if e.Action == a.Action && (a.Key == "" || e.Key == a.Key) {
			count++
		}
	}
	if count != a.Count {
		r.AddError(fmt.Sprintf("assertion %d: %q appears %d times, want %d", i, a.Action, count, a.Count))
	}
}
