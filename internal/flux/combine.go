package flux

import "slices"

// Combine folds several reducers over the same state, action and
// environment.
//
// State folds sequentially in declaration order: each reducer observes its
// predecessors' updates, not a stale snapshot, so the combined transition is
// deterministic. Effects merge concurrently: side-effect interleaving
// carries no ordering guarantee and no back-pressure between slices.
//
// The reducer slice is copied so later mutation of the caller's slice cannot
// change evaluation order.
func Combine[S, A, E any](reducers ...Reducer[S, A, E]) Reducer[S, A, E] {
	rs := slices.Clone(reducers)
	return func(s S, a A, e E) (S, Effect[A]) {
		effects := make([]Effect[A], 0, len(rs))
		for _, r := range rs {
			var eff Effect[A]
			s, eff = r(s, a, e)
			if eff != nil {
				effects = append(effects, eff)
			}
		}
		return s, Merge(effects...)
	}
}
