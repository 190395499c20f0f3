package flux

// Lens is a total accessor pair focusing a whole structure on a sub-part.
//
// A legal lens round-trips: Set(s, Get(s)) == s for every s, and
// Get(Set(s, c)) == c for every c. Set returns an updated copy; it never
// mutates s in place.
type Lens[S, C any] struct {
	Get func(S) C
	Set func(S, C) S
}

// Optional is a partial lens: the focused part may be absent.
// Get reports presence; Set on an absent focus is expected to be a no-op
// returning s unchanged (the combinators never call Set without a prior
// successful Get).
type Optional[S, C any] struct {
	Get func(S) (C, bool)
	Set func(S, C) S
}

// Prism is a partial matcher/constructor pair between a parent action sum
// and one of its case payloads. Extract and Embed invert each other on the
// matching case: Extract(Embed(c)) == (c, true).
type Prism[P, C any] struct {
	Extract func(P) (C, bool)
	Embed   func(C) P
}

// ComposeLens focuses outer then inner.
func ComposeLens[A, B, C any](outer Lens[A, B], inner Lens[B, C]) Lens[A, C] {
	return Lens[A, C]{
		Get: func(a A) C { return inner.Get(outer.Get(a)) },
		Set: func(a A, c C) A { return outer.Set(a, inner.Set(outer.Get(a), c)) },
	}
}

// AsOptional widens a total lens into an always-present optional.
func AsOptional[S, C any](l Lens[S, C]) Optional[S, C] {
	return Optional[S, C]{
		Get: func(s S) (C, bool) { return l.Get(s), true },
		Set: l.Set,
	}
}

// ComposeOptional focuses outer then inner; absent at either level is
// absent overall.
func ComposeOptional[A, B, C any](outer Optional[A, B], inner Optional[B, C]) Optional[A, C] {
	return Optional[A, C]{
		Get: func(a A) (C, bool) {
			b, ok := outer.Get(a)
			if !ok {
				var zero C
				return zero, false
			}
			return inner.Get(b)
		},
		Set: func(a A, c C) A {
			b, ok := outer.Get(a)
			if !ok {
				return a
			}
			return outer.Set(a, inner.Set(b, c))
		},
	}
}
