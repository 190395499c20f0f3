package flux

// Pullback lifts a child reducer into a parent domain through a total state
// lens and an action prism.
//
// Actions the prism does not match leave the parent state untouched and
// produce no effect: reducers are no-ops outside their slice. On a match the
// child reducer runs against the focused state, the result is set back into
// the parent, and every action in the child effect is embedded into the
// parent action type before re-emission.
func Pullback[PS, PA, PE, CS, CA, CE any](
	child Reducer[CS, CA, CE],
	state Lens[PS, CS],
	action Prism[PA, CA],
	env func(PE) CE,
) Reducer[PS, PA, PE] {
	return func(s PS, a PA, e PE) (PS, Effect[PA]) {
		ca, ok := action.Extract(a)
		if !ok {
			return s, nil
		}
		cs, eff := child(state.Get(s), ca, env(e))
		return state.Set(s, cs), MapEffect(eff, action.Embed)
	}
}

// PullbackOptional is Pullback for child state that may not exist yet
// (e.g. not yet loaded). While the optional reports absence the combinator
// is a no-op regardless of the action: the feature has not been activated.
func PullbackOptional[PS, PA, PE, CS, CA, CE any](
	child Reducer[CS, CA, CE],
	state Optional[PS, CS],
	action Prism[PA, CA],
	env func(PE) CE,
) Reducer[PS, PA, PE] {
	return func(s PS, a PA, e PE) (PS, Effect[PA]) {
		ca, ok := action.Extract(a)
		if !ok {
			return s, nil
		}
		cs, present := state.Get(s)
		if !present {
			return s, nil
		}
		next, eff := child(cs, ca, env(e))
		return state.Set(s, next), MapEffect(eff, action.Embed)
	}
}

// PullbackWhen is PullbackOptional gated by an explicit action predicate,
// for compositions where the optional projection alone is ambiguous about
// which feature should claim an action. The predicate is evaluated first;
// slices sharing a prism are required to have disjoint predicates.
func PullbackWhen[PS, PA, PE, CS, CA, CE any](
	child Reducer[CS, CA, CE],
	when func(PA) bool,
	state Optional[PS, CS],
	action Prism[PA, CA],
	env func(PE) CE,
) Reducer[PS, PA, PE] {
	inner := PullbackOptional(child, state, action, env)
	return func(s PS, a PA, e PE) (PS, Effect[PA]) {
		if !when(a) {
			return s, nil
		}
		return inner(s, a, e)
	}
}
