package flux

import "maps"

// Keyed pairs a collection key with a child action. ForEach prisms match a
// parent action into a Keyed value and embed one back.
type Keyed[K comparable, A any] struct {
	Key    K
	Action A
}

// ForEach lifts a single-entity reducer over a keyed collection of entities.
// Each entry is an independent micro state machine; the parent needs no
// per-item special casing.
//
// A key absent from the collection is a silent no-op: UI state routinely
// outlives its backing data, and a stale action addressed to a removed entry
// must never throw. On a hit the updated child state is written back under
// its key into a copy of the map (other keys untouched, the original map
// never mutated), and child effects are re-embedded as (key, action) pairs.
func ForEach[PS, PA, PE any, K comparable, CS, CA, CE any](
	child Reducer[CS, CA, CE],
	state Lens[PS, map[K]CS],
	action Prism[PA, Keyed[K, CA]],
	env func(PE) CE,
) Reducer[PS, PA, PE] {
	return func(s PS, a PA, e PE) (PS, Effect[PA]) {
		ka, ok := action.Extract(a)
		if !ok {
			return s, nil
		}
		collection := state.Get(s)
		cs, ok := collection[ka.Key]
		if !ok {
			return s, nil
		}
		next, eff := child(cs, ka.Action, env(e))

		updated := maps.Clone(collection)
		updated[ka.Key] = next

		key := ka.Key
		return state.Set(s, updated), MapEffect(eff, func(ca CA) PA {
			return action.Embed(Keyed[K, CA]{Key: key, Action: ca})
		})
	}
}
