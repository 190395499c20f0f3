package flux

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pairState struct {
	Left  int
	Right int
}

type pairAction struct {
	Left  *string
	Right *string
}

func pairReducer(s pairState, a pairAction, _ struct{}) (pairState, Effect[pairAction]) {
	if a.Left != nil && *a.Left == "increment" {
		s.Left++
	}
	if a.Right != nil && *a.Right == "increment" {
		s.Right++
	}
	return s, nil
}

func leftAction(a string) pairAction { return pairAction{Left: &a} }

func TestScope_ProjectsAndRoutes(t *testing.T) {
	parent := New(pairState{Left: 1, Right: 2}, Reducer[pairState, pairAction, struct{}](pairReducer), struct{}{})
	defer parent.Close()

	left := Scope(parent, func(s pairState) int { return s.Left }, leftAction)

	assert.Equal(t, 1, left.State())

	// Sending on the child routes through the parent reducer.
	left.Send("increment")
	assert.Equal(t, 2, left.State())
	assert.Equal(t, pairState{Left: 2, Right: 2}, parent.State())
}

func TestScope_ObserveSeesProjectedPublishes(t *testing.T) {
	parent := New(pairState{}, Reducer[pairState, pairAction, struct{}](pairReducer), struct{}{})
	defer parent.Close()

	left := Scope(parent, func(s pairState) int { return s.Left }, leftAction)

	var seen []int
	cancel := left.Observe(func(n int) { seen = append(seen, n) })
	defer cancel()

	left.Send("increment")
	r := "increment"
	parent.Send(pairAction{Right: &r}) // publishes too; projection is unchanged

	assert.Equal(t, []int{0, 1, 1}, seen)
}

func TestScope_Nested(t *testing.T) {
	type root struct{ Pair pairState }
	type rootAction struct{ Pair *pairAction }

	rootReducer := func(s root, a rootAction, _ struct{}) (root, Effect[rootAction]) {
		if a.Pair == nil {
			return s, nil
		}
		next, eff := pairReducer(s.Pair, *a.Pair, struct{}{})
		s.Pair = next
		return s, MapEffect(eff, func(pa pairAction) rootAction { return rootAction{Pair: &pa} })
	}

	store := New(root{Pair: pairState{Left: 5}}, Reducer[root, rootAction, struct{}](rootReducer), struct{}{})
	defer store.Close()

	pair := Scope(store, func(s root) pairState { return s.Pair }, func(a pairAction) rootAction {
		return rootAction{Pair: &a}
	})
	left := Scope(pair, func(s pairState) int { return s.Left }, leftAction)

	require.Equal(t, 5, left.State())
	left.Send("increment")
	assert.Equal(t, 6, left.State())
	assert.Equal(t, 6, store.State().Pair.Left)
}
