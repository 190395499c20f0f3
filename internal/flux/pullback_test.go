package flux

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Parent/child fixture shared by the combinator tests.

type childState struct{ N int }

type childAction string // "bump" | "bump-async"

type childEnv struct{ step int }

func childReducer(s childState, a childAction, env childEnv) (childState, Effect[childAction]) {
	switch a {
	case "bump":
		s.N += env.step
		return s, nil
	case "bump-async":
		return s, Of[childAction]("bump")
	}
	return s, nil
}

type parentState struct {
	Child childState
	Maybe *childState
	Other string
}

type parentAction struct {
	Child *childAction // set when the action belongs to the child slice
	Name  string
}

type parentEnv struct{ step int }

var childStateLens = Lens[parentState, childState]{
	Get: func(s parentState) childState { return s.Child },
	Set: func(s parentState, c childState) parentState { s.Child = c; return s },
}

var maybeChildOptional = Optional[parentState, childState]{
	Get: func(s parentState) (childState, bool) {
		if s.Maybe == nil {
			return childState{}, false
		}
		return *s.Maybe, true
	},
	Set: func(s parentState, c childState) parentState {
		if s.Maybe == nil {
			return s
		}
		cp := c
		s.Maybe = &cp
		return s
	},
}

var childActionPrism = Prism[parentAction, childAction]{
	Extract: func(a parentAction) (childAction, bool) {
		if a.Child == nil {
			return "", false
		}
		return *a.Child, true
	},
	Embed: func(c childAction) parentAction { return parentAction{Child: &c} },
}

func childOf(a childAction) parentAction { return parentAction{Child: &a} }

func toChildEnv(e parentEnv) childEnv { return childEnv{step: e.step} }

func TestPullback_NoOpOutsideSlice(t *testing.T) {
	r := Pullback(childReducer, childStateLens, childActionPrism, toChildEnv)

	s := parentState{Child: childState{N: 3}, Other: "keep"}
	next, eff := r(s, parentAction{Name: "unrelated"}, parentEnv{step: 1})

	assert.Equal(t, s, next, "state unchanged for foreign actions")
	assert.Nil(t, eff, "no effect for foreign actions")
}

func TestPullback_RunsChildAndWritesBack(t *testing.T) {
	r := Pullback(childReducer, childStateLens, childActionPrism, toChildEnv)

	s := parentState{Child: childState{N: 1}, Other: "keep"}
	next, eff := r(s, childOf("bump"), parentEnv{step: 2})

	assert.Equal(t, 3, next.Child.N)
	assert.Equal(t, "keep", next.Other)
	assert.Nil(t, eff)
}

func TestPullback_MapsEffectIntoParentActions(t *testing.T) {
	r := Pullback(childReducer, childStateLens, childActionPrism, toChildEnv)

	_, eff := r(parentState{}, childOf("bump-async"), parentEnv{step: 1})
	require.NotNil(t, eff)

	actions := collect(eff)
	require.Len(t, actions, 1)
	got, ok := childActionPrism.Extract(actions[0])
	require.True(t, ok, "re-emitted action must round-trip through the prism")
	assert.Equal(t, childAction("bump"), got)
}

func TestPullbackOptional_AbsentIsNoOp(t *testing.T) {
	r := PullbackOptional(childReducer, maybeChildOptional, childActionPrism, toChildEnv)

	s := parentState{Maybe: nil}
	next, eff := r(s, childOf("bump"), parentEnv{step: 1})

	assert.Equal(t, s, next)
	assert.Nil(t, eff)
}

func TestPullbackOptional_PresentRunsChild(t *testing.T) {
	r := PullbackOptional(childReducer, maybeChildOptional, childActionPrism, toChildEnv)

	s := parentState{Maybe: &childState{N: 10}}
	next, _ := r(s, childOf("bump"), parentEnv{step: 5})

	require.NotNil(t, next.Maybe)
	assert.Equal(t, 15, next.Maybe.N)
	assert.Equal(t, 10, s.Maybe.N, "input state never mutated in place")
}

func TestPullbackWhen_PredicateGatesEntry(t *testing.T) {
	claimed := func(a parentAction) bool { return a.Name == "claimed" }
	r := PullbackWhen(childReducer, claimed, maybeChildOptional, childActionPrism, toChildEnv)

	s := parentState{Maybe: &childState{N: 1}}

	// Matching prism but failing predicate: not our slice.
	next, eff := r(s, childOf("bump"), parentEnv{step: 1})
	assert.Equal(t, s, next)
	assert.Nil(t, eff)

	// Predicate passes: the child runs.
	a := childOf("bump")
	a.Name = "claimed"
	next, _ = r(s, a, parentEnv{step: 1})
	assert.Equal(t, 2, next.Maybe.N)
}
