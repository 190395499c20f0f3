package flux

// Reducer is the pure transition function of a feature.
//
// Given the current state, an incoming action and the feature's environment
// it returns the next state together with an Effect describing any follow-up
// work. Reducers must be total over their action type: every variant yields a
// (state, effect) pair. All I/O belongs in the Effect, never in the reducer
// body.
//
// Reducers receive no context. The scope context is supplied to the Effect
// when the owning store drains it.
type Reducer[S, A, E any] func(state S, action A, env E) (S, Effect[A])
