package flux

import (
	"context"
	"sync"
)

// Effect is a lazy, possibly asynchronous, possibly empty sequence of
// follow-up actions. The nil Effect is the empty effect.
//
// An Effect runs at most once per drain; restarting requires a fresh value.
// The context is the owning store's scope: an effect should stop yielding
// once it is cancelled. Failures inside an effect must be converted into an
// action carrying the failure; an effect has no error channel.
type Effect[A any] func(ctx context.Context, yield func(A))

// None returns the empty effect.
func None[A any]() Effect[A] { return nil }

// Of returns an effect that yields the given actions in order.
// Of() with no arguments is the empty effect.
func Of[A any](actions ...A) Effect[A] {
	if len(actions) == 0 {
		return nil
	}
	return func(ctx context.Context, yield func(A)) {
		for _, a := range actions {
			if ctx.Err() != nil {
				return
			}
			yield(a)
		}
	}
}

// Future returns an effect producing at most one action from f.
// f reports ok=false to yield nothing (the operation was cancelled or has
// no follow-up). f is responsible for converting its own failures into an
// action.
func Future[A any](f func(ctx context.Context) (A, bool)) Effect[A] {
	return func(ctx context.Context, yield func(A)) {
		a, ok := f(ctx)
		if !ok || ctx.Err() != nil {
			return
		}
		yield(a)
	}
}

// Merge runs the given effects concurrently, yielding their actions as they
// arrive. Interleaving across effects is unordered; actions from a single
// effect keep their relative order. Merge returns when every effect has
// completed.
func Merge[A any](effects ...Effect[A]) Effect[A] {
	live := effects[:0:0]
	for _, e := range effects {
		if e != nil {
			live = append(live, e)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	}
	return func(ctx context.Context, yield func(A)) {
		var wg sync.WaitGroup
		for _, e := range live {
			wg.Add(1)
			go func(e Effect[A]) {
				defer wg.Done()
				e(ctx, yield)
			}(e)
		}
		wg.Wait()
	}
}

// MapEffect lifts every action yielded by e through f.
// Used by the combinators to embed child actions into a parent action type.
func MapEffect[A, B any](e Effect[A], f func(A) B) Effect[B] {
	if e == nil {
		return nil
	}
	return func(ctx context.Context, yield func(B)) {
		e(ctx, func(a A) { yield(f(a)) })
	}
}
