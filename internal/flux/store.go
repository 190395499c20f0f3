package flux

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// Handle is the narrow store surface feature code and the UI layer consume.
// The root *Store implements it directly; Scope wraps any Handle into a
// focused child view.
type Handle[S, A any] interface {
	// State returns the latest committed state.
	State() S
	// Send submits an action for processing. It never blocks on effect work.
	Send(action A)
	// Observe registers fn to run on the current state immediately and on
	// every subsequent publish, in commit order. The returned func cancels
	// the registration.
	Observe(fn func(S)) (cancel func())
}

// Store owns one live State, drives a Reducer on each incoming Action, and
// asynchronously drains returned Effects back into itself.
//
// Thread-safety model:
//   - Send, State, Observe: safe from any goroutine
//   - Commits are serialized by a single-writer pending queue: whichever
//     Send finds the queue idle commits queued actions in FIFO order;
//     everyone else appends and returns
//
// INVARIANTS:
//   - Exactly one authoritative state value exists at any instant
//   - A reducer invocation is the only state transition; states are
//     replaced wholesale, never mutated in place
//   - Published states appear in exactly the order their actions committed
type Store[S, A any] struct {
	reduce     func(S, A) (S, Effect[A])
	clock      *Clock
	logger     *slog.Logger
	tokens     TokenGenerator
	storeToken string

	ctx     context.Context
	cancel  context.CancelFunc
	effects sync.WaitGroup

	mu         sync.Mutex
	state      S
	pending    []A
	committing bool
	closed     bool
	observers  map[int]*observer[S]
	nextObs    int
}

// Option configures a Store at construction.
type Option func(*options)

type options struct {
	parent context.Context
	logger *slog.Logger
	clock  *Clock
	tokens TokenGenerator
}

// WithContext binds the store scope to parent: cancelling parent tears the
// store down exactly like Close.
func WithContext(parent context.Context) Option {
	return func(o *options) { o.parent = parent }
}

// WithLogger sets the structured logger for commit and effect diagnostics.
// The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock sets the logical clock stamping commits. Tests share one clock
// across stores to get a single global commit order.
func WithClock(c *Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithTokens sets the correlation token generator.
func WithTokens(g TokenGenerator) Option {
	return func(o *options) { o.tokens = g }
}

// New constructs a Store from an initial state, a reducer and its
// environment. The environment is captured here and handed to every reducer
// invocation; it must be safe for concurrent use (a value bag of capability
// closures, no state of its own).
func New[S, A, E any](initial S, r Reducer[S, A, E], env E, opts ...Option) *Store[S, A] {
	o := options{
		parent: context.Background(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		clock:  NewClock(),
		tokens: UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	ctx, cancel := context.WithCancel(o.parent)
	s := &Store[S, A]{
		reduce:     func(state S, action A) (S, Effect[A]) { return r(state, action, env) },
		clock:      o.clock,
		logger:     o.logger,
		tokens:     o.tokens,
		storeToken: o.tokens.Generate(),
		ctx:        ctx,
		cancel:     cancel,
		state:      initial,
		observers:  make(map[int]*observer[S]),
	}
	return s
}

// State returns the latest committed state.
func (s *Store[S, A]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Seq returns the logical clock position: the seq of the latest commit.
func (s *Store[S, A]) Seq() int64 {
	return s.clock.Current()
}

// Token returns the store's correlation token.
func (s *Store[S, A]) Token() string {
	return s.storeToken
}

// Context returns the store scope. Effects receive it while draining;
// infrastructure can watch it for teardown.
func (s *Store[S, A]) Context() context.Context {
	return s.ctx
}

// Send submits an action. The caller that finds the queue idle becomes the
// committer and publishes the resulting state before returning; concurrent
// and re-entrant callers append to the pending queue and return immediately,
// their actions committed by the active committer in FIFO order.
//
// After Close (or parent context cancellation) Send is a silent no-op: late
// effect completions are dropped, not delivered.
func (s *Store[S, A]) Send(action A) {
	s.mu.Lock()
	if s.closed || s.ctx.Err() != nil {
		s.mu.Unlock()
		return
	}
	s.pending = append(s.pending, action)
	if s.committing {
		s.mu.Unlock()
		return
	}
	s.committing = true

	for len(s.pending) > 0 && !s.closed {
		a := s.pending[0]
		s.pending = s.pending[1:]

		next, eff := s.reduce(s.state, a)
		s.state = next
		seq := s.clock.Next()

		obs := make([]*observer[S], 0, len(s.observers))
		for _, o := range s.observers {
			obs = append(obs, o)
		}
		s.mu.Unlock()

		s.logger.Debug("committed", "store", s.storeToken, "seq", seq)
		for _, o := range obs {
			o.deliver(seq, next)
		}
		if eff != nil {
			s.drain(eff, seq)
		}

		s.mu.Lock()
	}
	s.committing = false
	s.mu.Unlock()
}

// drain collects eff on its own goroutine, feeding every yielded action back
// through Send. A panic escaping the effect is logged and contained; it
// never crashes the store or stops other effects.
func (s *Store[S, A]) drain(eff Effect[A], seq int64) {
	token := s.tokens.Generate()
	s.effects.Add(1)
	go func() {
		defer s.effects.Done()
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("effect panicked",
					"store", s.storeToken, "effect", token, "seq", seq, "panic", r)
			}
		}()
		eff(s.ctx, func(a A) {
			if s.ctx.Err() != nil {
				return
			}
			s.Send(a)
		})
	}()
}

// Observe registers fn as a state observer. fn runs once with the current
// state at registration, then on every subsequent publish in commit order.
// A lagging initial delivery never overrides a newer publish.
//
// fn may call Send; the action joins the pending queue and commits after
// the in-progress commit. fn must not block for long: it runs on the
// committer's goroutine.
func (s *Store[S, A]) Observe(fn func(S)) (cancel func()) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return func() {}
	}
	id := s.nextObs
	s.nextObs++
	o := &observer[S]{fn: fn}
	s.observers[id] = o
	replay := s.state
	replaySeq := s.clock.Current()
	s.mu.Unlock()

	o.deliver(replaySeq, replay)

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// States returns a conflating channel view of the state stream, suitable
// for UI event loops: the channel always carries the latest published state,
// skipping intermediates the receiver was too slow for. The channel is never
// closed; receivers select against their own ctx.
func (s *Store[S, A]) States(ctx context.Context) <-chan S {
	ch := make(chan S, 1)
	cancel := s.Observe(func(state S) {
		for {
			select {
			case ch <- state:
				return
			default:
				select {
				case <-ch:
				default:
				}
			}
		}
	})
	go func() {
		select {
		case <-ctx.Done():
		case <-s.ctx.Done():
		}
		cancel()
	}()
	return ch
}

// Close tears down the store scope: pending actions are discarded, further
// Send calls are no-ops, and in-flight effects are cancelled. Close is
// idempotent. Use Wait to block until effect goroutines have exited.
func (s *Store[S, A]) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.pending = nil
	s.mu.Unlock()
	s.cancel()
}

// Wait blocks until all in-flight effect goroutines have returned.
// Primarily a test aid: Send then Wait makes every effect-originated commit
// visible.
func (s *Store[S, A]) Wait() {
	s.effects.Wait()
}

// observer guards per-observer delivery ordering: a stale delivery racing a
// newer one is dropped rather than delivered out of order.
type observer[S any] struct {
	mu  sync.Mutex
	seq int64
	fn  func(S)
}

func (o *observer[S]) deliver(seq int64, state S) {
	o.mu.Lock()
	if seq < o.seq {
		o.mu.Unlock()
		return
	}
	o.seq = seq
	o.mu.Unlock()
	// fn runs outside the guard so it may re-enter Send without deadlock.
	o.fn(state)
}
