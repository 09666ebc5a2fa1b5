// Package store provides a synchronous, single-writer state container.
//
// A Store holds one state value, replaces it with reduce(state, action) on
// every Dispatch, and then calls each registered observer with no
// arguments. Observers pull the new state with GetState.
package store

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"
)

// ErrReentrantDispatch is returned by Dispatch under the Reject policy when it
// is called while another dispatch is still running.
var ErrReentrantDispatch = errors.New("dispatch called while a dispatch is in progress")

// Reducer computes the next state from the prior state and an action.
// It must not modify prior.
type Reducer[S, A any] func(prior S, action A) S

// Policy decides what happens to a Dispatch issued while another one is
// in progress, typically from inside an observer.
type Policy int

const (
	// Queue appends the action to a FIFO that the outer Dispatch drains
	// after its notification pass.
	Queue Policy = iota
	// Reject fails the nested Dispatch with ErrReentrantDispatch.
	Reject
)

func (p Policy) String() string {
	switch p {
	case Queue:
		return "queue"
	case Reject:
		return "reject"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses "queue" or "reject".
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "queue":
		return Queue, nil
	case "reject":
		return Reject, nil
	default:
		return Queue, fmt.Errorf("unknown reentrant dispatch policy %q: must be queue or reject", s)
	}
}

type subscription struct {
	fn func()
}

// Store is a state container. The zero value is not usable; call New.
type Store[S, A any] struct {
	reduce   Reducer[S, A]
	validate func(S, A) error
	policy   Policy
	log      zerolog.Logger

	mu          sync.Mutex
	state       S
	observers   []*subscription
	dispatching bool
	pending     []A
	preloaded   bool

	hooks hooks[S, A]
}

// Option configures a Store.
type Option[S, A any] func(*Store[S, A])

// WithInitialState preloads the store instead of bootstrapping it from the
// reducer.
func WithInitialState[S, A any](state S) Option[S, A] {
	return func(s *Store[S, A]) {
		s.state = state
		s.preloaded = true
	}
}

// WithValidator installs a check run against the current state before each
// action is reduced. A non-nil error rejects the action.
func WithValidator[S, A any](fn func(S, A) error) Option[S, A] {
	return func(s *Store[S, A]) {
		s.validate = fn
	}
}

// WithReentrancy sets the policy for nested dispatches. Queue is the default.
func WithReentrancy[S, A any](p Policy) Option[S, A] {
	return func(s *Store[S, A]) {
		s.policy = p
	}
}

// WithLogger sets the logger used for rejected queued actions and observer
// panics.
func WithLogger[S, A any](l zerolog.Logger) Option[S, A] {
	return func(s *Store[S, A]) {
		s.log = l
	}
}

// New creates a store. Unless WithInitialState is given, the initial state is
// reduce(zero S, zero A), which lets the reducers supply their own defaults.
func New[S, A any](reduce Reducer[S, A], opts ...Option[S, A]) *Store[S, A] {
	s := &Store[S, A]{
		reduce: reduce,
		policy: Queue,
		log:    zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if !s.preloaded {
		var (
			zeroState  S
			zeroAction A
		)
		s.state = reduce(zeroState, zeroAction)
	}

	return s
}

// GetState returns the current state snapshot.
func (s *Store[S, A]) GetState() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch reduces action into a new state and notifies observers.
//
// Validation errors are returned and leave the state untouched. A Dispatch
// issued while another is running follows the store's Policy: under Queue it
// returns nil immediately and the action is applied, validated against the
// state of that moment, once the running dispatch has notified its
// observers. Under Reject it returns ErrReentrantDispatch.
//
// The store does not tell nested calls from calls made on other goroutines:
// a Dispatch that overlaps a running one from another goroutine follows the
// same Policy. Under Queue it is applied by the goroutine already
// dispatching, and a later rejection is only reported through the logger
// and OnReject. Callers that need the error should dispatch from a single
// goroutine.
func (s *Store[S, A]) Dispatch(action A) error {
	s.mu.Lock()
	if s.dispatching {
		if s.policy == Reject {
			s.mu.Unlock()
			return ErrReentrantDispatch
		}
		s.pending = append(s.pending, action)
		s.mu.Unlock()
		return nil
	}
	s.dispatching = true
	s.mu.Unlock()

	done := false
	defer func() {
		if done {
			return
		}
		// a reducer or hook panicked; leave the store usable
		s.mu.Lock()
		s.dispatching = false
		s.pending = nil
		s.mu.Unlock()
	}()

	err := s.apply(action)
	for {
		next, ok := s.dequeue()
		if !ok {
			done = true
			return err
		}
		if qerr := s.apply(next); qerr != nil {
			s.log.Warn().Err(qerr).Msg("queued action rejected")
			s.hooks.runOnReject(next, qerr)
		}
	}
}

// Subscribe registers fn to be called after every state change. The returned
// function removes exactly this registration; calling it again does nothing.
//
// Observers run in subscription order. Each notification pass works on a
// copy of the observer list taken before the first call, so subscribing or
// unsubscribing from inside an observer only affects later passes.
func (s *Store[S, A]) Subscribe(fn func()) (unsubscribe func()) {
	sub := &subscription{fn: fn}

	s.mu.Lock()
	s.observers = append(s.observers, sub)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.observers = slices.DeleteFunc(s.observers, func(o *subscription) bool {
				return o == sub
			})
		})
	}
}

func (s *Store[S, A]) apply(action A) error {
	s.mu.Lock()
	prev := s.state
	s.mu.Unlock()

	if s.validate != nil {
		if err := s.validate(prev, action); err != nil {
			return err
		}
	}

	next := s.reduce(prev, action)

	s.mu.Lock()
	s.state = next
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	s.hooks.runOnDispatch(action, prev, next)

	for _, sub := range observers {
		s.notify(sub, action)
	}
	return nil
}

// dequeue pops the oldest pending action. When the queue is empty it ends the
// dispatch under the same lock, so an action queued concurrently is never
// left behind.
func (s *Store[S, A]) dequeue() (A, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero A
	if len(s.pending) == 0 {
		s.dispatching = false
		s.pending = nil
		return zero, false
	}
	next := s.pending[0]
	s.pending[0] = zero
	s.pending = s.pending[1:]
	return next, true
}

func (s *Store[S, A]) notify(sub *subscription, action A) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Str("panic", fmt.Sprint(r)).Msg("observer panicked")
			s.hooks.runOnPanic(action, r)
		}
	}()
	sub.fn()
}
