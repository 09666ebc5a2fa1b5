package store

import "sync"

// hooks holds the debugging hooks for a Store. Hook lists are copied under
// the read lock before they run so a hook may register further hooks.
type hooks[S, A any] struct {
	mu         sync.RWMutex
	onDispatch []func(A, S, S)
	onReject   []func(A, error)
	onPanic    []func(A, any)
}

// OnDispatch registers a hook that fires after an action has been reduced
// and before observers are notified. It receives the action and the states
// before and after.
func (s *Store[S, A]) OnDispatch(fn func(action A, prev, next S)) {
	s.hooks.mu.Lock()
	s.hooks.onDispatch = append(s.hooks.onDispatch, fn)
	s.hooks.mu.Unlock()
}

// OnReject registers a hook that fires when a queued action fails
// validation. Rejections of a direct Dispatch are returned to the caller
// instead.
func (s *Store[S, A]) OnReject(fn func(action A, err error)) {
	s.hooks.mu.Lock()
	s.hooks.onReject = append(s.hooks.onReject, fn)
	s.hooks.mu.Unlock()
}

// OnPanic registers a hook that fires when an observer panics.
func (s *Store[S, A]) OnPanic(fn func(action A, recovered any)) {
	s.hooks.mu.Lock()
	s.hooks.onPanic = append(s.hooks.onPanic, fn)
	s.hooks.mu.Unlock()
}

func (h *hooks[S, A]) runOnDispatch(action A, prev, next S) {
	h.mu.RLock()
	fns := make([]func(A, S, S), len(h.onDispatch))
	copy(fns, h.onDispatch)
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(action, prev, next)
	}
}

func (h *hooks[S, A]) runOnReject(action A, err error) {
	h.mu.RLock()
	fns := make([]func(A, error), len(h.onReject))
	copy(fns, h.onReject)
	h.mu.RUnlock()
	for _, fn := range fns {
		fn(action, err)
	}
}

func (h *hooks[S, A]) runOnPanic(action A, recovered any) {
	h.mu.RLock()
	fns := make([]func(A, any), len(h.onPanic))
	copy(fns, h.onPanic)
	h.mu.RUnlock()
	for _, fn := range fns {
		func() {
			defer func() { recover() }() //nolint:errcheck
			fn(action, recovered)
		}()
	}
}
