package store

import "sync"

// Handle is the narrow view of a store handed to components. Components get
// one through their constructor; nothing reaches a store through package
// state.
type Handle[S, A any] interface {
	GetState() S
	Dispatch(action A) error
	Subscribe(fn func()) (unsubscribe func())
}

var _ Handle[int, int] = (*Store[int, int])(nil)

// Connect subscribes to h and calls onChange with selector(state) whenever
// the selected value differs from the previous one according to equal. It
// does not call onChange for the value current at connect time.
func Connect[S, A, T any](h Handle[S, A], selector func(S) T, equal func(a, b T) bool, onChange func(T)) (unsubscribe func()) {
	var mu sync.Mutex
	last := selector(h.GetState())

	return h.Subscribe(func() {
		next := selector(h.GetState())

		mu.Lock()
		changed := !equal(last, next)
		if changed {
			last = next
		}
		mu.Unlock()

		if changed {
			onChange(next)
		}
	})
}

// Notify subscribes to h and signals the returned channel after each state
// change. Signals coalesce: the channel holds at most one pending signal, so
// a slow reader sees one wake-up for any number of changes and re-reads the
// state itself.
//
// The returned function unsubscribes and closes the channel. It is safe to
// call more than once, and a notification pass still running from before
// the call sends nothing.
func Notify[S, A any](h Handle[S, A]) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	var (
		mu     sync.Mutex
		closed bool
	)
	unsubscribe := h.Subscribe(func() {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case ch <- struct{}{}:
		default:
		}
	})

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			unsubscribe()

			mu.Lock()
			closed = true
			close(ch)
			mu.Unlock()
		})
	}
}
