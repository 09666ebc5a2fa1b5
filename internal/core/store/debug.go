package store

import (
	"fmt"

	"github.com/rs/zerolog"
)

// RegisterDebugLogger registers a store hook that logs every applied action
// at debug level. Rejected queued actions and observer panics are already
// logged through the store's own logger (WithLogger), so they are not
// repeated here.
func RegisterDebugLogger[S, A any](s *Store[S, A], logger zerolog.Logger) {
	s.OnDispatch(func(action A, _, _ S) {
		logger.Debug().Str("action", fmt.Sprintf("%T", action)).Any("payload", action).Msg("action dispatched")
	})
}
