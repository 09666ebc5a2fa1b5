package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies the command and scenario names from the event context
// onto log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if name := GetCommand(ctx); name != "" {
		e.Str("command", name)
	}

	if name := GetScenario(ctx); name != "" {
		e.Str("scenario", name)
	}
}
