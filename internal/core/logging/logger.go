// Package logging holds the zerolog helpers shared by tidy's packages.
package logging

import (
	"github.com/rs/zerolog"
)

// Component returns l tagged with a component identifier under the "cmp" key.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("cmp", name).Logger()
}
