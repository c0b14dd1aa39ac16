// Package logging provides component loggers that stamp the form session ID
// onto events logged with a context.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a logger tagged with a "cmp" field. Events logged with
// Ctx(ctx) also carry the session ID stored by WithSessionID.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger().Hook(ContextHook{})
}
