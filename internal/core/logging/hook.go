package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts session_id from the event context and adds it to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	if sessionID := GetSessionID(ctx); sessionID != "" {
		e.Str("session_id", sessionID)
	}
}
