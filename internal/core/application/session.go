package application

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/jobform/internal/core/logging"
)

// Session owns one draft together with the result of the last validation pass
// and whether the summary is showing. It is not safe for concurrent use; a
// session belongs to a single form.
type Session struct {
	id             string
	ctx            context.Context
	log            zerolog.Logger
	draft          Draft
	errors         ErrorMap
	summaryVisible bool
	attempts       int
}

// NewSession starts a session seeded with a copy of seed. seed must satisfy
// Draft.Check.
func NewSession(ctx context.Context, log zerolog.Logger, seed Draft) *Session {
	id := uuid.NewString()
	return &Session{
		id:     id,
		ctx:    logging.WithSessionID(ctx, id),
		log:    log,
		draft:  seed.Clone(),
		errors: ErrorMap{},
	}
}

// ID returns the session identifier stamped on log events.
func (s *Session) ID() string { return s.id }

// Draft returns a copy of the current draft.
func (s *Session) Draft() Draft { return s.draft.Clone() }

// Errors returns a copy of the ErrorMap from the last submit.
func (s *Session) Errors() ErrorMap {
	out := make(ErrorMap, len(s.errors))
	for k, v := range s.errors {
		out[k] = v
	}
	return out
}

// SummaryVisible reports whether the last submit passed and the summary has
// not been dismissed.
func (s *Session) SummaryVisible() bool { return s.summaryVisible }

// Attempts returns how many times Submit has been called.
func (s *Session) Attempts() int { return s.attempts }

// SetField replaces a scalar field. See Draft.SetField.
func (s *Session) SetField(f Field, value string) {
	if s.draft.Value(f) == value {
		return
	}
	s.draft.SetField(f, value)
	s.log.Debug().Ctx(s.ctx).Str("field", string(f)).Msg("field updated")
}

// ToggleSkill selects or deselects a catalog skill. See Draft.ToggleSkill.
func (s *Session) ToggleSkill(skill string, selected bool) {
	if s.draft.HasSkill(skill) == selected {
		return
	}
	s.draft.ToggleSkill(skill, selected)
	s.log.Debug().Ctx(s.ctx).Str("skill", skill).Bool("selected", selected).Msg("skill toggled")
}

// Submit validates the draft, replaces the ErrorMap, and shows the summary
// only when nothing failed. It returns whether the draft was accepted.
func (s *Session) Submit() bool {
	s.attempts++
	s.errors = Validate(s.draft)
	s.summaryVisible = len(s.errors) == 0

	if s.summaryVisible {
		s.log.Info().Ctx(s.ctx).
			Str("position", string(s.draft.Position)).
			Int("attempt", s.attempts).
			Msg("application accepted")
	} else {
		s.log.Info().Ctx(s.ctx).
			Int("errors", len(s.errors)).
			Int("attempt", s.attempts).
			Msg("application rejected")
	}

	return s.summaryVisible
}

// Dismiss hides the summary. The draft and ErrorMap are kept.
func (s *Session) Dismiss() {
	if !s.summaryVisible {
		return
	}
	s.summaryVisible = false
	s.log.Debug().Ctx(s.ctx).Msg("summary dismissed")
}
