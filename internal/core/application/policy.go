package application

import "slices"

// conditionalFields maps a position to the fields it adds to the base form.
// This table is the only place that ties positions to fields; the validator,
// the summary, and every renderer read it through Requires and Layout.
var conditionalFields = map[Position][]Field{
	PositionDeveloper: {FieldRelevantExperience},
	PositionDesigner:  {FieldRelevantExperience, FieldPortfolioURL},
	PositionManager:   {FieldManagementExperience},
}

// IsConditional reports whether f is shown only for some positions.
func IsConditional(f Field) bool {
	for _, fields := range conditionalFields {
		if slices.Contains(fields, f) {
			return true
		}
	}
	return false
}

// ConditionalFields returns the fields position p adds, in form order.
func ConditionalFields(p Position) []Field {
	extra := conditionalFields[p]
	out := make([]Field, 0, len(extra))
	for _, f := range Fields {
		if slices.Contains(extra, f) {
			out = append(out, f)
		}
	}
	return out
}

// Requires reports whether f is displayed and validated for position p.
// Non-conditional fields are always active.
func Requires(p Position, f Field) bool {
	if !IsConditional(f) {
		return true
	}
	return slices.Contains(conditionalFields[p], f)
}

// Layout returns the ordered field specs a renderer should display for p.
func Layout(p Position) []FieldSpec {
	out := make([]FieldSpec, 0, len(Fields))
	for _, f := range Fields {
		if Requires(p, f) {
			out = append(out, Spec(f))
		}
	}
	return out
}
