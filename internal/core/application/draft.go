package application

import (
	"fmt"
	"slices"

	"github.com/hay-kot/criterio"
)

// Draft is the in-progress, unsubmitted application.
type Draft struct {
	FullName               string   `json:"fullName"               yaml:"fullName"`
	Email                  string   `json:"email"                  yaml:"email"`
	PhoneNumber            string   `json:"phoneNumber"            yaml:"phoneNumber"`
	Position               Position `json:"position"               yaml:"position"`
	RelevantExperience     string   `json:"relevantExperience"     yaml:"relevantExperience"`
	PortfolioURL           string   `json:"portfolioUrl"           yaml:"portfolioUrl"`
	ManagementExperience   string   `json:"managementExperience"   yaml:"managementExperience"`
	AdditionalSkills       []string `json:"additionalSkills"       yaml:"additionalSkills"`
	PreferredInterviewTime string   `json:"preferredInterviewTime" yaml:"preferredInterviewTime"`
}

// Clone returns a copy that shares no memory with d.
func (d Draft) Clone() Draft {
	d.AdditionalSkills = slices.Clone(d.AdditionalSkills)
	return d
}

// Value returns the scalar value of f. additionalSkills has no scalar form.
func (d *Draft) Value(f Field) string {
	switch f {
	case FieldFullName:
		return d.FullName
	case FieldEmail:
		return d.Email
	case FieldPhoneNumber:
		return d.PhoneNumber
	case FieldPosition:
		return string(d.Position)
	case FieldRelevantExperience:
		return d.RelevantExperience
	case FieldPortfolioURL:
		return d.PortfolioURL
	case FieldManagementExperience:
		return d.ManagementExperience
	case FieldPreferredInterviewTime:
		return d.PreferredInterviewTime
	default:
		panic(fmt.Sprintf("application: %q is not a scalar field", f))
	}
}

// SetField replaces the named scalar field. Passing additionalSkills, an
// unknown field, or a position outside Positions panics.
func (d *Draft) SetField(f Field, value string) {
	switch f {
	case FieldFullName:
		d.FullName = value
	case FieldEmail:
		d.Email = value
	case FieldPhoneNumber:
		d.PhoneNumber = value
	case FieldPosition:
		p := Position(value)
		if !p.Valid() {
			panic(fmt.Sprintf("application: unknown position %q", value))
		}
		d.Position = p
	case FieldRelevantExperience:
		d.RelevantExperience = value
	case FieldPortfolioURL:
		d.PortfolioURL = value
	case FieldManagementExperience:
		d.ManagementExperience = value
	case FieldPreferredInterviewTime:
		d.PreferredInterviewTime = value
	default:
		panic(fmt.Sprintf("application: %q is not a scalar field", f))
	}
}

// ToggleSkill adds skill when selected and absent, and removes it otherwise.
// Both directions are idempotent. Skills outside the catalog panic.
func (d *Draft) ToggleSkill(skill string, selected bool) {
	if !IsSkill(skill) {
		panic(fmt.Sprintf("application: unknown skill %q", skill))
	}

	idx := slices.Index(d.AdditionalSkills, skill)
	switch {
	case selected && idx < 0:
		d.AdditionalSkills = append(d.AdditionalSkills, skill)
	case !selected && idx >= 0:
		d.AdditionalSkills = slices.Delete(d.AdditionalSkills, idx, idx+1)
	}
}

// HasSkill reports whether skill is selected.
func (d *Draft) HasSkill(skill string) bool {
	return slices.Contains(d.AdditionalSkills, skill)
}

// Equal reports whether d and o hold the same values. A nil and an empty
// skill list are equal.
func (d Draft) Equal(o Draft) bool {
	for _, f := range Fields {
		if f != FieldAdditionalSkills && d.Value(f) != o.Value(f) {
			return false
		}
	}
	return slices.Equal(d.AdditionalSkills, o.AdditionalSkills)
}

// Check verifies the structural invariants SetField and ToggleSkill would
// otherwise enforce by panicking. Use it on drafts decoded from external input.
func (d Draft) Check() error {
	var errs criterio.FieldErrorsBuilder

	if !d.Position.Valid() {
		errs = errs.Append(string(FieldPosition), fmt.Errorf("unknown position %q", d.Position))
	}

	seen := make(map[string]bool, len(d.AdditionalSkills))
	for i, s := range d.AdditionalSkills {
		field := fmt.Sprintf("%s[%d]", FieldAdditionalSkills, i)
		if !IsSkill(s) {
			errs = errs.Append(field, fmt.Errorf("unknown skill %q", s))
			continue
		}
		if seen[s] {
			errs = errs.Append(field, fmt.Errorf("duplicate skill %q", s))
			continue
		}
		seen[s] = true
	}

	return errs.ToError()
}
