// Package application holds the job application draft, the conditional-field
// policy, and the validation rules that decide when a draft can be submitted.
package application

import "slices"

// Field names a draft field. The string value is the canonical key used in
// ErrorMap, JSON drafts, and form variables.
type Field string

const (
	FieldFullName               Field = "fullName"
	FieldEmail                  Field = "email"
	FieldPhoneNumber            Field = "phoneNumber"
	FieldPosition               Field = "position"
	FieldRelevantExperience     Field = "relevantExperience"
	FieldPortfolioURL           Field = "portfolioUrl"
	FieldManagementExperience   Field = "managementExperience"
	FieldAdditionalSkills       Field = "additionalSkills"
	FieldPreferredInterviewTime Field = "preferredInterviewTime"
)

// Fields lists every field in form order.
var Fields = []Field{
	FieldFullName,
	FieldEmail,
	FieldPhoneNumber,
	FieldPosition,
	FieldRelevantExperience,
	FieldPortfolioURL,
	FieldManagementExperience,
	FieldAdditionalSkills,
	FieldPreferredInterviewTime,
}

// Known reports whether f is one of the draft fields.
func (f Field) Known() bool {
	return slices.Contains(Fields, f)
}

// Position is the role an applicant applies for.
type Position string

const (
	PositionNone      Position = ""
	PositionDeveloper Position = "Developer"
	PositionDesigner  Position = "Designer"
	PositionManager   Position = "Manager"
)

// Positions lists the selectable positions in display order.
var Positions = []Position{PositionDeveloper, PositionDesigner, PositionManager}

// Valid reports whether p is empty or one of Positions.
func (p Position) Valid() bool {
	return p == PositionNone || slices.Contains(Positions, p)
}

// Skills is the fixed catalog of additional skills, in display order.
var Skills = []string{"JavaScript", "CSS", "Python", "React", "Node.js"}

// IsSkill reports whether s is in the skill catalog.
func IsSkill(s string) bool {
	return slices.Contains(Skills, s)
}

// InputKind tells a renderer which widget to use for a field.
type InputKind string

const (
	InputText        InputKind = "text"
	InputSelect      InputKind = "select"
	InputMultiSelect InputKind = "multi-select"
)

// FieldSpec describes how a field is presented.
type FieldSpec struct {
	Name        Field     `json:"name"`
	Label       string    `json:"label"`
	Kind        InputKind `json:"kind"`
	Placeholder string    `json:"placeholder,omitempty"`
	Options     []string  `json:"options,omitempty"`
}

var specs = map[Field]FieldSpec{
	FieldFullName:    {Name: FieldFullName, Label: "Full Name", Kind: InputText, Placeholder: "Jane Doe"},
	FieldEmail:       {Name: FieldEmail, Label: "Email", Kind: InputText, Placeholder: "jane@example.com"},
	FieldPhoneNumber: {Name: FieldPhoneNumber, Label: "Phone Number", Kind: InputText, Placeholder: "5551234567"},
	FieldPosition: {
		Name:        FieldPosition,
		Label:       "Applying for Position",
		Kind:        InputSelect,
		Placeholder: "Select a position",
		Options: func() []string {
			opts := make([]string, len(Positions))
			for i, p := range Positions {
				opts[i] = string(p)
			}
			return opts
		}(),
	},
	FieldRelevantExperience:     {Name: FieldRelevantExperience, Label: "Relevant Experience (years)", Kind: InputText, Placeholder: "3"},
	FieldPortfolioURL:           {Name: FieldPortfolioURL, Label: "Portfolio URL", Kind: InputText, Placeholder: "https://example.com"},
	FieldManagementExperience:   {Name: FieldManagementExperience, Label: "Management Experience", Kind: InputText},
	FieldAdditionalSkills:       {Name: FieldAdditionalSkills, Label: "Additional Skills", Kind: InputMultiSelect, Options: Skills},
	FieldPreferredInterviewTime: {Name: FieldPreferredInterviewTime, Label: "Preferred Interview Time", Kind: InputText, Placeholder: "2024-01-01T10:00"},
}

// Spec returns the presentation spec for f. Options are copied so callers
// cannot mutate the catalog.
func Spec(f Field) FieldSpec {
	s, ok := specs[f]
	if !ok {
		panic("application: unknown field " + string(f))
	}
	s.Options = slices.Clone(s.Options)
	return s
}
