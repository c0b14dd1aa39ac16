package application

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraft_SetField(t *testing.T) {
	var d Draft

	for _, f := range Fields {
		if f == FieldAdditionalSkills || f == FieldPosition {
			continue
		}
		d.SetField(f, "value-"+string(f))
		assert.Equal(t, "value-"+string(f), d.Value(f))
	}

	d.SetField(FieldPosition, "Designer")
	assert.Equal(t, PositionDesigner, d.Position)

	d.SetField(FieldPosition, "")
	assert.Equal(t, PositionNone, d.Position)
}

func TestDraft_SetField_ContractViolations(t *testing.T) {
	var d Draft

	assert.Panics(t, func() { d.SetField("nickname", "x") })
	assert.Panics(t, func() { d.SetField(FieldAdditionalSkills, "React") })
	assert.Panics(t, func() { d.SetField(FieldPosition, "Intern") })
}

func TestDraft_ToggleSkill(t *testing.T) {
	t.Run("toggle on twice keeps one entry", func(t *testing.T) {
		var d Draft
		d.ToggleSkill("React", true)
		d.ToggleSkill("React", true)
		assert.Equal(t, []string{"React"}, d.AdditionalSkills)
	})

	t.Run("toggle off never-added skill is a no-op", func(t *testing.T) {
		d := Draft{AdditionalSkills: []string{"CSS"}}
		d.ToggleSkill("Python", false)
		assert.Equal(t, []string{"CSS"}, d.AdditionalSkills)
	})

	t.Run("selection order is preserved", func(t *testing.T) {
		var d Draft
		d.ToggleSkill("Python", true)
		d.ToggleSkill("CSS", true)
		d.ToggleSkill("JavaScript", true)
		d.ToggleSkill("CSS", false)
		assert.Equal(t, []string{"Python", "JavaScript"}, d.AdditionalSkills)
	})

	t.Run("unknown skill panics", func(t *testing.T) {
		var d Draft
		assert.Panics(t, func() { d.ToggleSkill("Rust", true) })
	})
}

func TestDraft_Clone(t *testing.T) {
	d := Draft{AdditionalSkills: []string{"CSS"}}
	c := d.Clone()
	c.ToggleSkill("React", true)
	c.AdditionalSkills[0] = "Python"

	assert.Equal(t, []string{"CSS"}, d.AdditionalSkills)
}

func TestDraft_Check(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d := Draft{Position: PositionDesigner, AdditionalSkills: []string{"CSS", "React"}}
		assert.NoError(t, d.Check())
	})

	t.Run("empty draft is structurally valid", func(t *testing.T) {
		assert.NoError(t, Draft{}.Check())
	})

	t.Run("reports every problem", func(t *testing.T) {
		d := Draft{Position: "Intern", AdditionalSkills: []string{"Rust", "CSS", "CSS"}}

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, d.Check(), &fieldErrs)
		require.Len(t, fieldErrs, 3)
		assert.Equal(t, "position", fieldErrs[0].Field)
		assert.Equal(t, "additionalSkills[0]", fieldErrs[1].Field)
		assert.Contains(t, fieldErrs[1].Err.Error(), "unknown skill")
		assert.Equal(t, "additionalSkills[2]", fieldErrs[2].Field)
		assert.Contains(t, fieldErrs[2].Err.Error(), "duplicate skill")
	})
}

func TestDraft_Equal(t *testing.T) {
	a := Draft{FullName: "Jane", AdditionalSkills: []string{}}
	assert.True(t, a.Equal(Draft{FullName: "Jane"}), "nil and empty skills are equal")

	assert.False(t, a.Equal(Draft{FullName: "Jane", Position: PositionManager}))
	assert.False(t, a.Equal(Draft{FullName: "Jane", AdditionalSkills: []string{"CSS"}}))
	assert.True(t, Draft{}.Equal(Draft{}))
}
