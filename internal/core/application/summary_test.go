package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	t.Run("manager", func(t *testing.T) {
		got := Summary(validManagerDraft())
		assert.Equal(t, []SummaryLine{
			{FieldFullName, "Full Name", "Jane Doe"},
			{FieldEmail, "Email", "jane@x.com"},
			{FieldPhoneNumber, "Phone Number", "5551234567"},
			{FieldPosition, "Position", "Manager"},
			{FieldManagementExperience, "Management Experience", "5 years"},
			{FieldAdditionalSkills, "Additional Skills", "React"},
			{FieldPreferredInterviewTime, "Preferred Interview Time", "2024-01-01T10:00"},
		}, got)
	})

	t.Run("designer shows experience in years and portfolio", func(t *testing.T) {
		d := Draft{
			Position:             PositionDesigner,
			RelevantExperience:   "4",
			PortfolioURL:         "example.com",
			ManagementExperience: "stale",
			AdditionalSkills:     []string{"CSS", "React"},
		}

		lines := Summary(d)
		values := map[Field]string{}
		for _, l := range lines {
			values[l.Field] = l.Value
		}

		assert.Equal(t, "4 years", values[FieldRelevantExperience])
		assert.Equal(t, "example.com", values[FieldPortfolioURL])
		assert.Equal(t, "CSS, React", values[FieldAdditionalSkills])
		assert.NotContains(t, values, FieldManagementExperience)
	})
}

func TestSummaryMarkdown(t *testing.T) {
	d := validManagerDraft()
	d.FullName = "Jane *Star* Doe"

	md := SummaryMarkdown("Application Summary", d)

	assert.Contains(t, md, "# Application Summary")
	assert.Contains(t, md, `- **Full Name:** Jane \*Star\* Doe`)
	assert.Contains(t, md, "- **Management Experience:** 5 years")
}
