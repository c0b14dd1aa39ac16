package application

import "strings"

// SummaryLine is one label/value pair of the submitted application.
type SummaryLine struct {
	Field Field  `json:"field"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// summaryLabels overrides labels where the summary wording differs from the
// form wording.
var summaryLabels = map[Field]string{
	FieldPosition:           "Position",
	FieldRelevantExperience: "Relevant Experience",
}

// Summary lists the draft in form order. Conditional fields appear only when
// the draft's position activates them.
func Summary(d Draft) []SummaryLine {
	layout := Layout(d.Position)
	out := make([]SummaryLine, 0, len(layout))

	for _, spec := range layout {
		label := spec.Label
		if l, ok := summaryLabels[spec.Name]; ok {
			label = l
		}

		var value string
		switch spec.Name {
		case FieldAdditionalSkills:
			value = strings.Join(d.AdditionalSkills, ", ")
		case FieldRelevantExperience:
			value = d.RelevantExperience + " years"
		default:
			value = d.Value(spec.Name)
		}

		out = append(out, SummaryLine{Field: spec.Name, Label: label, Value: value})
	}

	return out
}

// SummaryMarkdown renders the summary as a markdown document.
func SummaryMarkdown(title string, d Draft) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(title)
	b.WriteString("\n\n")
	for _, line := range Summary(d) {
		b.WriteString("- **")
		b.WriteString(line.Label)
		b.WriteString(":** ")
		b.WriteString(escapeMarkdown(line.Value))
		b.WriteString("\n")
	}
	return b.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
