package commands

import (
	"context"
	"errors"
	"maps"
	"slices"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/jobform/internal/core/application"
	"github.com/colonyops/jobform/internal/printer"
	"github.com/colonyops/jobform/pkg/iojson"
)

type ValidateCmd struct {
	flags  *Flags
	format string
	reader iojson.FileReader[application.Draft]
}

// NewValidateCmd creates a new validate command.
func NewValidateCmd(flags *Flags) *ValidateCmd {
	return &ValidateCmd{flags: flags}
}

// ValidationReport is the machine-readable result of validating a draft.
type ValidationReport struct {
	Valid   bool                      `json:"valid"`
	Errors  map[string]string         `json:"errors,omitempty"`
	Summary []application.SummaryLine `json:"summary,omitempty"`
}

// Register adds the validate command to the application.
func (cmd *ValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "validate",
		Usage:     "Validate an application draft",
		UsageText: "jobform validate [-f draft.json] [--format json|text] [--strict]",
		Description: `Reads a JSON draft (same keys as the form fields) from a file or stdin and
runs the submission rules against it. Exits 1 when the draft would be rejected.`,
		Flags: []cli.Flag{
			cmd.reader.Flag(),
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (json, text)",
				Value:       "json",
				Destination: &cmd.format,
			},
			&cli.BoolFlag{
				Name:        "strict",
				Usage:       "reject unknown keys in the draft",
				Destination: &cmd.reader.Strict,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ValidateCmd) run(ctx context.Context, c *cli.Command) error {
	draft, err := cmd.reader.Read()
	if err != nil {
		return err
	}

	report := BuildReport(draft)

	if cmd.format == "text" {
		cmd.outputText(printer.Ctx(ctx), report)
	} else if err := writeJSON(c, report); err != nil {
		return err
	}

	if !report.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

// BuildReport checks draft hygiene first, then the submission rules.
func BuildReport(draft application.Draft) ValidationReport {
	if err := draft.Check(); err != nil {
		return ValidationReport{Errors: fieldErrorMap(err)}
	}

	errs := application.Validate(draft)
	if len(errs) > 0 {
		return ValidationReport{Errors: errs.Strings()}
	}

	return ValidationReport{Valid: true, Summary: application.Summary(draft)}
}

func fieldErrorMap(err error) map[string]string {
	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"draft": err.Error()}
	}

	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[fe.Field] = fe.Err.Error()
	}
	return out
}

func (cmd *ValidateCmd) outputText(p *printer.Printer, report ValidationReport) {
	if report.Valid {
		p.Successf("Application is valid")
		for _, line := range report.Summary {
			p.Printf("  %s: %s", line.Label, line.Value)
		}
		return
	}

	// form order first, then anything else (hygiene keys)
	seen := make(map[string]bool, len(report.Errors))
	for _, f := range application.Fields {
		if msg, ok := report.Errors[string(f)]; ok {
			p.Errorf("%s: %s", f, msg)
			seen[string(f)] = true
		}
	}
	for _, key := range slices.Sorted(maps.Keys(report.Errors)) {
		if !seen[key] {
			p.Errorf("%s: %s", key, report.Errors[key])
		}
	}

	p.Printf("")
	p.Errorf("%d error(s) found", len(report.Errors))
}
