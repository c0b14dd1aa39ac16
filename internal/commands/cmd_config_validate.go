package commands

import (
	"context"
	"errors"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/jobform/internal/core/config"
	"github.com/colonyops/jobform/internal/printer"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// ConfigIssue is one problem found in the config file.
type ConfigIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "jobform config validate [options]",
				Description: "Validates the configuration file: theme name, summary settings and prefill values.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	_, err := config.Load(cmd.flags.ConfigPath)
	issues := configIssues(err)

	if cmd.format == "json" {
		out := struct {
			Valid  bool          `json:"valid"`
			Path   string        `json:"path"`
			Errors []ConfigIssue `json:"errors,omitempty"`
		}{
			Valid:  len(issues) == 0,
			Path:   cmd.flags.ConfigPath,
			Errors: issues,
		}
		if werr := writeJSON(c, out); werr != nil {
			return werr
		}
	} else {
		cmd.outputText(printer.Ctx(ctx), issues)
	}

	if len(issues) > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func configIssues(err error) []ConfigIssue {
	if err == nil {
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []ConfigIssue{{Field: "file", Message: err.Error()}}
	}

	issues := make([]ConfigIssue, len(fieldErrs))
	for i, fe := range fieldErrs {
		issues[i] = ConfigIssue{Field: fe.Field, Message: fe.Err.Error()}
	}
	return issues
}

func (cmd *ConfigValidateCmd) outputText(p *printer.Printer, issues []ConfigIssue) {
	for _, issue := range issues {
		p.Errorf("%s: %s", issue.Field, issue.Message)
	}

	if len(issues) == 0 {
		p.Successf("Configuration is valid")
		p.Infof("Path: %s", cmd.flags.ConfigPath)
		return
	}

	p.Printf("")
	p.Errorf("%d error(s) found", len(issues))
}
