package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/jobform/internal/core/application"
)

type FieldsCmd struct {
	flags    *Flags
	position string
}

// NewFieldsCmd creates a new fields command.
func NewFieldsCmd(flags *Flags) *FieldsCmd {
	return &FieldsCmd{flags: flags}
}

// Register adds the fields command to the application.
func (cmd *FieldsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "fields",
		Usage:       "Print the form layout for a position as JSON",
		UsageText:   "jobform fields [--position P]",
		Description: "Lists the fields the form shows, in order, for the given position (none by default).",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "position",
				Aliases:     []string{"p"},
				Usage:       "position to lay out (Developer, Designer, Manager)",
				Destination: &cmd.position,
			},
		},
		ShellComplete: PositionCompleter(),
		Action:        cmd.run,
	})

	return app
}

func (cmd *FieldsCmd) run(_ context.Context, c *cli.Command) error {
	p, err := parsePosition(cmd.position)
	if err != nil {
		return err
	}

	return writeJSON(c, application.Layout(p))
}
