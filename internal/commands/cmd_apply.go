package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/jobform/internal/core/application"
	"github.com/colonyops/jobform/internal/core/config"
	"github.com/colonyops/jobform/internal/core/logging"
	"github.com/colonyops/jobform/internal/printer"
	"github.com/colonyops/jobform/internal/tui/apply"
)

type ApplyCmd struct {
	flags    *Flags
	position string
}

// NewApplyCmd creates a new apply command
func NewApplyCmd(flags *Flags) *ApplyCmd {
	return &ApplyCmd{flags: flags}
}

// Flags returns the form flags for registration on the root command as well.
func (cmd *ApplyCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "position",
			Aliases:     []string{"p"},
			Usage:       "preselect a position (Developer, Designer, Manager)",
			Destination: &cmd.position,
		},
	}
}

// Register adds the apply command to the application.
func (cmd *ApplyCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:          "apply",
		Usage:         "Fill in a job application",
		UsageText:     "jobform apply [--position P]",
		Description:   "Opens the interactive form. Config prefill values and --position seed the draft.",
		Flags:         cmd.Flags(),
		ShellComplete: PositionCompleter(),
		Action:        cmd.run,
	})

	return app
}

// Run executes the form. Exported for use as default command.
func (cmd *ApplyCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *ApplyCmd) run(ctx context.Context, _ *cli.Command) error {
	cfg, err := cmd.flags.LoadConfig()
	if err != nil {
		return err
	}

	seed, err := cmd.seed(cfg)
	if err != nil {
		return err
	}

	session := application.NewSession(ctx, logging.Component("application"), seed)
	log.Info().Str("session_id", session.ID()).Msg("starting form")

	m := apply.New(session, apply.Options{
		Title:        cfg.Title,
		SummaryTitle: cfg.Summary.Title,
		WordWrap:     cfg.Summary.WordWrap,
		Logger:       logging.Component("tui"),
	})

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return fmt.Errorf("run form: %w", err)
	}

	if fm, ok := final.(apply.Model); ok && fm.Accepted() {
		p := printer.Ctx(ctx)
		p.Successf("Application submitted")
		for _, line := range application.Summary(fm.Draft()) {
			p.Printf("  %s: %s", line.Label, line.Value)
		}
	}

	return nil
}

// seed merges the config prefill with the --position flag.
func (cmd *ApplyCmd) seed(cfg *config.Config) (application.Draft, error) {
	seed := cfg.Prefill.Clone()
	if cmd.position == "" {
		return seed, nil
	}

	p, err := parsePosition(cmd.position)
	if err != nil {
		return application.Draft{}, err
	}
	seed.Position = p
	return seed, nil
}
