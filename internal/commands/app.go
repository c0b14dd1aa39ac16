package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// NewApp builds the root command with every subcommand registered. Running
// it without a subcommand opens the form.
func NewApp(flags *Flags, version string) *cli.Command {
	app := &cli.Command{
		Name:      "jobform",
		Usage:     "Fill in and validate job applications",
		UsageText: "jobform [global options] command [command options]",
		Description: `Jobform collects a job application in an interactive terminal form.

The fields shown depend on the position: developers and designers report their
relevant experience, designers add a portfolio URL, and managers describe their
management experience. Submitting runs every rule at once and shows a summary
when the application is accepted.

Run 'jobform' with no arguments to open the form.
Run 'jobform validate' to check a JSON draft without the form.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("JOBFORM_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (empty disables logging)",
				Sources:     cli.EnvVars("JOBFORM_LOG_FILE"),
				Value:       DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("JOBFORM_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
	}

	applyCmd := NewApplyCmd(flags)

	app = applyCmd.Register(app)
	app = NewValidateCmd(flags).Register(app)
	app = NewFieldsCmd(flags).Register(app)
	app = NewConfigValidateCmd(flags).Register(app)

	// Form flags also live on the root so `jobform -p Designer` works
	app.Flags = append(app.Flags, applyCmd.Flags()...)

	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'jobform --help' for usage", c.Args().First())
		}
		return applyCmd.Run(ctx, c)
	}

	return app
}
