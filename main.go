package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/jobform/internal/commands"
	"github.com/colonyops/jobform/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}

	app := commands.NewApp(flags, build())

	app.Before = func(ctx context.Context, c *cli.Command) (context.Context, error) {
		logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
		if err != nil {
			return ctx, fmt.Errorf("setup logger: %w", err)
		}
		log.Logger = logger
		logCloser = closer

		return ctx, nil
	}

	app.After = func(ctx context.Context, c *cli.Command) error {
		if logCloser != nil {
			logCloser()
		}
		return nil
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		if msg := runErr.Error(); msg != "" {
			fmt.Println()
			fmt.Println(msg)
		}
		exitCode = 1
	}

	os.Exit(exitCode)
}
