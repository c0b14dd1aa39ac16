package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/jobform/internal/core/application"
)

// PositionCompleter returns a ShellCompleteFunc that suggests position names
// after a --position flag and falls back to flag completion otherwise.
func PositionCompleter() cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		args := cmd.Args()
		if !args.Present() {
			cli.DefaultCompleteWithFlags(ctx, cmd)
			return
		}

		switch args.Slice()[args.Len()-1] {
		case "--position", "-p":
			w := cmd.Root().Writer
			for _, p := range application.Positions {
				_, _ = fmt.Fprintln(w, p)
			}
		default:
			cli.DefaultCompleteWithFlags(ctx, cmd)
		}
	}
}

// parsePosition converts a flag value into a Position.
func parsePosition(s string) (application.Position, error) {
	p := application.Position(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown position %q (available: Developer, Designer, Manager)", s)
	}
	return p, nil
}
