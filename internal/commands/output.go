package commands

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/jobform/internal/printer"
	"github.com/colonyops/jobform/pkg/iojson"
)

// writeJSON writes v to the root command's writer. Terminals get colored
// output; pipes and files get plain indented JSON.
func writeJSON(c *cli.Command, v any) error {
	root := c.Root()

	f, ok := root.Writer.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return iojson.WriteWith(root.Writer, root.ErrWriter, v)
	}

	bits, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}

	_, err = fmt.Fprintln(f, printer.ColorizeJSON(bits))
	return err
}
