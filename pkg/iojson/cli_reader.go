package iojson

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// FileReader decodes a T from the file named by its flag, or from stdin when
// the flag is unset.
type FileReader[T any] struct {
	fileFlagValue string
	Strict        bool // reject unknown object keys
}

func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to JSON file (reads from stdin if not provided)",
		Destination: &fr.fileFlagValue,
	}
}

func (fr *FileReader[T]) Read() (T, error) {
	if fr.fileFlagValue != "" {
		f, err := os.Open(fr.fileFlagValue)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		return fr.Decode(f)
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		var zero T
		return zero, fmt.Errorf("no input provided (stdin is a terminal); use -f flag or pipe JSON input")
	}
	return fr.Decode(os.Stdin)
}

// Decode reads a single JSON document from r.
func (fr *FileReader[T]) Decode(r io.Reader) (T, error) {
	var input T

	dec := json.NewDecoder(r)
	if fr.Strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&input); err != nil {
		return input, fmt.Errorf("decode JSON: %w", err)
	}

	return input, nil
}
