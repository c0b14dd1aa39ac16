// Package iojson reads and writes JSON for command line tools.
package iojson

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
)

// Error is the standard error format written when a command fails in JSON
// mode.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func jsonError(msg string, jsonErr error) string {
	msgBytes, _ := json.Marshal(msg)
	errBytes, _ := json.Marshal(jsonErr.Error())
	return fmt.Sprintf(`{"message":%s,"data":{"json_error":%s}}`, msgBytes, errBytes)
}

// MarshalError builds an indented Error document. If data cannot be
// marshalled it falls back to a hand-built document carrying the marshal
// error, which indicates a bug in the caller.
func MarshalError(msg string, data map[string]any) string {
	bits, err := json.MarshalIndent(Error{Message: msg, Data: data}, "", "  ")
	if err != nil {
		return jsonError(msg, err)
	}
	return string(bits)
}

// WriteErrorTo writes an Error document to w.
func WriteErrorTo(w io.Writer, msg string, data map[string]any) error {
	_, err := fmt.Fprintln(w, MarshalError(msg, data))
	return err
}

// WriteError writes an Error document to stderr.
func WriteError(msg string, data map[string]any) error {
	return WriteErrorTo(os.Stderr, msg, data)
}

// WriteWith writes obj as indented JSON to w. Marshal failures are reported
// on ew.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		_, werr := fmt.Fprintln(ew, jsonError("error marshaling in iojson.Write", err))
		if werr != nil {
			return werr
		}
		return fmt.Errorf("marshal output: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// Write calls WriteWith with [os.Stdout] and [os.Stderr]
func Write(obj any) error {
	return WriteWith(os.Stdout, os.Stderr, obj)
}
