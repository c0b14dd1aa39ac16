// Package printer writes styled status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/colonyops/jobform/internal/core/styles"
)

type ctxKey struct{}

// Printer writes styled, newline-terminated messages to a writer.
type Printer struct {
	w io.Writer
}

// New returns a Printer that writes to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WithPrinter returns a copy of ctx carrying p.
func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer stored in ctx, or a stderr printer if none was set.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return New(os.Stderr)
}

func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.SuccessStyle.Render(styles.IconCheck), format, args...)
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.InfoStyle.Render(styles.IconInfo), format, args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.ErrorStyle.Render(styles.IconCross), format, args...)
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

// Header writes a bold command heading.
func (p *Printer) Header(title string) {
	_, _ = fmt.Fprintln(p.w, styles.CommandHeaderStyle.Render(title))
}

func (p *Printer) line(icon, format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, "%s %s\n", icon, fmt.Sprintf(format, args...))
}
