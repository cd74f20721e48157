// Package printer writes styled status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/taskhub/internal/core/styles"
)

type ctxKey struct{}

// Printer writes human readable output. Errors go to a separate writer.
type Printer struct {
	out io.Writer
	err io.Writer
}

// New creates a printer writing to out and err.
func New(out, err io.Writer) *Printer {
	return &Printer{out: out, err: err}
}

// WithPrinter stores p on the context.
func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored on ctx, or one writing to stdout and
// stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout, os.Stderr)
}

// Out returns the standard output writer.
func (p *Printer) Out() io.Writer { return p.out }

func (p *Printer) line(w io.Writer, s string) {
	_, _ = fmt.Fprintln(w, s)
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	p.line(p.out, fmt.Sprintf(format, args...))
}

// Success writes a check mark, a title and an optional muted detail.
func (p *Printer) Success(title, detail string) {
	s := lipgloss.NewStyle().Foreground(styles.ColorSuccess).Render(styles.IconCheck) + " " + title
	if detail != "" {
		s += " " + styles.DividerStyle.Render(detail)
	}
	p.line(p.out, s)
}

// Successf writes a formatted success line.
func (p *Printer) Successf(format string, args ...any) {
	p.Success(fmt.Sprintf(format, args...), "")
}

// Infof writes a formatted informational line.
func (p *Printer) Infof(format string, args ...any) {
	p.line(p.out, styles.CommandHeaderStyle.Render("•")+" "+fmt.Sprintf(format, args...))
}

// Errorf writes a formatted error line to the error writer.
func (p *Printer) Errorf(format string, args ...any) {
	p.line(p.err, styles.FormErrorStyle.Render(styles.IconCross+" "+fmt.Sprintf(format, args...)))
}
