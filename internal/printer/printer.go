// Package printer writes styled, human-readable command output. Commands get
// the printer for their invocation from the context.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hay-kot/tidy/internal/core/styles"
)

type ctxKey struct{}

// Printer writes status lines to out and errors to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer
}

// New creates a Printer.
func New(out, errOut io.Writer) *Printer {
	return &Printer{out: out, errOut: errOut}
}

// NewContext returns ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stdout and stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return New(os.Stdout, os.Stderr)
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, fmt.Sprintf(format, args...))
}

// Section writes a heading.
func (p *Printer) Section(title string) {
	_, _ = fmt.Fprintln(p.out, styles.CommandHeaderStyle.Render(title))
	_, _ = fmt.Fprintln(p.out, styles.DividerStyle.Render("────────────────────"))
}

// Successf writes a line prefixed with a check mark.
func (p *Printer) Successf(format string, args ...any) {
	p.line(p.out, styles.TextSuccessStyle.Render("✓"), format, args...)
}

// Infof writes a line prefixed with an info marker.
func (p *Printer) Infof(format string, args ...any) {
	p.line(p.out, styles.TextMutedStyle.Render("•"), format, args...)
}

// Warnf writes a warning line to the error writer.
func (p *Printer) Warnf(format string, args ...any) {
	p.line(p.errOut, styles.TextWarningStyle.Render("!"), format, args...)
}

// Errorf writes an error line to the error writer.
func (p *Printer) Errorf(format string, args ...any) {
	p.line(p.errOut, styles.TextErrorStyle.Render("✗"), format, args...)
}

func (p *Printer) line(w io.Writer, marker, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", marker, fmt.Sprintf(format, args...))
}
