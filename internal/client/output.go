package client

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/MKhiriev/go-steward-keeper/internal/app"
)

// printer renders command output. Colors are dropped automatically when
// the output is not a terminal.
type printer struct {
	w io.Writer

	ok    *color.Color
	warn  *color.Color
	fail  *color.Color
	label *color.Color
}

func newPrinter(w io.Writer) *printer {
	return &printer{
		w:     w,
		ok:    color.New(color.FgGreen),
		warn:  color.New(color.FgYellow),
		fail:  color.New(color.FgRed, color.Bold),
		label: color.New(color.FgCyan),
	}
}

func (p *printer) Success(format string, a ...any) {
	p.ok.Fprintf(p.w, format+"\n", a...)
}

func (p *printer) Warn(format string, a ...any) {
	p.warn.Fprintf(p.w, format+"\n", a...)
}

func (p *printer) Field(name string, value any) {
	p.label.Fprintf(p.w, "%-14s", name+":")
	fmt.Fprintf(p.w, " %v\n", value)
}

func (p *printer) Line(format string, a ...any) {
	fmt.Fprintf(p.w, format+"\n", a...)
}

// Error prints the user-facing message for err followed by its detail.
func (p *printer) Error(err error) {
	p.fail.Fprintf(p.w, "error: %s\n", app.Message(err))
	fmt.Fprintf(p.w, "  %v\n", err)
}

func (p *printer) Table(header string, rows [][]any) {
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, cell)
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

// PrintError writes err to w the way commands report failures.
func PrintError(w io.Writer, err error) {
	newPrinter(w).Error(err)
}

func short(pubkey string) string {
	if len(pubkey) > 12 {
		return pubkey[:12]
	}
	return pubkey
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateTime)
}

func deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
