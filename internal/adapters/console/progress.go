package console

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/dnflock/dnflock/internal/core/ports"
)

// Progress implements ports.ProgressRenderer as a single line redrawn in
// place with a carriage return. The terminal is never polled; the tracker
// decides when to draw.
type Progress struct {
	out   *termenv.Output
	label string
}

// NewProgress creates a progress renderer writing to w.
func NewProgress(w io.Writer, label string) *Progress {
	return &Progress{out: NewOutput(w), label: label}
}

// Render redraws the progress line.
func (p *Progress) Render(completed, total int64) {
	fmt.Fprintf(p.out, "\r%s %s", p.label, p.counter(completed, total))
}

// Done draws the final count and moves to the next line.
func (p *Progress) Done(total int64) {
	fmt.Fprintf(p.out, "\r%s %s\n", p.label, p.counter(total, total))
}

func (p *Progress) counter(completed, total int64) string {
	percent := int64(100)
	if total > 0 {
		percent = completed * 100 / total
	}
	s := fmt.Sprintf("%d/%d (%d%%)", completed, total, percent)
	return p.out.String(s).Foreground(termenv.ANSICyan).String()
}

// Silent is a ProgressRenderer that draws nothing. Used when progress is
// disabled or output is not a terminal.
type Silent struct{}

func (Silent) Render(_, _ int64) {}
func (Silent) Done(_ int64)      {}

var (
	_ ports.ProgressRenderer = (*Progress)(nil)
	_ ports.ProgressRenderer = Silent{}
)
