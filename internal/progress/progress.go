// Package progress renders a single-line, carriage-return progress
// display for very long eliminations and adapts it to solve.Sink.
// Display only: dropping every event changes nothing but the terminal.
package progress

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Bar is a one-line status display: each message overwrites the previous
// one in place until Finish drops to the next line.
type Bar struct {
	out     *termenv.Output
	started bool
}

// NewBar creates a Bar writing to w (typically os.Stderr).
func NewBar(w io.Writer) *Bar {
	return &Bar{out: termenv.NewOutput(w)}
}

// Display replaces the current line with msg.
func (b *Bar) Display(msg string) {
	if b.started {
		_, _ = b.out.WriteString("\r")
		b.out.ClearLine()
	}
	_, _ = b.out.WriteString(msg)
	b.started = true
}

// Finish terminates the line.
func (b *Bar) Finish() {
	if b.started {
		_, _ = b.out.WriteString("\n")
		b.started = false
	}
}

// Sink adapts a Bar to the solver's progress events.
type Sink struct {
	bar *Bar
}

// NewSink creates a solver progress sink writing to w.
func NewSink(w io.Writer) *Sink {
	return &Sink{bar: NewBar(w)}
}

// Forward implements solve.Sink.
func (s *Sink) Forward(col, pivotDegree int) {
	s.bar.Display(fmt.Sprintf("forward: column %d (degree %d)", col, pivotDegree))
}

// Backward implements solve.Sink.
func (s *Sink) Backward(col int) {
	s.bar.Display(fmt.Sprintf("backward: column %d", col))
}

// Done implements solve.Sink.
func (s *Sink) Done(int) {
	s.bar.Display("done")
	s.bar.Finish()
}
