package solve

import (
	"errors"

	"github.com/katalvlaran/arw/symmat"
)

// Sentinel errors for the solve package.
var (
	// ErrSingular is returned by Solve and InverseEntries when some row has
	// no nonzero pivot candidate. The wrapping error carries the row index
	// and the row's entries for diagnosis.
	ErrSingular = errors.New("solve: singular matrix")

	// ErrDivisionByZero flags an internal invariant violation: a pivot
	// scaling step on a zero value. Unreachable given correct pivot
	// selection; treat an occurrence as a defect.
	ErrDivisionByZero = errors.New("solve: pivot division by zero")
)

// Sink receives progress events during elimination. Ordering matters,
// content is informational: one Forward per forward column (ascending),
// one Backward per back-substitution column (descending), then exactly one
// Done - with -1 on normal completion, or the row index at which
// singularity cut the run short.
type Sink interface {
	Forward(col, pivotDegree int)
	Backward(col int)
	Done(col int)
}

// NopSink discards all events; the default when no sink is injected.
type NopSink struct{}

// Forward implements Sink.
func (NopSink) Forward(int, int) {}

// Backward implements Sink.
func (NopSink) Backward(int) {}

// Done implements Sink.
func (NopSink) Done(int) {}

// Option configures the elimination via functional arguments.
type Option func(*options)

type options struct {
	sink Sink
}

func defaultOptions() options {
	return options{sink: NopSink{}}
}

// WithSink injects a progress sink. A nil sink keeps the default NopSink.
func WithSink(s Sink) Option {
	return func(o *options) {
		if s != nil {
			o.sink = s
		}
	}
}

// Outcome is the sum-typed result of one elimination pass.
//
// Solved (Singular == false): X holds the full solution of X*A = B and
// Row is -1. Singular (Singular == true): Row is the row index at which no
// pivot existed and A is the partially lower-triangular coefficient
// matrix; X holds whatever had been computed up to that point.
type Outcome struct {
	X        *symmat.Dense
	A        *symmat.Dense
	Singular bool
	Row      int
	// Pivots records, per completed forward step, the column index (in the
	// arrangement current at that step) chosen as pivot. Diagnostic; also
	// pins down tie-break determinism.
	Pivots []int
}
