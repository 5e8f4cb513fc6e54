package arw

import "github.com/katalvlaran/arw/solve"

// Option configures chain construction and the stationary-distribution
// computation via functional arguments.
type Option func(*options)

type options struct {
	onState    func(idx int, c Config)
	solverOpts []solve.Option
}

func defaultOptions() options {
	return options{onState: func(int, Config) {}}
}

// WithOnState registers a callback invoked once per newly discovered
// configuration, with its freshly assigned index. Display only; it has no
// effect on exploration.
func WithOnState(fn func(idx int, c Config)) Option {
	return func(o *options) {
		if fn != nil {
			o.onState = fn
		}
	}
}

// WithSolverSink injects a progress sink into the linear solve performed
// by StationaryDist.
func WithSolverSink(s solve.Sink) Option {
	return func(o *options) {
		if s != nil {
			o.solverOpts = append(o.solverOpts, solve.WithSink(s))
		}
	}
}
