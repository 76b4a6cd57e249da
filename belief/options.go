package belief

import (
	"runtime"

	"github.com/dagbelief/dagbelief/prob"
	"github.com/dagbelief/dagbelief/tracing"
)

// options holds Compute's tunables, configured via the functional Option
// pattern (teacher idiom: see core.GraphOption / matrix.MatrixOptions).
type options struct {
	maxEnumHighest int
	epsilon        float64
	parallelism    int64
	logger         tracing.Logger
}

func defaultOptions() options {
	return options{
		maxEnumHighest: 10,
		epsilon:        prob.DefaultEpsilon,
		parallelism:    int64(runtime.GOMAXPROCS(0)),
		logger:         tracing.Nop(),
	}
}

// Option configures a Compute call.
type Option func(*options)

// WithMaxEnumHighest sets the |H| threshold above which a diamond's
// conditioning falls back to n-way inclusion-exclusion instead of full
// enumeration (spec.md §4.5). Default 10.
func WithMaxEnumHighest(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxEnumHighest = n
		}
	}
}

// WithEpsilon sets the tolerance used to validate belief values against
// [0,1] (spec.md §7's NumericOutOfRange check). Default prob.DefaultEpsilon.
func WithEpsilon(epsilon float64) Option {
	return func(o *options) {
		if epsilon > 0 {
			o.epsilon = epsilon
		}
	}
}

// WithParallelism bounds the worker pool size used for layer-synchronous
// belief computation and diamond resolution. Default runtime.GOMAXPROCS(0).
func WithParallelism(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.parallelism = n
		}
	}
}

// WithLogger attaches a structured logger; the default is a disabled no-op.
func WithLogger(l tracing.Logger) Option {
	return func(o *options) { o.logger = l }
}
