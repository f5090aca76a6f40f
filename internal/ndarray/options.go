package ndarray

import "github.com/born-ml/ndarray/internal/parallel"

// Option configures a driver call.
type Option func(*options)

type options struct {
	parallel parallel.Config
}

// WithParallel splits the outermost output dimension across goroutines.
// The callback must then be safe for concurrent use.
func WithParallel(cfg parallel.Config) Option {
	return func(o *options) {
		o.parallel = cfg
	}
}

// run invokes rows over [0, dim0(out)), in parallel when configured.
func run(out Shape, opts []Option, rows func(lo, hi int)) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	n := dim0(out)
	if len(out) == 0 {
		rows(0, n)
		return
	}
	parallel.Range(n, rows, o.parallel)
}
