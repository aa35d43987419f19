package batch

import (
	"runtime"

	"github.com/hupe1980/vecmath"
)

type options struct {
	concurrency int
	logger      *vecmath.Logger
	metrics     vecmath.MetricsCollector
}

// Option configures a batch operation.
type Option func(*options)

// WithConcurrency limits the number of goroutines working at once.
// Values <= 0 select runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithLogger sets the logger receiving one record per batch.
// If nil is passed, logging is disabled.
func WithLogger(l *vecmath.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = vecmath.NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics sets the collector receiving one record per batch.
// If nil is passed, metrics are disabled.
func WithMetrics(m vecmath.MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = vecmath.NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

func applyOptions(optFns []Option) *options {
	o := &options{
		logger:  vecmath.NoopLogger(),
		metrics: vecmath.NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(o)
	}
	if o.concurrency <= 0 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	return o
}
