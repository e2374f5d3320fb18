package gridest

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/time/rate"

	"github.com/hupe1980/gridest/blobstore"
	"github.com/hupe1980/gridest/estimate"
)

// limiter is the subset of rate.Limiter the loader uses. Nil means no
// rate limiting.
type limiter interface {
	Wait(ctx context.Context) error
}

type options struct {
	store       blobstore.BlobStore
	logger      *Logger
	metrics     MetricsCollector
	estimate    estimate.Options
	concurrency int
	limiter     limiter
}

// Option configures Gridest constructor behavior.
type Option func(*options)

// WithStore configures the blob store summaries are loaded from.
//
// If nil is passed, the default local store rooted at the working
// directory is kept.
func WithStore(store blobstore.BlobStore) Option {
	return func(o *options) {
		if store != nil {
			o.store = store
		}
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithGamma overrides the shape-correction exponent of the estimator.
// Non-positive values keep the default.
func WithGamma(gamma float64) Option {
	return func(o *options) {
		o.estimate.Gamma = gamma
	}
}

// WithEpsilon overrides the estimator's size floor. Non-positive values
// keep the default.
func WithEpsilon(epsilon float64) Option {
	return func(o *options) {
		o.estimate.Epsilon = epsilon
	}
}

// WithProbStats enables collection of the per-cell probability
// distribution in every estimation report.
func WithProbStats() Option {
	return func(o *options) {
		o.estimate.CollectProbStats = true
	}
}

// WithConcurrency bounds the number of parallel loads and estimations in
// batch operations. Values below 1 keep the default (GOMAXPROCS).
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.concurrency = n
		}
	}
}

// WithRateLimit throttles summary loads to rps requests per second with
// the given burst. Useful against object stores with request quotas.
func WithRateLimit(rps float64, burst int) Option {
	return func(o *options) {
		o.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		store:       blobstore.NewLocalStore("."),
		logger:      NoopLogger(),
		metrics:     NoopMetricsCollector{},
		estimate:    estimate.DefaultOptions(),
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
