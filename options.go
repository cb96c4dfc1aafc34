package artpaint

import (
	"github.com/HaikuArchives/ArtPaint-sub001/internal/parallel"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/transform"
)

// Option configures a call to Apply.
//
// Example:
//
//	// Four bands with a progress callback
//	out, err := artpaint.Apply(ctx, b, req,
//	    artpaint.WithWorkers(4),
//	    artpaint.WithProgress(func(d float64) { bar.Add(d) }))
type Option func(*options)

// options holds the configuration of one Apply call.
type options struct {
	band      []parallel.Option
	scheduler *Scheduler
}

// Scheduler runs band work on a long-lived worker pool. Create one with
// NewScheduler when the same operation repeats many times, such as an
// interactive rotation preview, and Close it when done.
type Scheduler = parallel.Scheduler

var _ parallel.Runner = (*Scheduler)(nil)

// ProgressFunc receives progress as a percentage delta. Deltas of one
// operation sum to 100 when it completes. It may be called concurrently.
type ProgressFunc = parallel.ProgressFunc

// ErrCanceled is wrapped by every error caused by context cancellation.
var ErrCanceled = parallel.ErrCanceled

// NewScheduler starts a scheduler with the given number of workers; 0 or
// negative means GOMAXPROCS.
func NewScheduler(workers int) *Scheduler {
	return parallel.NewScheduler(workers)
}

// WithWorkers sets the number of bands. The default is the number of CPUs.
// Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.band = append(o.band, parallel.WithWorkers(n))
	}
}

// WithProgress installs a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) {
		o.band = append(o.band, parallel.WithProgress(fn))
	}
}

// WithScheduler runs rotation, scaling and canvas scaling on s instead of
// starting goroutines per call. Its band count takes precedence over
// WithWorkers.
func WithScheduler(s *Scheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// runner returns the scheduler when one is set, otherwise parallel.Run.
func (o *options) runner() parallel.Runner {
	if o.scheduler != nil {
		return o.scheduler
	}
	return parallel.RunFunc(parallel.Run)
}

// transformOptions translates o for the transform package.
func (o *options) transformOptions() []transform.Option {
	out := []transform.Option{transform.WithBandOptions(o.band...)}
	if o.scheduler != nil {
		out = append(out, transform.WithRunner(o.scheduler))
	}
	return out
}
