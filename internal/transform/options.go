package transform

import "github.com/HaikuArchives/ArtPaint-sub001/internal/parallel"

// Option configures the band-parallel operations of this package.
type Option func(*options)

type options struct {
	runner parallel.Runner
	band   []parallel.Option
}

// WithRunner runs bands on r instead of spawning goroutines per call.
// Interactive previews pass a long-lived *parallel.Scheduler here.
func WithRunner(r parallel.Runner) Option {
	return func(o *options) {
		if r != nil {
			o.runner = r
		}
	}
}

// WithBandOptions forwards worker count and progress options to the runner.
func WithBandOptions(opts ...parallel.Option) Option {
	return func(o *options) {
		o.band = append(o.band, opts...)
	}
}

func newOptions(opts []Option) options {
	o := options{runner: parallel.RunFunc(parallel.Run)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
