package parallel

import (
	"context"
	"errors"
	"image"
	"sync"
)

// ErrClosed is returned by Scheduler.Run after Close.
var ErrClosed = errors.New("parallel: scheduler closed")

// Scheduler runs band kernels on a long-lived WorkerPool. It suits callers
// that repeat the same operation many times, such as an interactive rotation
// preview, where starting goroutines per call would dominate.
//
// Run has the same band, progress and cancellation semantics as the
// package-level Run.
type Scheduler struct {
	pool *WorkerPool
}

// NewScheduler starts a scheduler with the given number of workers; 0 or
// negative means GOMAXPROCS.
func NewScheduler(workers int) *Scheduler {
	return &Scheduler{pool: NewWorkerPool(workers)}
}

// Workers returns the number of bands each Run uses.
func (s *Scheduler) Workers() int {
	return s.pool.Workers()
}

// Run splits region into Workers() bands and runs kernel on the pool.
// Only WithProgress is honoured from opts; the band count is fixed by the
// pool.
func (s *Scheduler) Run(ctx context.Context, region image.Rectangle, kernel Kernel, opts ...Option) error {
	if !s.pool.IsRunning() {
		return ErrClosed
	}
	if region.Empty() {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return canceled(err)
	}
	o := newOptions(opts)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
	)
	n := s.pool.Workers()
	jobs := make([]func(), 0, n)
	for i := range n {
		r := BandBounds(region, i, n)
		if r.Empty() {
			continue
		}
		band := &Band{
			Index:    i,
			Count:    n,
			Rect:     r,
			ctx:      runCtx,
			progress: o.progress,
			total:    region.Dy(),
		}
		jobs = append(jobs, func() {
			if runCtx.Err() != nil {
				return
			}
			if err := kernel(band); err != nil {
				once.Do(func() {
					firstErr = err
					cancel()
				})
				return
			}
			band.finish()
		})
	}
	if !s.pool.ExecuteAll(jobs) {
		return ErrClosed
	}

	if firstErr != nil {
		if cerr := ctx.Err(); cerr != nil && !errors.Is(firstErr, ErrCanceled) {
			return canceled(cerr)
		}
		return firstErr
	}
	if err := ctx.Err(); err != nil {
		// Some bands may have been skipped before they started.
		return canceled(err)
	}
	return nil
}

// Close stops the worker pool. Close is safe to call multiple times.
func (s *Scheduler) Close() {
	s.pool.Close()
}

// Runner executes band kernels over a region. *Scheduler implements it,
// and RunFunc(Run) adapts the package-level function.
type Runner interface {
	Run(ctx context.Context, region image.Rectangle, kernel Kernel, opts ...Option) error
}

// RunFunc adapts a function to Runner.
type RunFunc func(ctx context.Context, region image.Rectangle, kernel Kernel, opts ...Option) error

// Run implements Runner.
func (f RunFunc) Run(ctx context.Context, region image.Rectangle, kernel Kernel, opts ...Option) error {
	return f(ctx, region, kernel, opts...)
}
