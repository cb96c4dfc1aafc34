// Package parallel runs per-row pixel kernels across horizontal bands.
//
// A region is split into one band per worker. Each worker derives its own
// band from its index, so there is no shared band list. Bands cover
// disjoint row ranges, which lets kernels write a shared bitmap without
// locking as long as they stay inside their band.
package parallel

import (
	"context"
	"errors"
	"fmt"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/logging"
)

// ErrCanceled is returned when the context is canceled before every band
// finishes. The target bitmap is then in an undefined, partially written
// state.
var ErrCanceled = errors.New("parallel: operation canceled")

// RowCadence is the number of rows between cancellation polls and progress
// reports.
const RowCadence = 10

// ProgressFunc receives progress as a percentage delta of the whole region.
// It is called from worker goroutines, concurrently and in no particular
// order; Accumulator is a safe consumer.
type ProgressFunc func(percentDelta float64)

// Kernel processes one band. It must only write rows inside band.Rect.
type Kernel func(band *Band) error

// BandBounds returns band index of count bands covering region. The first
// row is minY + h*index/count and the end row is minY + h*(index+1)/count,
// so consecutive bands share their boundary and together cover region.
// Bands may be empty when count exceeds the region height.
func BandBounds(region image.Rectangle, index, count int) image.Rectangle {
	if count < 1 || index < 0 || index >= count || region.Empty() {
		return image.Rectangle{}
	}
	h := region.Dy()
	start := region.Min.Y + h*index/count
	end := region.Min.Y + h*(index+1)/count
	return image.Rect(region.Min.X, start, region.Max.X, end)
}

// Band is the unit of work handed to a Kernel.
type Band struct {
	// Index is the band position, 0 for the top band.
	Index int
	// Count is the total number of bands in the run.
	Count int
	// Rect is the part of the region this band owns.
	Rect image.Rectangle

	ctx      context.Context
	progress ProgressFunc
	total    int
	rows     int
	reported int
}

// Context returns the run context.
func (b *Band) Context() context.Context {
	return b.ctx
}

// RowDone marks one row finished. Every RowCadence rows it reports
// progress and polls for cancellation.
func (b *Band) RowDone() error {
	b.rows++
	if b.rows%RowCadence != 0 {
		return nil
	}
	b.report()
	if err := b.ctx.Err(); err != nil {
		return canceled(err)
	}
	return nil
}

// Rows calls fn for every row of the band, top to bottom, calling RowDone
// after each one.
func (b *Band) Rows(fn func(y int)) error {
	for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y++ {
		fn(y)
		if err := b.RowDone(); err != nil {
			return err
		}
	}
	return nil
}

func (b *Band) report() {
	if b.progress == nil || b.total <= 0 || b.rows == b.reported {
		return
	}
	delta := 100 * float64(b.rows-b.reported) / float64(b.total)
	b.reported = b.rows
	b.progress(delta)
}

// finish flushes progress for rows not yet reported.
func (b *Band) finish() {
	b.report()
}

func canceled(err error) error {
	return fmt.Errorf("%w: %w", ErrCanceled, err)
}

// Option configures a band run.
type Option func(*options)

type options struct {
	workers  int
	progress ProgressFunc
}

// WithWorkers overrides the number of bands. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithProgress installs a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) {
		o.progress = fn
	}
}

func newOptions(opts []Option) options {
	o := options{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Workers returns the band count a run with opts would use.
func Workers(opts ...Option) int {
	return newOptions(opts).workers
}

// Run splits region into bands, runs kernel on each in its own goroutine
// and waits for all of them. The first kernel error cancels the remaining
// bands and is returned. When ctx is canceled Run returns an error
// wrapping both ErrCanceled and ctx.Err().
func Run(ctx context.Context, region image.Rectangle, kernel Kernel, opts ...Option) error {
	if region.Empty() {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return canceled(err)
	}
	o := newOptions(opts)
	logging.Logger().Debug("parallel: run",
		"region", region,
		"bands", o.workers)

	g, gctx := errgroup.WithContext(ctx)
	for i := range o.workers {
		r := BandBounds(region, i, o.workers)
		if r.Empty() {
			continue
		}
		band := &Band{
			Index:    i,
			Count:    o.workers,
			Rect:     r,
			ctx:      gctx,
			progress: o.progress,
			total:    region.Dy(),
		}
		g.Go(func() error {
			if err := kernel(band); err != nil {
				return err
			}
			band.finish()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// A band that observed the group context may report a plain
		// cancellation caused by the caller's context.
		if cerr := ctx.Err(); cerr != nil && !errors.Is(err, ErrCanceled) {
			return canceled(cerr)
		}
		return err
	}
	return nil
}
