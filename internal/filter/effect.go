package filter

import (
	"context"
	"fmt"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/image"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/mask"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/parallel"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"
)

// Effect modifies a bitmap in place. Pixels outside an active selection
// are left alone. On cancellation the bitmap is partially processed.
type Effect interface {
	Apply(ctx context.Context, b *image.Bitmap, sel mask.Selection, opts ...parallel.Option) error
}

// pixelFunc maps one pixel at (x, y) to its new value.
type pixelFunc func(x, y int, p pixel.Pixel) pixel.Pixel

// perPixel runs fn over every selected pixel of b, band-parallel.
func perPixel(ctx context.Context, name string, b *image.Bitmap, sel mask.Selection, fn pixelFunc, opts []parallel.Option) error {
	region := mask.Clip(sel, b.Rect())
	active := mask.Active(sel)
	err := parallel.Run(ctx, region, func(band *parallel.Band) error {
		return band.Rows(func(y int) {
			row := b.Row(y)
			for x := region.Min.X; x < region.Max.X; x++ {
				if active && !sel.Contains(x, y) {
					continue
				}
				off := x * pixel.Size
				pixel.Store(row[off:], fn(x, y, pixel.Load(row[off:])))
			}
		})
	}, opts...)
	if err != nil {
		return wrapErr(name, err)
	}
	return nil
}

func wrapErr(name string, err error) error {
	return fmt.Errorf("filter: %s: %w", name, err)
}

// clampUint8 rounds v to the nearest byte, clamping to [0, 255].
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// clampInt clamps v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
