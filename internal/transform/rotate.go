package transform

import (
	"context"
	"fmt"
	stdimage "image"
	"math"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/image"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/logging"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/mask"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/parallel"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"
)

// Rotate returns a copy of b rotated by angle degrees about pivot. The
// result has the same size as b; positive angles turn clockwise.
//
// With an active selection only selected pixels inside the selection
// bounds are rewritten, and source samples outside the selection read as
// pixel.Background, so the selected content turns in place. A pivot outside
// the bitmap leaves the copy unchanged.
func Rotate(ctx context.Context, b *image.Bitmap, angle float64, pivot stdimage.Point, sel mask.Selection, opts ...Option) (*image.Bitmap, error) {
	dst, err := b.Clone()
	if err != nil {
		return nil, fmt.Errorf("transform: rotate: %w", err)
	}
	if err := RotateInto(ctx, dst, b, angle, pivot, sel, opts...); err != nil {
		return nil, err
	}
	return dst, nil
}

// RotateInto writes src rotated about pivot into dst, which must have the
// same size and must not share src's buffer. Pixels that the selection
// excludes keep dst's values. Preview code reuses one dst across calls.
func RotateInto(ctx context.Context, dst, src *image.Bitmap, angle float64, pivot stdimage.Point, sel mask.Selection, opts ...Option) error {
	if dst.Width() != src.Width() || dst.Height() != src.Height() {
		return fmt.Errorf("transform: rotate: %w", image.ErrSizeMismatch)
	}
	if !src.In(pivot.X, pivot.Y) {
		logging.Logger().Warn("transform: rotate pivot outside bitmap",
			"pivot", pivot,
			"bounds", src.Rect())
		return nil
	}
	inv, _ := RotationAbout(angle, float64(pivot.X), float64(pivot.Y)).Invert()
	region := mask.Clip(sel, src.Rect())
	active := mask.Active(sel)

	sample := func(x, y int) pixel.Pixel {
		if !src.In(x, y) || (active && !sel.Contains(x, y)) {
			return pixel.Background
		}
		return src.PixelAt(x, y)
	}

	o := newOptions(opts)
	err := o.runner.Run(ctx, region, func(band *parallel.Band) error {
		return band.Rows(func(y int) {
			for x := region.Min.X; x < region.Max.X; x++ {
				if active && !sel.Contains(x, y) {
					continue
				}
				sx, sy := inv.Apply(float64(x), float64(y))
				fx, fy := math.Floor(sx), math.Floor(sy)
				x0, y0 := int(fx), int(fy)
				p := pixel.Bilinear(
					sample(x0, y0), sample(x0+1, y0),
					sample(x0, y0+1), sample(x0+1, y0+1),
					sx-fx, sy-fy,
				)
				dst.SetPixel(x, y, p)
			}
		})
	}, o.band...)
	if err != nil {
		return fmt.Errorf("transform: rotate: %w", err)
	}
	return nil
}
