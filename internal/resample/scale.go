package resample

import (
	"context"
	"fmt"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/image"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/logging"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/parallel"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"
)

// Scale resamples src to a new width×height bitmap with two separable
// passes: horizontal into a pooled intermediate, then vertical. Both passes
// run band-parallel. src is never modified.
func Scale(ctx context.Context, src *image.Bitmap, width, height int, m Method, opts ...parallel.Option) (*image.Bitmap, error) {
	return ScaleWith(ctx, parallel.RunFunc(parallel.Run), src, width, height, m, opts...)
}

// ScaleWith is Scale with both passes run on r.
func ScaleWith(ctx context.Context, r parallel.Runner, src *image.Bitmap, width, height int, m Method, opts ...parallel.Option) (*image.Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("resample: scale to %dx%d: %w", width, height, image.ErrInvalidDimensions)
	}
	dst, err := image.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("resample: scale: %w", err)
	}
	if err := ScaleIntoWith(ctx, r, dst, src, m, opts...); err != nil {
		return nil, err
	}
	return dst, nil
}

// ScaleInto resamples all of src into all of dst.
func ScaleInto(ctx context.Context, dst, src *image.Bitmap, m Method, opts ...parallel.Option) error {
	return ScaleIntoWith(ctx, parallel.RunFunc(parallel.Run), dst, src, m, opts...)
}

// ScaleIntoWith is ScaleInto with both passes run on r.
func ScaleIntoWith(ctx context.Context, r parallel.Runner, dst, src *image.Bitmap, m Method, opts ...parallel.Option) error {
	sw, sh := src.Width(), src.Height()
	dw, dh := dst.Width(), dst.Height()
	logging.Logger().Debug("resample: scale",
		"from", fmt.Sprintf("%dx%d", sw, sh),
		"to", fmt.Sprintf("%dx%d", dw, dh),
		"method", m)

	if sw == dw && sh == dh {
		return dst.CopyFrom(src)
	}

	tmp, err := image.GetScratch(dw, sh)
	if err != nil {
		return fmt.Errorf("resample: scale: %w", err)
	}
	defer image.PutScratch(tmp)

	// Progress is reported by the vertical pass only.
	quiet := append(opts[:len(opts):len(opts)], parallel.WithProgress(nil))
	h := planFor(sw, dw, m)
	err = r.Run(ctx, tmp.Rect(), func(b *parallel.Band) error {
		in := make([]pixel.Pixel, sw)
		out := make([]pixel.Pixel, dw)
		return b.Rows(func(y int) {
			in = src.RowPixels(y, in)
			h.apply(out, in)
			tmp.SetRowPixels(y, out)
		})
	}, quiet...)
	if err != nil {
		return fmt.Errorf("resample: horizontal pass: %w", err)
	}

	v := planFor(sh, dh, m)
	err = r.Run(ctx, dst.Rect(), func(b *parallel.Band) error {
		return b.Rows(func(y int) {
			v.applyRow(dst, tmp, y)
		})
	}, opts...)
	if err != nil {
		return fmt.Errorf("resample: vertical pass: %w", err)
	}
	return nil
}

// applyRow writes destination row y from the source rows selected by the
// plan, so the vertical pass walks memory row by row.
func (p *plan) applyRow(dst, src *image.Bitmap, y int) {
	out := dst.Row(y)
	if p.identity {
		copy(out, src.Row(y))
		return
	}
	t := &p.taps[y]
	if t.n == 1 {
		copy(out, src.Row(t.index[0]))
		return
	}
	var rows [4][]byte
	for k := range t.n {
		rows[k] = src.Row(t.index[k])
	}
	for off := 0; off < len(out); off += pixel.Size {
		var acc [4]float64
		for k := range t.n {
			s := pixel.Load(rows[k][off:])
			w := t.weight[k]
			acc[0] += float64(s.B()) * w
			acc[1] += float64(s.G()) * w
			acc[2] += float64(s.R()) * w
			acc[3] += float64(s.A()) * w
		}
		pixel.Store(out[off:], packRounded(acc))
	}
}
