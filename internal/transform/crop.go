package transform

import (
	"context"
	"fmt"
	stdimage "image"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/image"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/logging"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/resample"
)

// Edges is a rectangle given by inclusive pixel edges, so Left==Right
// describes a one-pixel-wide column.
type Edges struct {
	Left, Top, Right, Bottom int
}

// EdgesOf converts a half-open rectangle to inclusive edges.
func EdgesOf(r stdimage.Rectangle) Edges {
	return Edges{Left: r.Min.X, Top: r.Min.Y, Right: r.Max.X - 1, Bottom: r.Max.Y - 1}
}

// Rect returns the equivalent half-open rectangle.
func (e Edges) Rect() stdimage.Rectangle {
	return stdimage.Rect(e.Left, e.Top, e.Right+1, e.Bottom+1)
}

// Width returns Right-Left+1.
func (e Edges) Width() int { return e.Right - e.Left + 1 }

// Height returns Bottom-Top+1.
func (e Edges) Height() int { return e.Bottom - e.Top + 1 }

// Empty reports whether the edges enclose no pixel.
func (e Edges) Empty() bool { return e.Right < e.Left || e.Bottom < e.Top }

// Crop returns the pixels of b inside e as a new Width()×Height() bitmap.
// Parts of e outside b are filled with pixel.TransparentWhite.
func Crop(b *image.Bitmap, e Edges) (*image.Bitmap, error) {
	if e.Empty() {
		return nil, fmt.Errorf("transform: crop %+v: %w", e, image.ErrInvalidDimensions)
	}
	dst, err := image.New(e.Width(), e.Height())
	if err != nil {
		return nil, fmt.Errorf("transform: crop: %w", err)
	}
	dst.Fill(pixel.TransparentWhite)

	src := e.Rect().Intersect(b.Rect())
	for y := src.Min.Y; y < src.Max.Y; y++ {
		row := b.Row(y)[src.Min.X*pixel.Size : src.Max.X*pixel.Size]
		out := dst.Row(y - e.Top)[(src.Min.X-e.Left)*pixel.Size:]
		copy(out, row)
	}
	return dst, nil
}

// ScaleCanvas resamples b to fill e and places it on a new canvas that
// spans (0,0) to (Right, Bottom) inclusive. Canvas pixels outside e are
// pixel.Background; parts of e left of or above the origin are clipped.
func ScaleCanvas(ctx context.Context, b *image.Bitmap, e Edges, m resample.Method, opts ...Option) (*image.Bitmap, error) {
	if e.Empty() || e.Right < 0 || e.Bottom < 0 {
		return nil, fmt.Errorf("transform: scale canvas %+v: %w", e, image.ErrInvalidDimensions)
	}
	o := newOptions(opts)
	logging.Logger().Debug("transform: scale canvas",
		"edges", e,
		"method", m)

	scaled, err := resample.ScaleWith(ctx, o.runner, b, e.Width(), e.Height(), m, o.band...)
	if err != nil {
		return nil, fmt.Errorf("transform: scale canvas: %w", err)
	}
	canvas, err := image.New(e.Right+1, e.Bottom+1)
	if err != nil {
		return nil, fmt.Errorf("transform: scale canvas: %w", err)
	}
	canvas.Fill(pixel.Background)

	place := e.Rect().Intersect(canvas.Rect())
	for y := place.Min.Y; y < place.Max.Y; y++ {
		row := scaled.Row(y - e.Top)[(place.Min.X-e.Left)*pixel.Size:]
		copy(canvas.Row(y)[place.Min.X*pixel.Size:place.Max.X*pixel.Size], row)
	}
	return canvas, nil
}
