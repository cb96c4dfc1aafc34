package filter

import (
	"context"
	stdimage "image"
	"sync"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/image"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/logging"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/mask"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/parallel"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"
)

// Blur applies a separable Gaussian blur. The horizontal and vertical
// passes run independently, so the cost is O(w*h*(rx+ry)) instead of
// O(w*h*rx*ry). Samples beyond the bitmap repeat the edge pixel.
type Blur struct {
	// RadiusX is the horizontal blur radius (Gaussian sigma) in pixels.
	RadiusX float64

	// RadiusY is the vertical blur radius in pixels.
	RadiusY float64
}

// NewBlur returns a blur with the same radius on both axes.
func NewBlur(radius float64) *Blur {
	return &Blur{RadiusX: radius, RadiusY: radius}
}

// Apply blurs the selected pixels of b. Unselected pixels still feed the
// kernel but are never written.
func (f *Blur) Apply(ctx context.Context, b *image.Bitmap, sel mask.Selection, opts ...parallel.Option) error {
	if f.RadiusX <= 0 && f.RadiusY <= 0 {
		return nil
	}
	region := mask.Clip(sel, b.Rect())
	if region.Empty() {
		return nil
	}

	kx := CachedGaussianKernel(f.RadiusX)
	ky := CachedGaussianKernel(f.RadiusY)
	hy := len(ky) / 2

	// The vertical pass reads hy rows above and below the region.
	span := stdimage.Rect(region.Min.X, region.Min.Y-hy, region.Max.X, region.Max.Y+hy).Intersect(b.Rect())
	width := span.Dx()
	temp := getTempBuffer(width, span.Dy())
	defer putTempBuffer(temp)

	logging.Logger().Debug("filter: blur",
		"rx", f.RadiusX, "ry", f.RadiusY,
		"region", region, "taps", len(kx)+len(ky))

	// Progress is reported by the second pass only.
	quiet := append(opts[:len(opts):len(opts)], parallel.WithProgress(nil))
	err := parallel.Run(ctx, span, func(band *parallel.Band) error {
		return band.Rows(func(y int) {
			blurRow(temp[(y-span.Min.Y)*width*4:], b, y, span.Min.X, span.Max.X, kx)
		})
	}, quiet...)
	if err != nil {
		return wrapErr("blur", err)
	}

	active := mask.Active(sel)
	err = parallel.Run(ctx, region, func(band *parallel.Band) error {
		return band.Rows(func(y int) {
			row := b.Row(y)
			for x := region.Min.X; x < region.Max.X; x++ {
				if active && !sel.Contains(x, y) {
					continue
				}
				var acc [4]float32
				for k, w := range ky {
					sy := clampInt(y+k-hy, span.Min.Y, span.Max.Y-1)
					idx := ((sy-span.Min.Y)*width + x - span.Min.X) * 4
					acc[0] += temp[idx] * w
					acc[1] += temp[idx+1] * w
					acc[2] += temp[idx+2] * w
					acc[3] += temp[idx+3] * w
				}
				off := x * pixel.Size
				row[off] = clampUint8(acc[0])
				row[off+1] = clampUint8(acc[1])
				row[off+2] = clampUint8(acc[2])
				row[off+3] = clampUint8(acc[3])
			}
		})
	}, opts...)
	if err != nil {
		return wrapErr("blur", err)
	}
	return nil
}

// blurRow convolves columns [x0, x1) of row y with kernel into out,
// four floats per pixel in memory channel order.
func blurRow(out []float32, b *image.Bitmap, y, x0, x1 int, kernel []float32) {
	row := b.Row(y)
	half := len(kernel) / 2
	last := b.Width() - 1
	for x := x0; x < x1; x++ {
		var acc [4]float32
		for k, w := range kernel {
			off := clampInt(x+k-half, 0, last) * pixel.Size
			acc[0] += float32(row[off]) * w
			acc[1] += float32(row[off+1]) * w
			acc[2] += float32(row[off+2]) * w
			acc[3] += float32(row[off+3]) * w
		}
		i := (x - x0) * 4
		copy(out[i:i+4], acc[:])
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

var tempBufferPool = sync.Pool{
	New: func() any {
		return &floatBuffer{data: make([]float32, 256*256*4)}
	},
}

// getTempBuffer returns a buffer of exactly width*height*4 floats. Every
// element is overwritten by the horizontal pass, so it is not cleared.
func getTempBuffer(width, height int) []float32 {
	size := width * height * 4
	wrapper := tempBufferPool.Get().(*floatBuffer)
	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}
	return wrapper.data[:size]
}

// putTempBuffer returns buf to the pool unless it is very large.
func putTempBuffer(buf []float32) {
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}
