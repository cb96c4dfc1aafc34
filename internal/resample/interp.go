package resample

import (
	stdimage "image"

	"golang.org/x/image/draw"
)

// Interpolator returns an x/image/draw interpolator using the same filter
// as m, for scaling standard library images. Edge handling follows
// x/image/draw, which renormalises weights instead of repeating edges.
func (m Method) Interpolator() draw.Interpolator {
	switch m {
	case NearestNeighbor:
		return draw.NearestNeighbor
	case Bilinear:
		return draw.BiLinear
	}
	b, c, _ := m.Cubic()
	return &draw.Kernel{
		Support: 2,
		At: func(t float64) float64 {
			return cubicWeight(b, c, t)
		},
	}
}

// ScaleImage scales src into a new NRGBA image of the given size.
func ScaleImage(src stdimage.Image, width, height int, m Method) *stdimage.NRGBA {
	dst := stdimage.NewNRGBA(stdimage.Rect(0, 0, width, height))
	m.Interpolator().Scale(dst, dst.Rect, src, src.Bounds(), draw.Src, nil)
	return dst
}
