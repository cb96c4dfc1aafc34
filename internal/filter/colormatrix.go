package filter

import (
	"context"
	"math"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/image"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/mask"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/parallel"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"
)

// ColorMatrix applies a 4x5 colour transformation to each pixel:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// Channels are straight-alpha values in [0, 255]; the fifth column is a
// bias. Results are rounded and clamped.
type ColorMatrix struct {
	// Matrix is row-major: [0-4] is R, [5-9] G, [10-14] B, [15-19] A.
	Matrix [20]float32
}

// Rec. 709 luminance weights.
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)

// IdentityMatrix leaves every pixel unchanged.
func IdentityMatrix() *ColorMatrix {
	return &ColorMatrix{Matrix: [20]float32{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}}
}

// Brightness scales the colour channels: 0 is black, 1 unchanged.
func Brightness(factor float32) *ColorMatrix {
	return &ColorMatrix{Matrix: [20]float32{
		factor, 0, 0, 0, 0,
		0, factor, 0, 0, 0,
		0, 0, factor, 0, 0,
		0, 0, 0, 1, 0,
	}}
}

// Contrast scales the colour channels about mid-grey: 0 is flat grey,
// 1 unchanged.
func Contrast(factor float32) *ColorMatrix {
	offset := 128 * (1 - factor)
	return &ColorMatrix{Matrix: [20]float32{
		factor, 0, 0, 0, offset,
		0, factor, 0, 0, offset,
		0, 0, factor, 0, offset,
		0, 0, 0, 1, 0,
	}}
}

// Saturation blends between luminance (0) and the original colour (1).
func Saturation(factor float32) *ColorMatrix {
	inv := 1 - factor
	return &ColorMatrix{Matrix: [20]float32{
		lumR*inv + factor, lumG * inv, lumB * inv, 0, 0,
		lumR * inv, lumG*inv + factor, lumB * inv, 0, 0,
		lumR * inv, lumG * inv, lumB*inv + factor, 0, 0,
		0, 0, 0, 1, 0,
	}}
}

// Grayscale replaces each colour with its Rec. 709 luminance.
func Grayscale() *ColorMatrix {
	return Saturation(0)
}

// Sepia applies a sepia tone.
func Sepia() *ColorMatrix {
	return &ColorMatrix{Matrix: [20]float32{
		0.393, 0.769, 0.189, 0, 0,
		0.349, 0.686, 0.168, 0, 0,
		0.272, 0.534, 0.131, 0, 0,
		0, 0, 0, 1, 0,
	}}
}

// Invert inverts the colour channels and keeps alpha.
func Invert() *ColorMatrix {
	return &ColorMatrix{Matrix: [20]float32{
		-1, 0, 0, 0, 255,
		0, -1, 0, 0, 255,
		0, 0, -1, 0, 255,
		0, 0, 0, 1, 0,
	}}
}

// HueRotate rotates hue by degrees about the luminance axis.
func HueRotate(degrees float32) *ColorMatrix {
	rad := float64(degrees) * math.Pi / 180
	cos := float32(math.Cos(rad))
	sin := float32(math.Sin(rad))
	const (
		r = 0.213
		g = 0.715
		b = 0.072
	)
	return &ColorMatrix{Matrix: [20]float32{
		r + cos*(1-r) + sin*(-r), g + cos*(-g) + sin*(-g), b + cos*(-b) + sin*(1-b), 0, 0,
		r + cos*(-r) + sin*0.143, g + cos*(1-g) + sin*0.140, b + cos*(-b) + sin*(-0.283), 0, 0,
		r + cos*(-r) + sin*(-(1 - r)), g + cos*(-g) + sin*g, b + cos*(1-b) + sin*b, 0, 0,
		0, 0, 0, 1, 0,
	}}
}

// Opacity multiplies alpha by factor.
func Opacity(factor float32) *ColorMatrix {
	return &ColorMatrix{Matrix: [20]float32{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, factor, 0,
	}}
}

// Tint blends every colour toward tint by the tint's alpha.
func Tint(tint pixel.Pixel) *ColorMatrix {
	f := float32(tint.A()) / 255
	inv := 1 - f
	return &ColorMatrix{Matrix: [20]float32{
		inv, 0, 0, 0, float32(tint.R()) * f,
		0, inv, 0, 0, float32(tint.G()) * f,
		0, 0, inv, 0, float32(tint.B()) * f,
		0, 0, 0, 1, 0,
	}}
}

// Then returns the matrix that applies f first and next afterwards.
func (f *ColorMatrix) Then(next *ColorMatrix) *ColorMatrix {
	a := &next.Matrix
	b := &f.Matrix
	out := &ColorMatrix{}
	r := &out.Matrix
	for row := range 4 {
		for col := range 4 {
			var sum float32
			for k := range 4 {
				sum += a[row*5+k] * b[k*5+col]
			}
			r[row*5+col] = sum
		}
		r[row*5+4] = a[row*5]*b[4] + a[row*5+1]*b[9] +
			a[row*5+2]*b[14] + a[row*5+3]*b[19] + a[row*5+4]
	}
	return out
}

// Transform applies the matrix to one pixel.
func (f *ColorMatrix) Transform(p pixel.Pixel) pixel.Pixel {
	m := &f.Matrix
	r, g, b, a := float32(p.R()), float32(p.G()), float32(p.B()), float32(p.A())
	return pixel.Pack(
		clampUint8(m[0]*r+m[1]*g+m[2]*b+m[3]*a+m[4]),
		clampUint8(m[5]*r+m[6]*g+m[7]*b+m[8]*a+m[9]),
		clampUint8(m[10]*r+m[11]*g+m[12]*b+m[13]*a+m[14]),
		clampUint8(m[15]*r+m[16]*g+m[17]*b+m[18]*a+m[19]),
	)
}

// Apply transforms every selected pixel of b.
func (f *ColorMatrix) Apply(ctx context.Context, b *image.Bitmap, sel mask.Selection, opts ...parallel.Option) error {
	return perPixel(ctx, "color matrix", b, sel, func(_, _ int, p pixel.Pixel) pixel.Pixel {
		return f.Transform(p)
	}, opts)
}
