// Package pixel packs and blends 32-bit BGRA pixels.
//
// A Pixel is a value type: byte 0 is blue, byte 1 green, byte 2 red and
// byte 3 alpha. Channel access is done with shifts and masks, never with
// memory aliasing, so the layout is identical on every host.
package pixel

import "encoding/binary"

// Size is the number of bytes occupied by one pixel in a bitmap buffer.
const Size = 4

// Pixel is a packed 32-bit BGRA color.
type Pixel uint32

// Well-known pixel values.
const (
	// Transparent is fully transparent black.
	Transparent Pixel = 0

	// TransparentWhite has R=G=B=0xFF and A=0. Crop and canvas growth use it
	// for pixels that have no source.
	TransparentWhite Pixel = 0x00FFFFFF

	// Background is the value substituted for samples outside a bitmap.
	Background = TransparentWhite

	// Black and White are opaque.
	Black Pixel = 0xFF000000
	White Pixel = 0xFFFFFFFF
)

// Pack builds a pixel from its channels.
func Pack(r, g, b, a uint8) Pixel {
	return Pixel(b) | Pixel(g)<<8 | Pixel(r)<<16 | Pixel(a)<<24
}

// RGBA returns the four channels of p.
func (p Pixel) RGBA() (r, g, b, a uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p), uint8(p >> 24)
}

// R returns the red channel.
func (p Pixel) R() uint8 { return uint8(p >> 16) }

// G returns the green channel.
func (p Pixel) G() uint8 { return uint8(p >> 8) }

// B returns the blue channel.
func (p Pixel) B() uint8 { return uint8(p) }

// A returns the alpha channel.
func (p Pixel) A() uint8 { return uint8(p >> 24) }

// WithAlpha returns p with its alpha channel replaced.
func (p Pixel) WithAlpha(a uint8) Pixel {
	return p&0x00FFFFFF | Pixel(a)<<24
}

// Load reads the pixel stored at the start of b (B, G, R, A byte order).
func Load(b []byte) Pixel {
	return Pixel(binary.LittleEndian.Uint32(b))
}

// Store writes p to the start of b in B, G, R, A byte order.
func Store(b []byte, p Pixel) {
	binary.LittleEndian.PutUint32(b, uint32(p))
}

// Mix interpolates p1 and p2 per channel as p1*t + p2*(1-t).
//
// Results are truncated, not rounded, so repeated mixing drifts slightly
// towards zero. t outside [0,1] is clamped.
func Mix(p1, p2 Pixel, t float64) Pixel {
	if t <= 0 {
		return p2
	}
	if t >= 1 {
		return p1
	}
	u := 1 - t
	r1, g1, b1, a1 := p1.RGBA()
	r2, g2, b2, a2 := p2.RGBA()
	return Pack(
		ClampByte(float64(r1)*t+float64(r2)*u),
		ClampByte(float64(g1)*t+float64(g2)*u),
		ClampByte(float64(b1)*t+float64(b2)*u),
		ClampByte(float64(a1)*t+float64(a2)*u),
	)
}

// ClampByte truncates v to a byte, clamping to [0,255]. Add 0.5 first to
// round.
func ClampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// FixedOne is the fixed-point weight representing 1.0 in MixFixed.
const FixedOne = 1 << 15

// MixFixed is Mix with a 15-bit fixed-point weight c/32768. Weights above
// FixedOne are treated as FixedOne. It uses integer arithmetic only.
func MixFixed(p1, p2 Pixel, c uint16) Pixel {
	if c > FixedOne {
		c = FixedOne
	}
	w1 := uint32(c)
	w2 := FixedOne - w1
	var out Pixel
	for shift := 0; shift < 32; shift += 8 {
		v1 := uint32(p1>>shift) & 0xff
		v2 := uint32(p2>>shift) & 0xff
		out |= Pixel((v1*w1+v2*w2)>>15) << shift
	}
	return out
}

// Bilinear interpolates four corner pixels. p00 is the top-left sample,
// p10 top-right, p01 bottom-left and p11 bottom-right; u and v are the
// horizontal and vertical fractions in [0,1].
func Bilinear(p00, p10, p01, p11 Pixel, u, v float64) Pixel {
	w00 := (1 - u) * (1 - v)
	w10 := u * (1 - v)
	w01 := (1 - u) * v
	w11 := u * v
	var out Pixel
	for shift := 0; shift < 32; shift += 8 {
		c := float64(uint8(p00>>shift))*w00 +
			float64(uint8(p10>>shift))*w10 +
			float64(uint8(p01>>shift))*w01 +
			float64(uint8(p11>>shift))*w11
		out |= Pixel(ClampByte(c+0.5)) << shift
	}
	return out
}

// WithinTolerance reports whether every channel of p1 differs from the
// corresponding channel of p2 by at most tol.
func WithinTolerance(p1, p2 Pixel, tol uint8) bool {
	if p1 == p2 {
		return true
	}
	for shift := 0; shift < 32; shift += 8 {
		d := int(uint8(p1>>shift)) - int(uint8(p2>>shift))
		if d < 0 {
			d = -d
		}
		if d > int(tol) {
			return false
		}
	}
	return true
}

// Over composites src over dst using straight (non-premultiplied) alpha.
func Over(dst, src Pixel) Pixel {
	sa := uint32(src.A())
	if sa == 255 {
		return src
	}
	if sa == 0 {
		return dst
	}
	da := mulDiv255(uint32(dst.A()), 255-sa)
	oa := sa + da
	if oa == 0 {
		return Transparent
	}
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*sa + uint32(d)*da + oa/2) / oa)
	}
	return Pack(mix(src.R(), dst.R()), mix(src.G(), dst.G()), mix(src.B(), dst.B()), uint8(oa))
}

// mulDiv255 computes a*b/255 exactly for a, b in [0,255] using
// Alvy Ray Smith's shift formula.
func mulDiv255(a, b uint32) uint32 {
	t := a*b + 1
	return (t + (t >> 8)) >> 8
}
