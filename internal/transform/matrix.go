package transform

import "math"

// Matrix is a 2D affine transform in pixel coordinates (y down):
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	a, b, c float64
	d, e, f float64
}

// Identity returns the transform that leaves points unchanged.
func Identity() Matrix {
	return Matrix{a: 1, e: 1}
}

// Translation returns a shift by (tx, ty).
func Translation(tx, ty float64) Matrix {
	return Matrix{a: 1, c: tx, e: 1, f: ty}
}

// Rotation returns a rotation by deg degrees about the origin. Because y
// grows downwards, positive angles turn clockwise on screen.
func Rotation(deg float64) Matrix {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Matrix{
		a: cos, b: -sin,
		d: sin, e: cos,
	}
}

// RotationAbout returns a rotation by deg degrees about (cx, cy).
func RotationAbout(deg, cx, cy float64) Matrix {
	return Translation(cx, cy).Mul(Rotation(deg)).Mul(Translation(-cx, -cy))
}

// Mul returns m*o, the transform that applies o first and then m.
func (m Matrix) Mul(o Matrix) Matrix {
	return Matrix{
		a: m.a*o.a + m.b*o.d,
		b: m.a*o.b + m.b*o.e,
		c: m.a*o.c + m.b*o.f + m.c,
		d: m.d*o.a + m.e*o.d,
		e: m.d*o.b + m.e*o.e,
		f: m.d*o.c + m.e*o.f + m.f,
	}
}

// Invert returns the inverse transform, or false when m is singular.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.a*m.e - m.b*m.d
	if math.Abs(det) < 1e-10 {
		return Matrix{}, false
	}
	inv := 1 / det
	return Matrix{
		a: m.e * inv,
		b: -m.b * inv,
		c: (m.b*m.f - m.c*m.e) * inv,
		d: -m.d * inv,
		e: m.a * inv,
		f: (m.c*m.d - m.a*m.f) * inv,
	}, true
}

// Apply transforms the point (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.a*x + m.b*y + m.c, m.d*x + m.e*y + m.f
}
