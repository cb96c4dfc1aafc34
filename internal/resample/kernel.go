// Package resample scales pixel lines and bitmaps.
//
// Every method is a separable filter applied one axis at a time. The cubic
// methods are members of the Mitchell–Netravali (B, C) family evaluated with
// a fixed 4-tap window; taps that fall outside the source repeat the nearest
// edge sample.
package resample

import (
	"fmt"
	"math"
	"strings"
)

// Method selects the resampling filter.
type Method uint8

const (
	// NearestNeighbor copies the closest source sample.
	NearestNeighbor Method = iota

	// Bilinear interpolates between the two nearest samples.
	Bilinear

	// Bicubic is the cubic filter with B=0, C=0.75.
	Bicubic

	// CatmullRom is the interpolating cubic with B=0, C=0.5.
	CatmullRom

	// BSpline is the smoothing cubic with B=1, C=0.
	BSpline

	// Mitchell is the cubic with B=1/3, C=1/3.
	Mitchell
)

var methodNames = [...]string{
	NearestNeighbor: "nearest",
	Bilinear:        "bilinear",
	Bicubic:         "bicubic",
	CatmullRom:      "catmull-rom",
	BSpline:         "b-spline",
	Mitchell:        "mitchell",
}

// String returns the method name accepted by ParseMethod.
func (m Method) String() string {
	if int(m) < len(methodNames) {
		return methodNames[m]
	}
	return fmt.Sprintf("Method(%d)", m)
}

// ParseMethod resolves a method name. Matching ignores case, and "_" is
// accepted in place of "-".
func ParseMethod(s string) (Method, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, n := range methodNames {
		if n == name {
			return Method(i), nil
		}
	}
	switch name {
	case "nearest-neighbor", "nn":
		return NearestNeighbor, nil
	case "catmullrom":
		return CatmullRom, nil
	case "bspline":
		return BSpline, nil
	}
	return 0, fmt.Errorf("resample: unknown method %q", s)
}

// Cubic returns the Mitchell–Netravali parameters of a cubic method.
// ok is false for NearestNeighbor and Bilinear.
func (m Method) Cubic() (b, c float64, ok bool) {
	switch m {
	case Bicubic:
		return 0, 0.75, true
	case CatmullRom:
		return 0, 0.5, true
	case BSpline:
		return 1, 0, true
	case Mitchell:
		return 1.0 / 3, 1.0 / 3, true
	}
	return 0, 0, false
}

// Taps returns the window width used by the method.
func (m Method) Taps() int {
	switch m {
	case NearestNeighbor:
		return 1
	case Bilinear:
		return 2
	}
	return 4
}

// cubicWeight evaluates the Mitchell–Netravali kernel at distance x.
func cubicWeight(b, c, x float64) float64 {
	x = math.Abs(x)
	switch {
	case x < 1:
		return ((12-9*b-6*c)*x*x*x +
			(-18+12*b+6*c)*x*x +
			(6 - 2*b)) / 6
	case x < 2:
		return ((-b-6*c)*x*x*x +
			(6*b+30*c)*x*x +
			(-12*b-48*c)*x +
			(8*b + 24*c)) / 6
	}
	return 0
}
