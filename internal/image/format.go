package image

import "github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"

// Format represents a pixel storage format. The pixel core supports a
// single format; the tag exists so raw buffers handed in by callers can be
// checked at the boundary.
type Format uint8

const (
	// FormatBGRA32 is 32-bit straight-alpha BGRA: byte 0 blue, byte 1 green,
	// byte 2 red, byte 3 alpha.
	FormatBGRA32 Format = iota
)

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	if f != FormatBGRA32 {
		return 0
	}
	return pixel.Size
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// String returns a string representation of the format.
func (f Format) String() string {
	if f == FormatBGRA32 {
		return "BGRA32"
	}
	return "Unknown"
}
