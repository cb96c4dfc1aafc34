// Package image provides the strided BGRA bitmap shared by every pixel
// operation.
//
// A Bitmap owns (or borrows, see FromRaw) a contiguous buffer of
// height rows, each Stride bytes long; row y begins at y*Stride and holds
// Width packed pixel.Pixel values followed by optional padding.
package image

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math/bits"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"
)

// Common errors for bitmap operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the pixel format is not BGRA32.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrSizeMismatch is returned when two bitmaps must share dimensions and do not.
	ErrSizeMismatch = errors.New("image: size mismatch")

	// ErrOutOfMemory is returned when a bitmap buffer cannot be allocated.
	ErrOutOfMemory = errors.New("image: out of memory")
)

// MaxPixels caps the number of pixels in a single allocated bitmap.
// Requests above it fail with ErrOutOfMemory instead of exhausting the heap.
var MaxPixels = 1 << 28

// Bitmap is a strided buffer of BGRA pixels.
//
// Thread safety: concurrent reads are safe. Concurrent writes are safe only
// when they touch disjoint rows, which is how the band scheduler uses it.
type Bitmap struct {
	data   []byte
	width  int
	height int
	stride int
}

// New allocates a zeroed (transparent) bitmap with a tight stride.
func New(width, height int) (*Bitmap, error) {
	return NewWithStride(width, height, FormatBGRA32.RowBytes(width))
}

// NewWithStride allocates a bitmap whose rows are stride bytes apart.
// Stride must be at least 4*width.
func NewWithStride(width, height, stride int) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < FormatBGRA32.RowBytes(width) {
		return nil, ErrInvalidStride
	}
	if width > MaxPixels/height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrOutOfMemory, width, height, MaxPixels)
	}
	size := mulNonNeg(stride, height)
	if size < 0 {
		return nil, fmt.Errorf("%w: %d bytes per row overflows", ErrOutOfMemory, stride)
	}
	data, err := allocate(size)
	if err != nil {
		return nil, err
	}
	return &Bitmap{data: data, width: width, height: height, stride: stride}, nil
}

// FromRaw wraps caller-owned data without copying. The caller must keep the
// data alive and must not resize it while the Bitmap is in use.
func FromRaw(data []byte, width, height, stride int, format Format) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if format != FormatBGRA32 {
		return nil, ErrInvalidFormat
	}
	if stride < format.RowBytes(width) {
		return nil, ErrInvalidStride
	}
	required := mulNonNeg(stride, height-1)
	if required < 0 || len(data)-format.RowBytes(width) < required {
		return nil, ErrDataTooSmall
	}
	// The last row may omit its padding.
	end := min(len(data), stride*height)
	return &Bitmap{data: data[:end], width: width, height: height, stride: stride}, nil
}

// allocate turns a runtime allocation panic into ErrOutOfMemory.
func allocate(n int) (buf []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%w: %v", ErrOutOfMemory, r)
		}
	}()
	return make([]byte, n), nil
}

// mulNonNeg returns x*y, or -1 when an argument is negative or the product
// overflows int.
func mulNonNeg(x, y int) int {
	if x < 0 || y < 0 {
		return -1
	}
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	if hi != 0 || lo > uint64(int(^uint(0)>>1)) {
		return -1
	}
	return int(lo)
}

// Clone returns a deep copy with a tight stride.
func (b *Bitmap) Clone() (*Bitmap, error) {
	c, err := New(b.width, b.height)
	if err != nil {
		return nil, err
	}
	c.copyRows(b)
	return c, nil
}

// CopyFrom overwrites b with the pixels of src. Both must have the same size.
func (b *Bitmap) CopyFrom(src *Bitmap) error {
	if src.width != b.width || src.height != b.height {
		return ErrSizeMismatch
	}
	b.copyRows(src)
	return nil
}

func (b *Bitmap) copyRows(src *Bitmap) {
	if b.stride == src.stride && len(b.data) == len(src.data) {
		copy(b.data, src.data)
		return
	}
	for y := range b.height {
		copy(b.Row(y), src.Row(y))
	}
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int {
	return b.height
}

// Stride returns the number of bytes per row (including padding).
func (b *Bitmap) Stride() int {
	return b.stride
}

// Format returns the pixel format, which is always FormatBGRA32.
func (b *Bitmap) Format() Format {
	return FormatBGRA32
}

// Data returns the raw buffer.
func (b *Bitmap) Data() []byte {
	return b.data
}

// Rect returns the bitmap bounds as an image.Rectangle anchored at (0,0).
func (b *Bitmap) Rect() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Row returns the pixel bytes of row y without padding, or nil if y is
// out of range.
func (b *Bitmap) Row(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.width*pixel.Size]
}

// Offset returns the byte offset of (x, y), or -1 when out of bounds.
func (b *Bitmap) Offset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*pixel.Size
}

// In reports whether (x, y) lies inside the bitmap.
func (b *Bitmap) In(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// PixelAt returns the pixel at (x, y), or pixel.Background when out of bounds.
func (b *Bitmap) PixelAt(x, y int) pixel.Pixel {
	off := b.Offset(x, y)
	if off < 0 {
		return pixel.Background
	}
	return pixel.Load(b.data[off:])
}

// SetPixel stores p at (x, y). Out-of-bounds writes are ignored.
func (b *Bitmap) SetPixel(x, y int, p pixel.Pixel) {
	off := b.Offset(x, y)
	if off < 0 {
		return
	}
	pixel.Store(b.data[off:], p)
}

// RowPixels decodes row y into dst, growing it if needed, and returns it.
func (b *Bitmap) RowPixels(y int, dst []pixel.Pixel) []pixel.Pixel {
	if cap(dst) < b.width {
		dst = make([]pixel.Pixel, b.width)
	}
	dst = dst[:b.width]
	row := b.Row(y)
	for x := range dst {
		dst[x] = pixel.Load(row[x*pixel.Size:])
	}
	return dst
}

// SetRowPixels encodes src into row y. Extra pixels in src are ignored.
func (b *Bitmap) SetRowPixels(y int, src []pixel.Pixel) {
	row := b.Row(y)
	n := min(len(src), b.width)
	for x := range n {
		pixel.Store(row[x*pixel.Size:], src[x])
	}
}

// Fill sets every pixel to p.
func (b *Bitmap) Fill(p pixel.Pixel) {
	b.FillRect(b.Rect(), p)
}

// FillRect sets every pixel of r (clipped to the bitmap) to p.
func (b *Bitmap) FillRect(r image.Rectangle, p pixel.Pixel) {
	r = r.Intersect(b.Rect())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := b.Row(y)
		for x := r.Min.X; x < r.Max.X; x++ {
			pixel.Store(row[x*pixel.Size:], p)
		}
	}
}

// Equal reports whether b and o have the same size and pixels. Row
// padding is ignored.
func (b *Bitmap) Equal(o *Bitmap) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for y := range b.height {
		if string(b.Row(y)) != string(o.Row(y)) {
			return false
		}
	}
	return true
}

// ByteSize returns the total size of the buffer in bytes.
func (b *Bitmap) ByteSize() int {
	return len(b.data)
}

// Bounds implements image.Image.
func (b *Bitmap) Bounds() image.Rectangle {
	return b.Rect()
}

// ColorModel implements image.Image.
func (b *Bitmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// At implements image.Image.
func (b *Bitmap) At(x, y int) color.Color {
	if !b.In(x, y) {
		return color.NRGBA{}
	}
	r, g, bl, a := b.PixelAt(x, y).RGBA()
	return color.NRGBA{R: r, G: g, B: bl, A: a}
}
