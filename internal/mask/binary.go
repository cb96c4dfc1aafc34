package mask

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math/bits"

	"github.com/mi-v/img1b"
	img1bpng "github.com/mi-v/img1b/png"
)

// ErrInvalidSize is returned when a binary map cannot be created.
var ErrInvalidSize = errors.New("mask: invalid binary map size")

// binaryPalette maps index 0 to "not included" and 1 to "included".
var binaryPalette = color.Palette{color.Transparent, color.White}

// Binary is a packed 1-bit inclusion map, one bit per bitmap pixel.
//
// It records which pixels a flood fill reached and doubles as a Selection,
// so a fill region can restrict a later operation.
type Binary struct {
	img *img1b.Image
	n   int // included pixels
}

// NewBinary allocates an all-clear map of the given size.
func NewBinary(width, height int) (m *Binary, err error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	defer func() {
		if r := recover(); r != nil {
			m, err = nil, fmt.Errorf("%w: %v", ErrInvalidSize, r)
		}
	}()
	return &Binary{img: img1b.New(image.Rect(0, 0, width, height), binaryPalette)}, nil
}

// DecodeBinary reads a 1-bit PNG written by EncodePNG. Palette index 1 is
// treated as included.
func DecodeBinary(r io.Reader) (*Binary, error) {
	img, err := img1bpng.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("mask: decode binary: %w", err)
	}
	if img.Rect.Min != (image.Point{}) {
		return nil, fmt.Errorf("%w: origin %v", ErrInvalidSize, img.Rect.Min)
	}
	return &Binary{img: img, n: countBits(img.Pix)}, nil
}

// Width returns the map width.
func (m *Binary) Width() int { return m.img.Rect.Dx() }

// Height returns the map height.
func (m *Binary) Height() int { return m.img.Rect.Dy() }

// Set marks (x, y) as included. Out-of-range coordinates are ignored.
func (m *Binary) Set(x, y int) {
	if m.Has(x, y) || !image.Pt(x, y).In(m.img.Rect) {
		return
	}
	m.img.SetColorIndex(x, y, 1)
	m.n++
}

// Unset clears (x, y).
func (m *Binary) Unset(x, y int) {
	if !m.Has(x, y) {
		return
	}
	m.img.SetColorIndex(x, y, 0)
	m.n--
}

// Has reports whether (x, y) is included. Out-of-range coordinates are not.
func (m *Binary) Has(x, y int) bool { return m.img.ColorIndexAt(x, y) == 1 }

// SetSpan marks pixels x0..x1 (inclusive) of row y.
func (m *Binary) SetSpan(x0, x1, y int) {
	for x := x0; x <= x1; x++ {
		m.Set(x, y)
	}
}

// Count returns the number of included pixels.
func (m *Binary) Count() int { return m.n }

func countBits(pix []byte) int {
	n := 0
	for _, b := range pix {
		n += bits.OnesCount8(b)
	}
	return n
}

// IsEmpty implements Selection.
func (m *Binary) IsEmpty() bool { return m.n == 0 }

// Contains implements Selection.
func (m *Binary) Contains(x, y int) bool { return m.Has(x, y) }

// Bounds implements Selection. It scans the map, so callers in hot loops
// should keep the result.
func (m *Binary) Bounds() image.Rectangle {
	r := image.Rectangle{}
	w, h := m.Width(), m.Height()
	stride := m.img.Stride
	for y := range h {
		row := m.img.Pix[y*stride : (y+1)*stride]
		for i, b := range row {
			if b == 0 {
				continue
			}
			// MSB is the leftmost pixel of the byte.
			x0 := i*8 + bits.LeadingZeros8(b)
			x1 := i*8 + 7 - bits.TrailingZeros8(b)
			r = r.Union(image.Rect(x0, y, min(x1+1, w), y+1))
		}
	}
	return r
}

// Image returns the underlying packed image. It must be treated as
// read-only; writes through it are not seen by Count or IsEmpty.
func (m *Binary) Image() *img1b.Image { return m.img }

// EncodePNG writes the map as a 1-bit paletted PNG.
func (m *Binary) EncodePNG(w io.Writer) error {
	if err := img1bpng.Encode(w, m.img); err != nil {
		return fmt.Errorf("mask: encode binary: %w", err)
	}
	return nil
}
