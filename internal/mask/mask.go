package mask

import (
	"image"
	"sync"
)

// Mask is an 8-bit selection map. A pixel is selected when its value is
// non-zero; values in between carry soft edges for callers that want them.
//
// Mutating methods must not run concurrently with readers. Concurrent
// reads (Contains, At, Bounds) are safe.
type Mask struct {
	width  int
	height int
	data   []uint8

	mu          sync.Mutex
	bounds      image.Rectangle
	boundsValid bool
}

// New creates an empty mask with the given dimensions.
func New(width, height int) *Mask {
	width, height = max(width, 0), max(height, 0)
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// FromAlpha creates a mask from an image's alpha channel.
func FromAlpha(img image.Image) *Mask {
	b := img.Bounds()
	m := New(b.Dx(), b.Dy())
	for y := range m.height {
		for x := range m.width {
			_, _, _, a := img.At(x+b.Min.X, y+b.Min.Y).RGBA()
			m.data[y*m.width+x] = uint8(a >> 8)
		}
	}
	return m
}

// FromRect creates a mask of the given size with r fully selected.
func FromRect(width, height int, r image.Rectangle) *Mask {
	m := New(width, height)
	r = r.Intersect(image.Rect(0, 0, m.width, m.height))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := m.data[y*m.width:]
		for x := r.Min.X; x < r.Max.X; x++ {
			row[x] = 255
		}
	}
	return m
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the mask value at (x, y), or 0 outside the mask.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the mask value at (x, y). Out-of-range coordinates are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
	m.invalidate()
}

// Fill sets every value.
func (m *Mask) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
	m.invalidate()
}

// Clear deselects everything.
func (m *Mask) Clear() { m.Fill(0) }

// Invert replaces every value v with 255-v.
func (m *Mask) Invert() {
	for i := range m.data {
		m.data[i] = 255 - m.data[i]
	}
	m.invalidate()
}

// Clone returns an independent copy.
func (m *Mask) Clone() *Mask {
	c := New(m.width, m.height)
	copy(c.data, m.data)
	return c
}

// Translate moves the selection by (dx, dy). Values shifted outside the
// mask are dropped and vacated values become 0.
func (m *Mask) Translate(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	out := make([]uint8, len(m.data))
	for y := range m.height {
		ty := y + dy
		if ty < 0 || ty >= m.height {
			continue
		}
		for x := range m.width {
			tx := x + dx
			if tx < 0 || tx >= m.width {
				continue
			}
			out[ty*m.width+tx] = m.data[y*m.width+x]
		}
	}
	m.data = out
	m.invalidate()
}

// IsEmpty implements Selection.
func (m *Mask) IsEmpty() bool {
	return m.Bounds().Empty()
}

// Contains implements Selection.
func (m *Mask) Contains(x, y int) bool {
	return m.At(x, y) != 0
}

// Bounds implements Selection. It returns the smallest rectangle enclosing
// every selected pixel; the result is cached until the next mutation.
func (m *Mask) Bounds() image.Rectangle {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.boundsValid {
		m.bounds = m.scanBounds()
		m.boundsValid = true
	}
	return m.bounds
}

func (m *Mask) scanBounds() image.Rectangle {
	r := image.Rectangle{}
	for y := range m.height {
		row := m.data[y*m.width : (y+1)*m.width]
		for x, v := range row {
			if v == 0 {
				continue
			}
			r = r.Union(image.Rect(x, y, x+1, y+1))
		}
	}
	return r
}

func (m *Mask) invalidate() {
	m.mu.Lock()
	m.boundsValid = false
	m.mu.Unlock()
}

// Data returns the underlying values. Call Fill, Set or another mutator
// afterwards, or bounds may be stale.
func (m *Mask) Data() []uint8 {
	return m.data
}
