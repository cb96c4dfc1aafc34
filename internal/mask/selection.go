// Package mask provides the selection capability consumed by the pixel
// operations and the packed binary map used by fills.
//
// A Selection is owned by the caller and only read by operations; no
// operation keeps a reference after it returns. Every accessor here clamps
// to the bitmap bounds, because a selection's own bounds are not trusted.
package mask

import "image"

// Selection restricts which pixels an operation may modify.
//
// Implementations must be safe for concurrent read-only use, since band
// workers query Contains in parallel.
type Selection interface {
	// IsEmpty reports whether nothing is selected. An empty selection means
	// the whole bitmap is treated as selected.
	IsEmpty() bool

	// Contains reports whether pixel (x, y) is selected.
	Contains(x, y int) bool

	// Bounds returns a rectangle enclosing every selected pixel.
	Bounds() image.Rectangle
}

// Active reports whether sel restricts anything. Nil and empty selections
// are inactive.
func Active(sel Selection) bool {
	return sel != nil && !sel.IsEmpty()
}

// Clip returns the part of bounds an operation must visit: the selection's
// bounds clamped to bounds when sel is active, otherwise bounds itself.
func Clip(sel Selection, bounds image.Rectangle) image.Rectangle {
	if !Active(sel) {
		return bounds
	}
	return sel.Bounds().Intersect(bounds)
}

// Selected reports whether an operation may write (x, y): true for every
// pixel when sel is inactive. Per-pixel loops should use Selector.
func Selected(sel Selection, x, y int) bool {
	return !Active(sel) || sel.Contains(x, y)
}

// Selector returns Selected bound to sel, with the activity test done once.
func Selector(sel Selection) func(x, y int) bool {
	if !Active(sel) {
		return func(int, int) bool { return true }
	}
	return sel.Contains
}

// Rect is a rectangular Selection.
type Rect image.Rectangle

// IsEmpty implements Selection.
func (r Rect) IsEmpty() bool { return image.Rectangle(r).Empty() }

// Contains implements Selection.
func (r Rect) Contains(x, y int) bool { return image.Pt(x, y).In(image.Rectangle(r)) }

// Bounds implements Selection.
func (r Rect) Bounds() image.Rectangle { return image.Rectangle(r) }
