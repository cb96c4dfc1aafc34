// Package transform implements the geometric bitmap operations: flips,
// quarter and arbitrary rotations, crop, canvas scaling and translation.
//
// Operations that allocate a new bitmap never modify their source, so an
// allocation failure leaves the caller's bitmap untouched.
package transform

import (
	"github.com/HaikuArchives/ArtPaint-sub001/internal/image"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"
)

// FlipHorizontal mirrors b left to right in place. The whole canvas is
// flipped regardless of any selection.
func FlipHorizontal(b *image.Bitmap) {
	w := b.Width()
	for y := range b.Height() {
		row := b.Row(y)
		for l, r := 0, w-1; l < r; l, r = l+1, r-1 {
			lo, ro := l*pixel.Size, r*pixel.Size
			pl, pr := pixel.Load(row[lo:]), pixel.Load(row[ro:])
			pixel.Store(row[lo:], pr)
			pixel.Store(row[ro:], pl)
		}
	}
}

// FlipVertical mirrors b top to bottom in place, ignoring any selection.
func FlipVertical(b *image.Bitmap) {
	tmp := make([]byte, b.Width()*pixel.Size)
	for t, u := 0, b.Height()-1; t < u; t, u = t+1, u-1 {
		top, bottom := b.Row(t), b.Row(u)
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}
