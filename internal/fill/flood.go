// Package fill implements flood, bounded and gradient fills.
//
// Fills are single-threaded: the span stack of a flood fill has sequential
// dependencies. Every fill honours an optional selection, whose unselected
// pixels act as walls.
package fill

import (
	"fmt"
	stdimage "image"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/image"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/logging"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/mask"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"
)

// scanner walks the 4-connected region reachable from a seed one
// horizontal span at a time. The stack holds one entry per run of
// fillable pixels found next to a filled span, so it grows with the
// region's perimeter rather than its area.
type scanner struct {
	bounds stdimage.Rectangle

	// fillable reports whether (x, y) still belongs to the region. It must
	// turn false once mark has covered the pixel.
	fillable func(x, y int) bool

	// mark records the span x0..x1 (inclusive) of row y.
	mark func(x0, x1, y int)
}

func (s *scanner) run(seed stdimage.Point) int {
	filled := 0
	stack := []stdimage.Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !s.fillable(p.X, p.Y) {
			continue
		}

		l, r := p.X, p.X
		for l-1 >= s.bounds.Min.X && s.fillable(l-1, p.Y) {
			l--
		}
		for r+1 < s.bounds.Max.X && s.fillable(r+1, p.Y) {
			r++
		}
		s.mark(l, r, p.Y)
		filled += r - l + 1

		for _, y := range [2]int{p.Y - 1, p.Y + 1} {
			if y < s.bounds.Min.Y || y >= s.bounds.Max.Y {
				continue
			}
			inRun := false
			for x := l; x <= r; x++ {
				if !s.fillable(x, y) {
					inRun = false
					continue
				}
				if !inRun {
					stack = append(stack, stdimage.Pt(x, y))
					inRun = true
				}
			}
		}
	}
	return filled
}

// seedColor returns the seed's colour and the area a fill may touch, or
// ok=false when the seed is outside the bitmap or the selection.
func seedColor(b *image.Bitmap, seed stdimage.Point, sel mask.Selection) (c pixel.Pixel, bounds stdimage.Rectangle, ok bool) {
	bounds = mask.Clip(sel, b.Rect())
	if !seed.In(bounds) || !mask.Selected(sel, seed.X, seed.Y) {
		return 0, bounds, false
	}
	return b.PixelAt(seed.X, seed.Y), bounds, true
}

// FloodFill paints the 4-connected region around seed whose pixels are
// within tol of the seed's original colour.
//
// A seed outside the bitmap or the selection is a no-op, as is filling
// with the seed's own colour at tolerance 0. The only error is failure to
// allocate the visited map needed when tol > 0.
func FloodFill(b *image.Bitmap, seed stdimage.Point, c pixel.Pixel, tol uint8, sel mask.Selection) error {
	target, bounds, ok := seedColor(b, seed, sel)
	if !ok {
		logging.Logger().Debug("fill: seed outside fillable area", "seed", seed)
		return nil
	}
	if tol == 0 && c == target {
		return nil
	}

	paint := func(x0, x1, y int) {
		row := b.Row(y)
		for x := x0; x <= x1; x++ {
			pixel.Store(row[x*pixel.Size:], c)
		}
	}

	selected := mask.Selector(sel)
	s := &scanner{bounds: bounds, mark: paint}
	if tol == 0 {
		// A painted pixel no longer equals target, so the bitmap itself
		// records what has been visited.
		s.fillable = func(x, y int) bool {
			return b.PixelAt(x, y) == target && selected(x, y)
		}
	} else {
		visited, err := mask.NewBinary(b.Width(), b.Height())
		if err != nil {
			return fmt.Errorf("fill: flood: %w", err)
		}
		s.fillable = func(x, y int) bool {
			return !visited.Has(x, y) &&
				pixel.WithinTolerance(b.PixelAt(x, y), target, tol) &&
				selected(x, y)
		}
		s.mark = func(x0, x1, y int) {
			visited.SetSpan(x0, x1, y)
			paint(x0, x1, y)
		}
	}

	n := s.run(seed)
	logging.Logger().Debug("fill: flood",
		"seed", seed,
		"tolerance", tol,
		"pixels", n)
	return nil
}

// FloodRegion returns the pixels FloodFill would paint, without writing
// to b. A seed outside the bitmap or the selection yields an empty map.
func FloodRegion(b *image.Bitmap, seed stdimage.Point, tol uint8, sel mask.Selection) (*mask.Binary, error) {
	region, err := mask.NewBinary(b.Width(), b.Height())
	if err != nil {
		return nil, fmt.Errorf("fill: flood region: %w", err)
	}
	target, bounds, ok := seedColor(b, seed, sel)
	if !ok {
		return region, nil
	}
	selected := mask.Selector(sel)
	s := &scanner{
		bounds: bounds,
		fillable: func(x, y int) bool {
			return !region.Has(x, y) &&
				pixel.WithinTolerance(b.PixelAt(x, y), target, tol) &&
				selected(x, y)
		},
		mark: region.SetSpan,
	}
	s.run(seed)
	return region, nil
}

// BoundedFill paints every pixel of the selection (or the whole bitmap)
// within tol of the seed's colour, connected or not.
func BoundedFill(b *image.Bitmap, seed stdimage.Point, c pixel.Pixel, tol uint8, sel mask.Selection) {
	target, bounds, ok := seedColor(b, seed, sel)
	if !ok {
		return
	}
	selected := mask.Selector(sel)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := b.Row(y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			off := x * pixel.Size
			if pixel.WithinTolerance(pixel.Load(row[off:]), target, tol) && selected(x, y) {
				pixel.Store(row[off:], c)
			}
		}
	}
}

// BoundedRegion returns the pixels BoundedFill would paint.
func BoundedRegion(b *image.Bitmap, seed stdimage.Point, tol uint8, sel mask.Selection) (*mask.Binary, error) {
	region, err := mask.NewBinary(b.Width(), b.Height())
	if err != nil {
		return nil, fmt.Errorf("fill: bounded region: %w", err)
	}
	target, bounds, ok := seedColor(b, seed, sel)
	if !ok {
		return region, nil
	}
	selected := mask.Selector(sel)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if pixel.WithinTolerance(b.PixelAt(x, y), target, tol) && selected(x, y) {
				region.Set(x, y)
			}
		}
	}
	return region, nil
}
