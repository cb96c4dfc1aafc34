package fill

import (
	"fmt"
	stdimage "image"
	"math"
	"strings"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/image"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/logging"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/mask"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"
)

// Shape selects how a gradient measures progress from start to end.
type Shape uint8

const (
	// Linear projects each pixel onto the start→end vector.
	Linear Shape = iota

	// Radial uses the Euclidean distance from start.
	Radial

	// Square uses the Chebyshev distance from start in a frame rotated to
	// the start→end direction.
	Square

	// Conic uses the clockwise angle from the start→end direction as a
	// fraction of a full turn, so the sweep covers 360° with one seam.
	Conic
)

var shapeNames = [...]string{
	Linear: "linear",
	Radial: "radial",
	Square: "square",
	Conic:  "conic",
}

// String returns the shape name accepted by ParseShape.
func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", s)
}

// ParseShape resolves a shape name, ignoring case.
func ParseShape(name string) (Shape, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range shapeNames {
		if n == name {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("fill: unknown gradient shape %q", name)
}

// gradient evaluates the normalised metric of one shape.
type gradient struct {
	shape     Shape
	sx, sy    float64
	dx, dy    float64 // unit start→end direction
	length    float64
	baseAngle float64
}

func newGradient(shape Shape, start, end stdimage.Point) (gradient, bool) {
	vx, vy := float64(end.X-start.X), float64(end.Y-start.Y)
	length := math.Hypot(vx, vy)
	if length == 0 {
		return gradient{}, false
	}
	return gradient{
		shape:     shape,
		sx:        float64(start.X),
		sy:        float64(start.Y),
		dx:        vx / length,
		dy:        vy / length,
		length:    length,
		baseAngle: math.Atan2(vy, vx),
	}, true
}

// at returns the metric for (x, y) clamped to [0,1]; 0 is the start
// colour and 1 the end colour.
func (g gradient) at(x, y int) float64 {
	px, py := float64(x)-g.sx, float64(y)-g.sy
	var t float64
	switch g.shape {
	case Linear:
		t = (px*g.dx + py*g.dy) / g.length
	case Radial:
		t = math.Hypot(px, py) / g.length
	case Square:
		u := px*g.dx + py*g.dy
		v := -px*g.dy + py*g.dx
		t = math.Max(math.Abs(u), math.Abs(v)) / g.length
	case Conic:
		if px == 0 && py == 0 {
			return 0
		}
		// Clockwise on screen from the start→end direction, wrapping to 0
		// after a full turn.
		d := math.Mod(math.Atan2(py, px)-g.baseAngle, 2*math.Pi)
		if d < 0 {
			d += 2 * math.Pi
		}
		t = d / (2 * math.Pi)
	}
	return min(max(t, 0), 1)
}

// GradientFill paints a gradient between colorB at start and colorA at
// end (and beyond) over the pixels of region. A nil region means every
// pixel of the selection, or of the bitmap when sel is inactive. Unselected
// pixels are never written. A zero-length start→end vector changes nothing.
func GradientFill(b *image.Bitmap, region *mask.Binary, shape Shape, colorA, colorB pixel.Pixel, start, end stdimage.Point, sel mask.Selection) {
	g, ok := newGradient(shape, start, end)
	if !ok {
		logging.Logger().Warn("fill: zero-length gradient vector", "start", start, "end", end)
		return
	}
	bounds := mask.Clip(sel, b.Rect())
	if region != nil {
		bounds = bounds.Intersect(region.Bounds())
	}
	selected := mask.Selector(sel)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := b.Row(y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if region != nil && !region.Has(x, y) {
				continue
			}
			if !selected(x, y) {
				continue
			}
			pixel.Store(row[x*pixel.Size:], pixel.Mix(colorA, colorB, g.at(x, y)))
		}
	}
}
