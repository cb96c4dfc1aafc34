package filter

import (
	"context"
	"errors"
	"image"
	"math"
	"testing"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/mask"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/parallel"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"
)

func TestNewBlur(t *testing.T) {
	f := NewBlur(5)
	if f.RadiusX != 5 || f.RadiusY != 5 {
		t.Errorf("NewBlur(5) = %+v", f)
	}
}

func TestBlurZeroRadius(t *testing.T) {
	b := newGradient(t, 10, 10)
	want := clone(t, b)
	if err := (&Blur{}).Apply(context.Background(), b, nil); err != nil {
		t.Fatal(err)
	}
	if !b.Equal(want) {
		t.Error("zero-radius blur changed the bitmap")
	}
}

func TestBlurUniform(t *testing.T) {
	c := pixel.Pack(200, 100, 50, 255)
	b := newFilled(t, 20, 20, c)
	if err := NewBlur(3).Apply(context.Background(), b, nil); err != nil {
		t.Fatal(err)
	}
	for y := range 20 {
		for x := range 20 {
			if got := b.PixelAt(x, y); !pixelsClose(got, c, 1) {
				t.Fatalf("(%d,%d) = %#08x, want %#08x", x, y, got, c)
			}
		}
	}
}

func TestBlurSpreadsPoint(t *testing.T) {
	b := newFilled(t, 21, 21, pixel.Black)
	b.SetPixel(10, 10, pixel.White)
	if err := NewBlur(2).Apply(context.Background(), b, nil); err != nil {
		t.Fatal(err)
	}
	center := b.PixelAt(10, 10).R()
	if center == 255 || center == 0 {
		t.Errorf("center = %d, want partially blurred", center)
	}
	for _, p := range []image.Point{{9, 10}, {11, 10}, {10, 9}, {10, 11}} {
		v := b.PixelAt(p.X, p.Y).R()
		if v == 0 || v > center {
			t.Errorf("neighbour %v = %d, center %d", p, v, center)
		}
	}
	if l, r := b.PixelAt(8, 10).R(), b.PixelAt(12, 10).R(); l != r {
		t.Errorf("asymmetric spread: %d vs %d", l, r)
	}
	if a := b.PixelAt(10, 10).A(); a != 255 {
		t.Errorf("alpha = %d, want 255", a)
	}
}

func TestBlurHorizontalOnly(t *testing.T) {
	b := newFilled(t, 9, 9, pixel.Black)
	b.SetPixel(4, 4, pixel.White)
	f := &Blur{RadiusX: 1}
	if err := f.Apply(context.Background(), b, nil); err != nil {
		t.Fatal(err)
	}
	if v := b.PixelAt(4, 3).R(); v != 0 {
		t.Errorf("pixel above = %d, want 0", v)
	}
	if v := b.PixelAt(3, 4).R(); v == 0 {
		t.Error("pixel to the left was not blurred")
	}
}

func TestBlurSelection(t *testing.T) {
	b := newGradient(t, 16, 16)
	orig := clone(t, b)
	sel := mask.Rect(image.Rect(4, 4, 12, 12))
	if err := NewBlur(2).Apply(context.Background(), b, sel); err != nil {
		t.Fatal(err)
	}
	changed := false
	for y := range 16 {
		for x := range 16 {
			if sel.Contains(x, y) {
				changed = changed || b.PixelAt(x, y) != orig.PixelAt(x, y)
				continue
			}
			if b.PixelAt(x, y) != orig.PixelAt(x, y) {
				t.Fatalf("unselected (%d,%d) changed", x, y)
			}
		}
	}
	if !changed {
		t.Error("no selected pixel changed")
	}
}

func TestBlurProgress(t *testing.T) {
	b := newGradient(t, 32, 40)
	var acc parallel.Accumulator
	progress := parallel.WithProgress(acc.Progress())
	if err := NewBlur(1).Apply(context.Background(), b, nil, progress, parallel.WithWorkers(3)); err != nil {
		t.Fatal(err)
	}
	if sum := acc.Load(); math.Abs(sum-100) > 1e-9 {
		t.Errorf("progress sum = %v, want 100", sum)
	}
}

func TestBlurCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewBlur(2).Apply(ctx, newGradient(t, 8, 8), nil)
	if !errors.Is(err, parallel.ErrCanceled) {
		t.Errorf("err = %v, want ErrCanceled", err)
	}
}
