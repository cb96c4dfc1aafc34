package filter

import (
	"context"
	"image"
	"testing"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/mask"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"
)

func TestColorMatrixTransform(t *testing.T) {
	p := pixel.Pack(200, 100, 50, 180)
	tests := []struct {
		name string
		m    *ColorMatrix
		want pixel.Pixel
		tol  int
	}{
		{"identity", IdentityMatrix(), p, 0},
		{"invert", Invert(), pixel.Pack(55, 155, 205, 180), 0},
		{"brightness zero", Brightness(0), pixel.Pack(0, 0, 0, 180), 0},
		{"brightness half", Brightness(0.5), pixel.Pack(100, 50, 25, 180), 0},
		{"contrast zero", Contrast(0), pixel.Pack(128, 128, 128, 180), 0},
		{"opacity half", Opacity(0.5), pixel.Pack(200, 100, 50, 90), 0},
		{"hue rotate zero", HueRotate(0), p, 1},
		{"hue rotate full turn", HueRotate(360), p, 1},
		{"opaque tint", Tint(pixel.Pack(10, 20, 30, 255)), pixel.Pack(10, 20, 30, 180), 0},
		{"invisible tint", Tint(pixel.Pack(10, 20, 30, 0)), p, 0},
		{"invert twice", Invert().Then(Invert()), p, 0},
		{"brightness then invert", Brightness(0.5).Then(Invert()), pixel.Pack(155, 205, 230, 180), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Transform(p)
			if !pixelsClose(got, tt.want, tt.tol) {
				t.Errorf("Transform = %#08x, want %#08x", got, tt.want)
			}
		})
	}
}

func TestGrayscaleEqualChannels(t *testing.T) {
	m := Grayscale()
	for _, p := range []pixel.Pixel{
		pixel.Pack(255, 0, 0, 255),
		pixel.Pack(12, 200, 99, 255),
		pixel.Pack(255, 255, 255, 10),
	} {
		got := m.Transform(p)
		if got.R() != got.G() || got.G() != got.B() {
			t.Errorf("Grayscale(%#08x) = %#08x, channels differ", p, got)
		}
		if got.A() != p.A() {
			t.Errorf("Grayscale changed alpha of %#08x", p)
		}
	}
}

func TestColorMatrixApplySelection(t *testing.T) {
	b := newFilled(t, 8, 8, pixel.Pack(10, 20, 30, 255))
	sel := mask.Rect(image.Rect(0, 0, 4, 8))
	if err := Invert().Apply(context.Background(), b, sel); err != nil {
		t.Fatal(err)
	}
	for y := range 8 {
		for x := range 8 {
			want := pixel.Pack(10, 20, 30, 255)
			if x < 4 {
				want = pixel.Pack(245, 235, 225, 255)
			}
			if got := b.PixelAt(x, y); got != want {
				t.Fatalf("(%d,%d) = %#08x, want %#08x", x, y, got, want)
			}
		}
	}
}
