package resample

import (
	"context"
	"errors"
	stdimage "image"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/image"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/parallel"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"
)

var allMethods = []Method{NearestNeighbor, Bilinear, Bicubic, CatmullRom, BSpline, Mitchell}

func grey(v uint8) pixel.Pixel { return pixel.Pack(v, v, v, 255) }

func ramp(n int) []pixel.Pixel {
	line := make([]pixel.Pixel, n)
	for i := range line {
		line[i] = grey(uint8(i * 255 / max(n-1, 1)))
	}
	return line
}

func TestMethodString(t *testing.T) {
	for _, m := range allMethods {
		got, err := ParseMethod(m.String())
		if err != nil {
			t.Errorf("ParseMethod(%q): %v", m.String(), err)
			continue
		}
		if got != m {
			t.Errorf("ParseMethod(%q) = %v, want %v", m.String(), got, m)
		}
	}
	if m, err := ParseMethod("Catmull_Rom"); err != nil || m != CatmullRom {
		t.Errorf("ParseMethod(Catmull_Rom) = %v, %v", m, err)
	}
	if _, err := ParseMethod("lanczos"); err == nil {
		t.Error("ParseMethod(lanczos) should fail")
	}
	if got := Method(42).String(); got != "Method(42)" {
		t.Errorf("String() = %q", got)
	}
}

func TestCubicParameters(t *testing.T) {
	tests := []struct {
		m    Method
		b, c float64
	}{
		{Bicubic, 0, 0.75},
		{CatmullRom, 0, 0.5},
		{BSpline, 1, 0},
		{Mitchell, 1.0 / 3, 1.0 / 3},
	}
	for _, tt := range tests {
		t.Run(tt.m.String(), func(t *testing.T) {
			b, c, ok := tt.m.Cubic()
			if !ok || b != tt.b || c != tt.c {
				t.Errorf("Cubic() = %v, %v, %v", b, c, ok)
			}
		})
	}
	if _, _, ok := Bilinear.Cubic(); ok {
		t.Error("Bilinear is not cubic")
	}
}

func TestCubicWeightPartitionOfUnity(t *testing.T) {
	for _, m := range allMethods[2:] {
		b, c, _ := m.Cubic()
		for _, f := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9} {
			sum := 0.0
			for k := -1; k <= 2; k++ {
				sum += cubicWeight(b, c, f-float64(k))
			}
			if math.Abs(sum-1) > 1e-12 {
				t.Errorf("%v f=%v: weights sum to %v", m, f, sum)
			}
		}
	}
	if w := cubicWeight(0, 0.5, 0); w != 1 {
		t.Errorf("Catmull-Rom at 0 = %v, want 1", w)
	}
	if w := cubicWeight(0, 0.5, 2); w != 0 {
		t.Errorf("kernel at support edge = %v, want 0", w)
	}
}

func TestScaleAxisIdentity(t *testing.T) {
	src := ramp(17)
	for _, m := range allMethods {
		t.Run(m.String(), func(t *testing.T) {
			got := ScaleAxis(src, len(src), m)
			if diff := cmp.Diff(src, got); diff != "" {
				t.Errorf("identity scale mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScaleAxisLength(t *testing.T) {
	src := ramp(10)
	for _, m := range allMethods {
		for _, n := range []int{1, 3, 9, 11, 40} {
			if got := ScaleAxis(src, n, m); len(got) != n {
				t.Errorf("%v: len = %d, want %d", m, len(got), n)
			}
		}
	}
	if ScaleAxis(nil, 4, Bilinear) != nil || ScaleAxis(src, 0, Bilinear) != nil {
		t.Error("degenerate input should return nil")
	}
}

func TestScaleAxisConstantLine(t *testing.T) {
	c := pixel.Pack(10, 200, 30, 128)
	src := []pixel.Pixel{c, c, c, c, c}
	for _, m := range allMethods {
		for _, n := range []int{2, 7, 13} {
			for i, p := range ScaleAxis(src, n, m) {
				if p != c {
					t.Errorf("%v n=%d: [%d] = %#x, want %#x", m, n, i, p, c)
				}
			}
		}
	}
}

func TestScaleAxisNearestUpscale(t *testing.T) {
	src := []pixel.Pixel{grey(0), grey(100), grey(200)}
	got := ScaleAxis(src, 6, NearestNeighbor)
	want := []pixel.Pixel{grey(0), grey(0), grey(100), grey(100), grey(200), grey(200)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestScaleAxisBilinearDownscale(t *testing.T) {
	src := []pixel.Pixel{grey(0), grey(100), grey(200), grey(250)}
	got := ScaleAxis(src, 2, Bilinear)
	// Centres map to 0.5 and 2.5.
	want := []pixel.Pixel{grey(50), grey(225)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestScaleAxisEdgeClamp(t *testing.T) {
	// Overshooting kernels must not read past the ends or wrap.
	src := []pixel.Pixel{grey(255), grey(0)}
	for _, m := range allMethods {
		got := ScaleAxis(src, 8, m)
		if got[0] != grey(255) && m != BSpline {
			t.Errorf("%v: first sample %#x, want edge value", m, got[0])
		}
		if got[7].R() > 20 && m != BSpline {
			t.Errorf("%v: last sample %#x, want near 0", m, got[7])
		}
	}
}

func TestScaleAxisInto(t *testing.T) {
	src := ramp(8)
	dst := make([]pixel.Pixel, 4)
	ScaleAxisInto(dst, src, Mitchell)
	if diff := cmp.Diff(ScaleAxis(src, 4, Mitchell), dst); diff != "" {
		t.Errorf("ScaleAxisInto disagrees with ScaleAxis:\n%s", diff)
	}
}

func newPattern(t *testing.T, w, h int) *image.Bitmap {
	t.Helper()
	b, err := image.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	for y := range h {
		for x := range w {
			b.SetPixel(x, y, pixel.Pack(uint8(x*30), uint8(y*20), uint8(x^y), 255))
		}
	}
	return b
}

func TestScaleIdentity(t *testing.T) {
	src := newPattern(t, 7, 5)
	for _, m := range allMethods {
		got, err := Scale(context.Background(), src, 7, 5, m)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(src) {
			t.Errorf("%v: identity scale changed pixels", m)
		}
	}
}

func TestScaleMatchesSeparablePasses(t *testing.T) {
	src := newPattern(t, 9, 6)
	for _, m := range allMethods {
		t.Run(m.String(), func(t *testing.T) {
			got, err := Scale(context.Background(), src, 4, 13, m, parallel.WithWorkers(3))
			if err != nil {
				t.Fatal(err)
			}
			if got.Width() != 4 || got.Height() != 13 {
				t.Fatalf("size %dx%d", got.Width(), got.Height())
			}

			// Reference: rows then columns through ScaleAxis.
			rows := make([][]pixel.Pixel, 6)
			for y := range 6 {
				rows[y] = ScaleAxis(src.RowPixels(y, nil), 4, m)
			}
			for x := range 4 {
				col := make([]pixel.Pixel, 6)
				for y := range 6 {
					col[y] = rows[y][x]
				}
				want := ScaleAxis(col, 13, m)
				for y := range 13 {
					if p := got.PixelAt(x, y); p != want[y] {
						t.Fatalf("(%d,%d) = %#x, want %#x", x, y, p, want[y])
					}
				}
			}
		})
	}
}

func TestScaleInvalid(t *testing.T) {
	src := newPattern(t, 4, 4)
	if _, err := Scale(context.Background(), src, 0, 4, Bilinear); !errors.Is(err, image.ErrInvalidDimensions) {
		t.Errorf("error = %v, want ErrInvalidDimensions", err)
	}
}

func TestScaleCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := newPattern(t, 4, 4)
	if _, err := Scale(ctx, src, 8, 8, Bilinear); !errors.Is(err, parallel.ErrCanceled) {
		t.Errorf("error = %v, want ErrCanceled", err)
	}
}

func TestPlanCache(t *testing.T) {
	a := planFor(17, 5, CatmullRom)
	if b := planFor(17, 5, CatmullRom); a != b {
		t.Error("second lookup built a new plan")
	}
	if c := planFor(17, 5, Mitchell); c == a {
		t.Error("plans for different methods are shared")
	}
}

func TestScaleProgress(t *testing.T) {
	src := newPattern(t, 9, 7)
	var acc parallel.Accumulator
	_, err := Scale(context.Background(), src, 20, 30, Bilinear,
		parallel.WithProgress(acc.Progress()), parallel.WithWorkers(4))
	if err != nil {
		t.Fatal(err)
	}
	if got := acc.Load(); math.Abs(got-100) > 1e-9 {
		t.Errorf("progress = %v, want 100", got)
	}
}

func TestScaleWithScheduler(t *testing.T) {
	s := parallel.NewScheduler(3)
	defer s.Close()

	src := newPattern(t, 9, 7)
	want, err := Scale(context.Background(), src, 20, 30, CatmullRom)
	if err != nil {
		t.Fatal(err)
	}
	var acc parallel.Accumulator
	got, err := ScaleWith(context.Background(), s, src, 20, 30, CatmullRom, parallel.WithProgress(acc.Progress()))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Error("scheduler-driven scale differs")
	}
	if p := acc.Load(); math.Abs(p-100) > 1e-9 {
		t.Errorf("progress = %v, want 100", p)
	}
}

func TestScaleImage(t *testing.T) {
	src := stdimage.NewNRGBA(stdimage.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	for _, m := range allMethods {
		got := ScaleImage(src, 9, 3, m)
		if got.Bounds().Dx() != 9 || got.Bounds().Dy() != 3 {
			t.Fatalf("%v: bounds %v", m, got.Bounds())
		}
		if c := got.NRGBAAt(4, 1); c.R < 250 || c.G < 250 || c.B < 250 || c.A < 250 {
			t.Errorf("%v: centre = %v, want opaque white", m, c)
		}
	}
}
