package mask

import (
	"image"
	"image/color"
	"sync"
	"testing"
)

func TestNewMask(t *testing.T) {
	m := New(100, 100)
	if m.Width() != 100 || m.Height() != 100 {
		t.Errorf("expected 100x100, got %dx%d", m.Width(), m.Height())
	}
	if m.At(50, 50) != 0 {
		t.Errorf("expected 0, got %d", m.At(50, 50))
	}
	if !m.IsEmpty() {
		t.Error("new mask should be empty")
	}
}

func TestMaskFillInvert(t *testing.T) {
	m := New(10, 10)
	m.Fill(100)
	m.Invert()
	if m.At(5, 5) != 155 {
		t.Errorf("expected 155, got %d", m.At(5, 5))
	}
	m.Clear()
	if !m.IsEmpty() {
		t.Error("cleared mask should be empty")
	}
}

func TestMaskClone(t *testing.T) {
	m := New(10, 10)
	m.Fill(200)
	c := m.Clone()
	m.Fill(0)
	if c.At(5, 5) != 200 {
		t.Errorf("clone should not be affected, got %d", c.At(5, 5))
	}
}

func TestMaskOutOfRange(t *testing.T) {
	m := New(10, 10)
	m.Set(-1, 5, 255)
	m.Set(10, 5, 255)
	m.Set(5, 10, 255)
	if !m.IsEmpty() {
		t.Error("out-of-range Set should be ignored")
	}
	for _, p := range []image.Point{{-1, 5}, {10, 5}, {5, -1}, {5, 10}} {
		if m.Contains(p.X, p.Y) {
			t.Errorf("Contains(%v) = true", p)
		}
	}
}

func TestMaskBoundsCache(t *testing.T) {
	m := New(20, 20)
	m.Set(3, 4, 1)
	m.Set(10, 12, 255)
	want := image.Rect(3, 4, 11, 13)
	if got := m.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	m.Set(15, 1, 9)
	want = image.Rect(3, 1, 16, 13)
	if got := m.Bounds(); got != want {
		t.Errorf("Bounds() after Set = %v, want %v", got, want)
	}
}

func TestMaskTranslate(t *testing.T) {
	m := FromRect(10, 10, image.Rect(2, 2, 4, 4))
	m.Translate(3, -1)
	want := image.Rect(5, 1, 7, 3)
	if got := m.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if m.Contains(2, 2) {
		t.Error("vacated pixel still selected")
	}

	m.Translate(8, 0)
	if !m.IsEmpty() {
		t.Errorf("translated off the mask, Bounds() = %v", m.Bounds())
	}
}

func TestFromAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.SetNRGBA(1, 2, color.NRGBA{A: 255})
	src.SetNRGBA(3, 3, color.NRGBA{A: 128})
	m := FromAlpha(src)
	if m.At(1, 2) != 255 {
		t.Errorf("At(1,2) = %d, want 255", m.At(1, 2))
	}
	if m.At(3, 3) != 128 {
		t.Errorf("At(3,3) = %d, want 128", m.At(3, 3))
	}
	if m.Contains(0, 0) {
		t.Error("transparent pixel selected")
	}
}

func TestMaskConcurrentReads(t *testing.T) {
	m := FromRect(64, 64, image.Rect(8, 8, 40, 40))
	want := image.Rect(8, 8, 40, 40)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range 64 {
				_ = m.Contains(y, y)
			}
			if got := m.Bounds(); got != want {
				t.Errorf("Bounds() = %v, want %v", got, want)
			}
		}()
	}
	wg.Wait()
}

func TestSelectionHelpers(t *testing.T) {
	bounds := image.Rect(0, 0, 10, 10)

	tests := []struct {
		name     string
		sel      Selection
		wantClip image.Rectangle
		active   bool
	}{
		{"nil", nil, bounds, false},
		{"empty rect", Rect{}, bounds, false},
		{"empty mask", New(10, 10), bounds, false},
		{"rect inside", Rect(image.Rect(2, 3, 5, 6)), image.Rect(2, 3, 5, 6), true},
		{"rect overhanging", Rect(image.Rect(-5, 8, 20, 30)), image.Rect(0, 8, 10, 10), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Active(tt.sel); got != tt.active {
				t.Errorf("Active() = %v, want %v", got, tt.active)
			}
			if got := Clip(tt.sel, bounds); got != tt.wantClip {
				t.Errorf("Clip() = %v, want %v", got, tt.wantClip)
			}
		})
	}

	if !Selected(nil, 3, 3) {
		t.Error("nil selection must select everything")
	}
	r := Rect(image.Rect(2, 2, 4, 4))
	if !Selected(r, 3, 3) || Selected(r, 4, 4) {
		t.Error("Selected() disagrees with Rect.Contains")
	}
}
