package image

import (
	"bytes"
	"errors"
	stdimage "image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"
)

func testBitmap(t *testing.T) *Bitmap {
	t.Helper()
	b, err := New(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	for y := range 3 {
		for x := range 4 {
			b.SetPixel(x, y, pixel.Pack(uint8(x*60), uint8(y*100), 77, 255))
		}
	}
	return b
}

func TestEncodeDecodeLossless(t *testing.T) {
	for _, format := range []FileFormat{FilePNG, FileBMP, FileTIFF} {
		t.Run(string(format), func(t *testing.T) {
			src := testBitmap(t)
			var buf bytes.Buffer
			if err := src.Encode(&buf, format); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !got.Equal(src) {
				t.Error("decoded bitmap differs from source")
			}
		})
	}
}

func TestEncodeJPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := testBitmap(t).Encode(&buf, FileJPEG); err != nil {
		t.Fatalf("Encode JPEG: %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode JPEG: %v", err)
	}
	if got.Width() != 4 || got.Height() != 3 {
		t.Errorf("size = %dx%d", got.Width(), got.Height())
	}
}

func TestEncodeUnsupported(t *testing.T) {
	var buf bytes.Buffer
	if err := testBitmap(t).Encode(&buf, "webp"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(webp) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	src := testBitmap(t)
	if err := src.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.Equal(src) {
		t.Error("loaded bitmap differs")
	}
	if err := src.Save(filepath.Join(t.TempDir(), "out.xyz")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save(.xyz) error = %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]FileFormat{
		"a.PNG": FilePNG, "b.jpg": FileJPEG, "c.jpeg": FileJPEG, "d.bmp": FileBMP, "e.tif": FileTIFF,
	}
	for path, want := range tests {
		got, err := FormatFromPath(path)
		if err != nil || got != want {
			t.Errorf("FormatFromPath(%q) = %q, %v; want %q", path, got, err, want)
		}
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	src := stdimage.NewRGBA(stdimage.Rect(10, 20, 13, 22))
	src.Set(11, 21, color.RGBA{R: 128, G: 0, B: 0, A: 128}) // premultiplied half red
	b, err := FromImage(src)
	if err != nil {
		t.Fatal(err)
	}
	if b.Width() != 3 || b.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", b.Width(), b.Height())
	}
	r, g, bl, a := b.PixelAt(1, 1).RGBA()
	if r != 255 || g != 0 || bl != 0 || a != 128 {
		t.Errorf("pixel = (%d,%d,%d,%d), want straight (255,0,0,128)", r, g, bl, a)
	}
}
