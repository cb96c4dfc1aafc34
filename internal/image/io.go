package image

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif" // register GIF decoding
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the file format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")
)

// FileFormat names an encoded image format.
type FileFormat string

// Supported file formats. Decoding additionally accepts GIF.
const (
	FilePNG  FileFormat = "png"
	FileJPEG FileFormat = "jpeg"
	FileBMP  FileFormat = "bmp"
	FileTIFF FileFormat = "tiff"
)

// FormatFromPath picks a file format from the path extension.
func FormatFromPath(path string) (FileFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FilePNG, nil
	case ".jpg", ".jpeg":
		return FileJPEG, nil
	case ".bmp":
		return FileBMP, nil
	case ".tif", ".tiff":
		return FileTIFF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and decodes an image file.
func Load(path string) (*Bitmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes a PNG, JPEG, GIF, BMP or TIFF stream into a new Bitmap.
func Decode(r io.Reader) (*Bitmap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromImage(img)
}

// Save encodes b into path, choosing the encoder from the extension.
func (b *Bitmap) Save(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}
	if err := b.Encode(f, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Encode writes b to w in the given format. JPEG drops the alpha channel.
func (b *Bitmap) Encode(w io.Writer, format FileFormat) error {
	img := b.ToNRGBA()
	var err error
	switch format {
	case FilePNG:
		err = png.Encode(w, img)
	case FileJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 92})
	case FileBMP:
		err = bmp.Encode(w, img)
	case FileTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", format, err)
	}
	return nil
}

// FromImage copies any image.Image into a new Bitmap, converting to
// straight-alpha BGRA.
func FromImage(img image.Image) (*Bitmap, error) {
	bounds := img.Bounds()
	b, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(nrgba, nrgba.Rect, img, bounds.Min, draw.Src)
	}
	for y := range b.height {
		src := nrgba.Pix[nrgba.PixOffset(nrgba.Rect.Min.X, nrgba.Rect.Min.Y+y):]
		dst := b.Row(y)
		for x := range b.width {
			s := src[x*4 : x*4+4]
			pixel.Store(dst[x*pixel.Size:], pixel.Pack(s[0], s[1], s[2], s[3]))
		}
	}
	return b, nil
}

// ToNRGBA converts b to a standard library non-premultiplied image.
func (b *Bitmap) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(b.Rect())
	for y := range b.height {
		row := b.Row(y)
		dst := out.Pix[y*out.Stride:]
		for x := range b.width {
			r, g, bl, a := pixel.Load(row[x*pixel.Size:]).RGBA()
			dst[x*4] = r
			dst[x*4+1] = g
			dst[x*4+2] = bl
			dst[x*4+3] = a
		}
	}
	return out
}
