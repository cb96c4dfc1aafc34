package artpaint

import (
	stdimage "image"
	"io"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/fill"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/filter"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/image"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/mask"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/resample"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/transform"
)

// Core types.
type (
	// Bitmap is a 32-bit BGRA raster owned by the caller.
	Bitmap = image.Bitmap

	// Pixel is a packed straight-alpha BGRA colour.
	Pixel = pixel.Pixel

	// Selection restricts which pixels an operation may write.
	Selection = mask.Selection

	// Mask is an 8-bit selection mask.
	Mask = mask.Mask

	// Binary is a packed 1-bit pixel set, as produced by the fill regions.
	Binary = mask.Binary

	// Method is a resampling filter.
	Method = resample.Method

	// Shape is a gradient shape.
	Shape = fill.Shape

	// Edges are inclusive crop or canvas edges.
	Edges = transform.Edges

	// Effect is an in-place filter.
	Effect = filter.Effect

	// Point is an integer pixel coordinate.
	Point = stdimage.Point
)

// Well-known pixels.
const (
	Transparent      = pixel.Transparent
	TransparentWhite = pixel.TransparentWhite
	Background       = pixel.Background
	Black            = pixel.Black
	White            = pixel.White
)

// Resampling methods.
const (
	NearestNeighbor = resample.NearestNeighbor
	Bilinear        = resample.Bilinear
	Bicubic         = resample.Bicubic
	CatmullRom      = resample.CatmullRom
	BSpline         = resample.BSpline
	Mitchell        = resample.Mitchell
)

// Gradient shapes.
const (
	Linear = fill.Linear
	Radial = fill.Radial
	Square = fill.Square
	Conic  = fill.Conic
)

// Errors returned by operations.
var (
	ErrInvalidDimensions = image.ErrInvalidDimensions
	ErrSizeMismatch      = image.ErrSizeMismatch
	ErrOutOfMemory       = image.ErrOutOfMemory
)

// Pack builds a pixel from its channels.
func Pack(r, g, b, a uint8) Pixel { return pixel.Pack(r, g, b, a) }

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return stdimage.Pt(x, y) }

// NewBitmap allocates a transparent width×height bitmap.
func NewBitmap(width, height int) (*Bitmap, error) { return image.New(width, height) }

// Load reads a PNG, JPEG, GIF, BMP or TIFF file into a new bitmap.
func Load(path string) (*Bitmap, error) { return image.Load(path) }

// Decode reads an image in any registered format into a new bitmap.
func Decode(r io.Reader) (*Bitmap, error) { return image.Decode(r) }

// FromImage converts any image.Image to a bitmap.
func FromImage(img stdimage.Image) (*Bitmap, error) { return image.FromImage(img) }

// ParseMethod resolves a resampling method name such as "bilinear".
func ParseMethod(s string) (Method, error) { return resample.ParseMethod(s) }

// ParseShape resolves a gradient shape name such as "radial".
func ParseShape(s string) (Shape, error) { return fill.ParseShape(s) }

// RectSelection selects the pixels of r.
func RectSelection(r stdimage.Rectangle) Selection { return mask.Rect(r) }

// MaskFromImage builds a selection mask from the alpha channel of img.
func MaskFromImage(img stdimage.Image) *Mask { return mask.FromAlpha(img) }
