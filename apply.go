package artpaint

import (
	"context"
	"errors"
	"fmt"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/fill"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/resample"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/transform"
)

// Errors returned by Apply.
var (
	// ErrUnknownOp is returned for an Op value outside the defined set.
	ErrUnknownOp = errors.New("unknown operation")

	// ErrNoEffect is returned by OpFilter when Request.Effect is nil.
	ErrNoEffect = errors.New("artpaint: filter request without effect")
)

// Request carries the parameters of one operation. Only the fields the
// operation uses are read.
type Request struct {
	Op Op

	// Selection restricts the pixels written. Nil selects everything.
	// Flips ignore it and always flip the whole bitmap.
	Selection Selection

	// Angle in degrees, clockwise, and the pivot, for OpRotate.
	Angle float64
	Pivot Point

	// Edges for OpCrop and OpScaleCanvas.
	Edges Edges

	// Width and Height for OpScale.
	Width, Height int

	// Method for OpScale and OpScaleCanvas.
	Method Method

	// DX and DY for OpTranslate.
	DX, DY int

	// Seed, Color and Tolerance for OpFloodFill and OpBoundedFill.
	Seed      Point
	Color     Pixel
	Tolerance uint8

	// Shape, colours, endpoints and optional Region for OpGradientFill.
	// ColorB is painted at Start, ColorA at End and beyond.
	Shape      Shape
	ColorA     Pixel
	ColorB     Pixel
	Start, End Point
	Region     *Binary

	// Effect for OpFilter.
	Effect Effect
}

// Apply runs req against b.
//
// In-place operations (see Op.InPlace) modify b and return it; the others
// leave b untouched and return a new bitmap. When ctx is canceled the
// returned error wraps ErrCanceled, and an in-place operation may have
// modified part of b.
func Apply(ctx context.Context, b *Bitmap, req Request, opts ...Option) (*Bitmap, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("artpaint: %v: %w: %w", req.Op, ErrCanceled, err)
	}
	o := newOptions(opts)
	Logger().Debug("artpaint: apply",
		"op", req.Op,
		"size", b.Rect().Size(),
		"selection", req.Selection != nil)

	out, err := dispatch(ctx, b, &req, &o)
	if err != nil {
		return nil, fmt.Errorf("artpaint: %v: %w", req.Op, err)
	}
	return out, nil
}

func dispatch(ctx context.Context, b *Bitmap, req *Request, o *options) (*Bitmap, error) {
	switch req.Op {
	case OpFlipHorizontal:
		transform.FlipHorizontal(b)
		return b, nil
	case OpFlipVertical:
		transform.FlipVertical(b)
		return b, nil
	case OpRotate90CW:
		return transform.Rotate90CW(b)
	case OpRotate90CCW:
		return transform.Rotate90CCW(b)
	case OpRotate:
		return transform.Rotate(ctx, b, req.Angle, req.Pivot, req.Selection, o.transformOptions()...)
	case OpCrop:
		return transform.Crop(b, req.Edges)
	case OpScale:
		return resample.ScaleWith(ctx, o.runner(), b, req.Width, req.Height, req.Method, o.band...)
	case OpScaleCanvas:
		return transform.ScaleCanvas(ctx, b, req.Edges, req.Method, o.transformOptions()...)
	case OpTranslate:
		return transform.Translate(b, req.DX, req.DY, req.Selection)
	case OpFloodFill:
		if err := fill.FloodFill(b, req.Seed, req.Color, req.Tolerance, req.Selection); err != nil {
			return nil, err
		}
		return b, nil
	case OpBoundedFill:
		fill.BoundedFill(b, req.Seed, req.Color, req.Tolerance, req.Selection)
		return b, nil
	case OpGradientFill:
		fill.GradientFill(b, req.Region, req.Shape, req.ColorA, req.ColorB, req.Start, req.End, req.Selection)
		return b, nil
	case OpFilter:
		if req.Effect == nil {
			return nil, ErrNoEffect
		}
		if err := req.Effect.Apply(ctx, b, req.Selection, o.band...); err != nil {
			return nil, err
		}
		return b, nil
	}
	return nil, ErrUnknownOp
}

// FillRegion returns the pixels an OpFloodFill or OpBoundedFill request
// would paint, without painting them. The region can seed an
// OpGradientFill request or be saved as a 1-bit PNG.
func FillRegion(b *Bitmap, req Request) (*Binary, error) {
	var (
		region *Binary
		err    error
	)
	switch req.Op {
	case OpFloodFill:
		region, err = fill.FloodRegion(b, req.Seed, req.Tolerance, req.Selection)
	case OpBoundedFill:
		region, err = fill.BoundedRegion(b, req.Seed, req.Tolerance, req.Selection)
	default:
		return nil, fmt.Errorf("artpaint: fill region for %v: %w", req.Op, ErrUnknownOp)
	}
	if err != nil {
		return nil, fmt.Errorf("artpaint: %v: %w", req.Op, err)
	}
	return region, nil
}
