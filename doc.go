// Package artpaint is the pixel core of a raster paint program: flips,
// rotations, crops and scaling, translation, flood and gradient fills,
// and a set of per-pixel filters, all applied to 32-bit BGRA bitmaps.
//
// # Overview
//
// Every operation respects an optional Selection. A nil or empty
// selection means the whole bitmap; otherwise only selected pixels are
// written. Long-running operations split the bitmap into horizontal bands
// that run in parallel, report progress, and stop early when their
// context is canceled.
//
// # Quick Start
//
//	b, err := artpaint.Load("in.png")
//	if err != nil {
//		return err
//	}
//	out, err := artpaint.Apply(ctx, b, artpaint.Request{
//		Op:     artpaint.OpRotate,
//		Angle:  30,
//		Pivot:  artpaint.Pt(b.Width()/2, b.Height()/2),
//	})
//	if err != nil {
//		return err
//	}
//	return out.Save("out.png")
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Positive angles rotate clockwise on screen
//
// # Pixel Format
//
// Pixels are straight-alpha BGRA: byte 0 is blue and byte 3 alpha in
// memory on every host. Pixels with no source (outside a rotated image,
// canvas padding) are transparent white.
//
// # Logging
//
// The package is silent by default. Call SetLogger to receive debug
// diagnostics and warnings about degenerate input.
package artpaint
