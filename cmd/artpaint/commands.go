package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	artpaint "github.com/HaikuArchives/ArtPaint-sub001"
)

func (a *app) flipCmd() *cobra.Command {
	var vertical bool
	cmd := &cobra.Command{
		Use:   "flip",
		Short: "Mirror the whole image horizontally or vertically",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(_ *artpaint.Bitmap, req *artpaint.Request) error {
				req.Op = artpaint.OpFlipHorizontal
				if vertical {
					req.Op = artpaint.OpFlipVertical
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&vertical, "vertical", false, "flip top to bottom instead of left to right")
	return cmd
}

func (a *app) rotateCmd() *cobra.Command {
	var (
		angle float64
		pivot pointValue
		quart string
	)
	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Rotate by an arbitrary angle about a pivot, or by a quarter turn",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(b *artpaint.Bitmap, req *artpaint.Request) error {
				switch quart {
				case "cw":
					req.Op = artpaint.OpRotate90CW
					return nil
				case "ccw":
					req.Op = artpaint.OpRotate90CCW
					return nil
				case "":
				default:
					return fmt.Errorf("--quarter must be cw or ccw, got %q", quart)
				}
				req.Op = artpaint.OpRotate
				req.Angle = angle
				req.Pivot = artpaint.Pt(b.Width()/2, b.Height()/2)
				if pivot.set {
					req.Pivot = pivot.p
				}
				return nil
			})
		},
	}
	f := cmd.Flags()
	f.Float64VarP(&angle, "angle", "a", 0, "clockwise angle in degrees")
	f.Var(&pivot, "pivot", "rotation centre (default: image centre)")
	f.StringVar(&quart, "quarter", "", "rotate the whole image a quarter turn: cw or ccw")
	cmd.MarkFlagsMutuallyExclusive("angle", "quarter")
	return cmd
}

func (a *app) cropCmd() *cobra.Command {
	var edges edgesValue
	cmd := &cobra.Command{
		Use:   "crop",
		Short: "Cut the image to inclusive edges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(_ *artpaint.Bitmap, req *artpaint.Request) error {
				req.Op = artpaint.OpCrop
				req.Edges = edges.e
				return nil
			})
		},
	}
	cmd.Flags().Var(&edges, "edges", "inclusive left,top,right,bottom")
	_ = cmd.MarkFlagRequired("edges")
	return cmd
}

func (a *app) scaleCmd() *cobra.Command {
	var (
		size   sizeValue
		method = methodValue{m: artpaint.Bilinear}
	)
	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Resample the image to a new size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(_ *artpaint.Bitmap, req *artpaint.Request) error {
				req.Op = artpaint.OpScale
				req.Width, req.Height = size.w, size.h
				req.Method = method.m
				return nil
			})
		},
	}
	cmd.Flags().Var(&size, "size", "target size")
	cmd.Flags().VarP(&method, "method", "m", "nearest, bilinear, bicubic, catmull-rom, b-spline or mitchell")
	_ = cmd.MarkFlagRequired("size")
	return cmd
}

func (a *app) canvasCmd() *cobra.Command {
	var (
		edges  edgesValue
		method = methodValue{m: artpaint.Bilinear}
	)
	cmd := &cobra.Command{
		Use:   "canvas",
		Short: "Scale the image into edges on a canvas reaching to right,bottom",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(_ *artpaint.Bitmap, req *artpaint.Request) error {
				req.Op = artpaint.OpScaleCanvas
				req.Edges = edges.e
				req.Method = method.m
				return nil
			})
		},
	}
	cmd.Flags().Var(&edges, "edges", "inclusive left,top,right,bottom of the placed image")
	cmd.Flags().VarP(&method, "method", "m", "resampling method")
	_ = cmd.MarkFlagRequired("edges")
	return cmd
}

func (a *app) translateCmd() *cobra.Command {
	var by pointValue
	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Move the selected pixels by an offset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(_ *artpaint.Bitmap, req *artpaint.Request) error {
				req.Op = artpaint.OpTranslate
				req.DX, req.DY = by.p.X, by.p.Y
				return nil
			})
		},
	}
	cmd.Flags().Var(&by, "by", "offset dx,dy")
	_ = cmd.MarkFlagRequired("by")
	return cmd
}

func (a *app) fillCmd() *cobra.Command {
	var (
		seed    pointValue
		color   = colorValue{p: artpaint.Black}
		tol     uint8
		bounded bool
		maskOut string
	)
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Flood fill from a seed pixel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(b *artpaint.Bitmap, req *artpaint.Request) error {
				req.Op = artpaint.OpFloodFill
				if bounded {
					req.Op = artpaint.OpBoundedFill
				}
				req.Seed = seed.p
				req.Color = color.p
				req.Tolerance = tol
				if maskOut == "" {
					return nil
				}
				return writeRegion(maskOut, b, *req)
			})
		},
	}
	f := cmd.Flags()
	f.Var(&seed, "seed", "seed pixel")
	f.VarP(&color, "color", "c", "fill colour")
	f.Uint8VarP(&tol, "tolerance", "t", 0, "per-channel colour tolerance")
	f.BoolVar(&bounded, "bounded", false, "fill every matching pixel, connected or not")
	f.StringVar(&maskOut, "mask-out", "", "also write the filled region as a 1-bit PNG")
	_ = cmd.MarkFlagRequired("seed")
	return cmd
}

// writeRegion saves the pixels req would fill as a 1-bit PNG.
func writeRegion(path string, b *artpaint.Bitmap, req artpaint.Request) (err error) {
	region, err := artpaint.FillRegion(b, req)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return region.EncodePNG(f)
}

func (a *app) gradientCmd() *cobra.Command {
	var (
		shape    string
		from, to pointValue
		colorA   = colorValue{p: artpaint.White}
		colorB   = colorValue{p: artpaint.Black}
		seed     pointValue
		tol      uint8
	)
	cmd := &cobra.Command{
		Use:   "gradient",
		Short: "Paint a linear, radial, square or conic gradient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(b *artpaint.Bitmap, req *artpaint.Request) error {
				s, err := artpaint.ParseShape(shape)
				if err != nil {
					return err
				}
				req.Op = artpaint.OpGradientFill
				req.Shape = s
				req.Start, req.End = from.p, to.p
				req.ColorA, req.ColorB = colorA.p, colorB.p
				if !seed.set {
					return nil
				}
				region, err := artpaint.FillRegion(b, artpaint.Request{
					Op:        artpaint.OpFloodFill,
					Seed:      seed.p,
					Tolerance: tol,
					Selection: req.Selection,
				})
				if err != nil {
					return err
				}
				req.Region = region
				return nil
			})
		},
	}
	f := cmd.Flags()
	f.StringVarP(&shape, "shape", "s", "linear", "linear, radial, square or conic")
	f.Var(&from, "from", "gradient start, painted with --color-b")
	f.Var(&to, "to", "gradient end, painted with --color-a")
	f.Var(&colorA, "color-a", "colour at the end")
	f.Var(&colorB, "color-b", "colour at the start")
	f.Var(&seed, "seed", "restrict the gradient to the area a flood fill from this pixel would cover")
	f.Uint8VarP(&tol, "tolerance", "t", 0, "tolerance for --seed")
	cmd.MarkFlagsRequiredTogether("from", "to")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Describe the input image",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			b, err := a.load()
			if err != nil {
				return err
			}
			newPrinter().info(a.stdout, a.input, b)
			return nil
		},
	}
}
