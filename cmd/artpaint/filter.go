package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	artpaint "github.com/HaikuArchives/ArtPaint-sub001"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/filter"
)

// filterParams are the flags shared by the filter subcommand.
type filterParams struct {
	radius     float64
	factor     float64
	amount     float64
	hue        float64
	saturation float64
	value      float64
	plate      string
	pattern    string
	fg, bg     colorValue
	frequency  float64
	octaves    int
}

// filterBuilders maps filter names to constructors.
var filterBuilders = map[string]func(p *filterParams) (artpaint.Effect, error){
	"blur": func(p *filterParams) (artpaint.Effect, error) {
		return filter.NewBlur(p.radius), nil
	},
	"brightness": func(p *filterParams) (artpaint.Effect, error) {
		return filter.Brightness(float32(p.factor)), nil
	},
	"contrast": func(p *filterParams) (artpaint.Effect, error) {
		return filter.Contrast(float32(p.factor)), nil
	},
	"saturation": func(p *filterParams) (artpaint.Effect, error) {
		return filter.Saturation(float32(p.factor)), nil
	},
	"opacity": func(p *filterParams) (artpaint.Effect, error) {
		return filter.Opacity(float32(p.factor)), nil
	},
	"grayscale": func(*filterParams) (artpaint.Effect, error) {
		return filter.Grayscale(), nil
	},
	"sepia": func(*filterParams) (artpaint.Effect, error) {
		return filter.Sepia(), nil
	},
	"invert": func(*filterParams) (artpaint.Effect, error) {
		return filter.Invert(), nil
	},
	"hue-rotate": func(p *filterParams) (artpaint.Effect, error) {
		return filter.HueRotate(float32(p.hue)), nil
	},
	"tint": func(p *filterParams) (artpaint.Effect, error) {
		return filter.Tint(p.fg.p), nil
	},
	"hsv": func(p *filterParams) (artpaint.Effect, error) {
		return &filter.HSVAdjust{Hue: p.hue, Saturation: p.saturation, Value: p.value}, nil
	},
	"lightness": func(p *filterParams) (artpaint.Effect, error) {
		return &filter.Lightness{Delta: p.amount}, nil
	},
	"noise": func(p *filterParams) (artpaint.Effect, error) {
		o := filter.NewNoiseOverlay(p.amount)
		if p.frequency > 0 {
			o.Frequency = p.frequency
		}
		if p.octaves > 0 {
			o.Octaves = p.octaves
		}
		return o, nil
	},
	"texture": func(p *filterParams) (artpaint.Effect, error) {
		pat, err := filter.ParsePattern(p.pattern)
		if err != nil {
			return nil, err
		}
		t := filter.NewTexture(pat, p.fg.p, p.bg.p)
		if p.frequency > 0 {
			t.Frequency = p.frequency
		}
		if p.octaves > 0 {
			t.Octaves = p.octaves
		}
		return t, nil
	},
	"separate": func(p *filterParams) (artpaint.Effect, error) {
		plate, err := filter.ParsePlate(p.plate)
		if err != nil {
			return nil, err
		}
		return &filter.Separate{Plate: plate}, nil
	},
	"stretch": func(*filterParams) (artpaint.Effect, error) {
		return filter.Stretch{}, nil
	},
}

func filterNames() []string {
	names := make([]string, 0, len(filterBuilders))
	for n := range filterBuilders {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// buildEffect resolves a filter by name.
func buildEffect(name string, p *filterParams) (artpaint.Effect, error) {
	build, ok := filterBuilders[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown filter %q (available: %s)", name, strings.Join(filterNames(), ", "))
	}
	return build(p)
}

func (a *app) filterCmd() *cobra.Command {
	p := &filterParams{
		fg: colorValue{p: artpaint.White},
		bg: colorValue{p: artpaint.Black},
	}
	cmd := &cobra.Command{
		Use:       "filter NAME",
		Short:     "Apply a filter: " + strings.Join(filterNames(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: filterNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			effect, err := buildEffect(args[0], p)
			if err != nil {
				return err
			}
			return a.run(cmd, func(_ *artpaint.Bitmap, req *artpaint.Request) error {
				req.Op = artpaint.OpFilter
				req.Effect = effect
				return nil
			})
		},
	}
	f := cmd.Flags()
	f.Float64VarP(&p.radius, "radius", "r", 2, "blur radius in pixels")
	f.Float64Var(&p.factor, "factor", 1, "brightness, contrast, saturation or opacity factor")
	f.Float64Var(&p.amount, "amount", 20, "noise amount or lightness delta")
	f.Float64Var(&p.hue, "hue", 0, "hue rotation in degrees")
	f.Float64Var(&p.saturation, "saturation", 1, "hsv saturation factor")
	f.Float64Var(&p.value, "value", 1, "hsv value factor")
	f.StringVar(&p.plate, "plate", "key", "separation plate: cyan, magenta, yellow or key")
	f.StringVar(&p.pattern, "pattern", "clouds", "texture pattern: clouds, marble or wood")
	f.Var(&p.fg, "fg", "texture foreground or tint colour")
	f.Var(&p.bg, "bg", "texture background colour")
	f.Float64Var(&p.frequency, "frequency", 0, "noise base frequency (default per filter)")
	f.IntVar(&p.octaves, "octaves", 0, "noise octaves (default per filter)")
	return cmd
}
