package main

import (
	"fmt"
	stdimage "image"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	artpaint "github.com/HaikuArchives/ArtPaint-sub001"
)

// parseInts splits s on commas (or a single 'x') into exactly n integers.
func parseInts(s string, n int) ([]int, error) {
	sep := ","
	if n == 2 && !strings.Contains(s, ",") {
		sep = "x"
	}
	parts := strings.Split(s, sep)
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated integers, got %q", n, s)
	}
	out := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}

// pointValue is an "x,y" flag.
type pointValue struct {
	p   stdimage.Point
	set bool
}

func (v *pointValue) String() string {
	if !v.set {
		return ""
	}
	return fmt.Sprintf("%d,%d", v.p.X, v.p.Y)
}

func (v *pointValue) Set(s string) error {
	n, err := parseInts(s, 2)
	if err != nil {
		return err
	}
	v.p, v.set = stdimage.Pt(n[0], n[1]), true
	return nil
}

func (*pointValue) Type() string { return "x,y" }

// sizeValue is a "WxH" or "W,H" flag.
type sizeValue struct {
	w, h int
}

func (v *sizeValue) String() string {
	if v.w == 0 && v.h == 0 {
		return ""
	}
	return fmt.Sprintf("%dx%d", v.w, v.h)
}

func (v *sizeValue) Set(s string) error {
	n, err := parseInts(s, 2)
	if err != nil {
		return err
	}
	if n[0] <= 0 || n[1] <= 0 {
		return fmt.Errorf("size %q must be positive", s)
	}
	v.w, v.h = n[0], n[1]
	return nil
}

func (*sizeValue) Type() string { return "WxH" }

// rectValue is an "x0,y0,x1,y1" half-open rectangle flag.
type rectValue struct {
	r   stdimage.Rectangle
	set bool
}

func (v *rectValue) String() string {
	if !v.set {
		return ""
	}
	return fmt.Sprintf("%d,%d,%d,%d", v.r.Min.X, v.r.Min.Y, v.r.Max.X, v.r.Max.Y)
}

func (v *rectValue) Set(s string) error {
	n, err := parseInts(s, 4)
	if err != nil {
		return err
	}
	v.r, v.set = stdimage.Rect(n[0], n[1], n[2], n[3]), true
	return nil
}

func (*rectValue) Type() string { return "x0,y0,x1,y1" }

// edgesValue is an inclusive "left,top,right,bottom" flag.
type edgesValue struct {
	e   artpaint.Edges
	set bool
}

func (v *edgesValue) String() string {
	if !v.set {
		return ""
	}
	return fmt.Sprintf("%d,%d,%d,%d", v.e.Left, v.e.Top, v.e.Right, v.e.Bottom)
}

func (v *edgesValue) Set(s string) error {
	n, err := parseInts(s, 4)
	if err != nil {
		return err
	}
	v.e = artpaint.Edges{Left: n[0], Top: n[1], Right: n[2], Bottom: n[3]}
	v.set = true
	return nil
}

func (*edgesValue) Type() string { return "l,t,r,b" }

// colorValue accepts "#rrggbb", "#rrggbbaa" or "r,g,b[,a]".
type colorValue struct {
	p artpaint.Pixel
}

func (v *colorValue) String() string {
	r, g, b, a := v.p.RGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

func (v *colorValue) Set(s string) error {
	p, err := parseColor(s)
	if err != nil {
		return err
	}
	v.p = p
	return nil
}

func (*colorValue) Type() string { return "color" }

func parseColor(s string) (artpaint.Pixel, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 6 && len(hex) != 8 {
			return 0, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
		}
		if len(hex) == 6 {
			hex += "ff"
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("color %q: %w", s, err)
		}
		return artpaint.Pack(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return 0, fmt.Errorf("color %q: want r,g,b or r,g,b,a", s)
	}
	c := [4]uint8{3: 255}
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return 0, fmt.Errorf("color %q: %w", s, err)
		}
		c[i] = uint8(v)
	}
	return artpaint.Pack(c[0], c[1], c[2], c[3]), nil
}

// methodValue is a resampling method flag.
type methodValue struct {
	m artpaint.Method
}

func (v *methodValue) String() string { return v.m.String() }

func (v *methodValue) Set(s string) error {
	m, err := artpaint.ParseMethod(s)
	if err != nil {
		return err
	}
	v.m = m
	return nil
}

func (*methodValue) Type() string { return "method" }

var (
	_ pflag.Value = (*pointValue)(nil)
	_ pflag.Value = (*sizeValue)(nil)
	_ pflag.Value = (*rectValue)(nil)
	_ pflag.Value = (*edgesValue)(nil)
	_ pflag.Value = (*colorValue)(nil)
	_ pflag.Value = (*methodValue)(nil)
)
