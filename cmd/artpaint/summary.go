package main

import (
	stdimage "image"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	artpaint "github.com/HaikuArchives/ArtPaint-sub001"
)

// printer formats user-facing output with locale-aware number grouping.
type printer struct {
	*message.Printer
}

// newPrinter picks the locale from LC_ALL, LC_MESSAGES or LANG, falling
// back to English.
func newPrinter() printer {
	return printer{message.NewPrinter(localeTag())}
}

func localeTag() language.Tag {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(env)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		v, _, _ = strings.Cut(v, ".")
		if tag, err := language.Parse(strings.ReplaceAll(v, "_", "-")); err == nil {
			return tag
		}
	}
	return language.English
}

// summary reports the operation, the size change and the time taken.
func (p printer) summary(w io.Writer, op artpaint.Op, before, after stdimage.Point, d time.Duration) {
	p.Fprintf(w, "%s: %d×%d → %d×%d (%d pixels) in %v\n",
		op, before.X, before.Y, after.X, after.Y, after.X*after.Y, d.Round(time.Microsecond))
}

// info describes a bitmap.
func (p printer) info(w io.Writer, path string, b *artpaint.Bitmap) {
	size := b.Rect().Size()
	opaque, transparent := 0, 0
	for y := range size.Y {
		for x := range size.X {
			switch b.PixelAt(x, y).A() {
			case 255:
				opaque++
			case 0:
				transparent++
			}
		}
	}
	p.Fprintf(w, "%s: %d×%d, %d pixels, %d bytes\n", path, size.X, size.Y, size.X*size.Y, b.ByteSize())
	p.Fprintf(w, "  opaque %d, transparent %d, translucent %d\n",
		opaque, transparent, size.X*size.Y-opaque-transparent)
	if r := artpaint.MaskFromImage(b).Bounds(); !r.Empty() {
		p.Fprintf(w, "  visible bounds %v\n", r)
	}
}
