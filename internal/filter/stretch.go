package filter

import (
	"context"
	"sync"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/image"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/logging"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/mask"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/parallel"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"
)

// Stretch expands each colour channel so that its smallest selected value
// becomes 0 and its largest 255. A channel whose values are all equal is
// left unchanged. Alpha is not stretched.
type Stretch struct{}

// channelRange holds per-channel minima and maxima in R, G, B order.
type channelRange struct {
	lo, hi [3]uint8
}

func newChannelRange() channelRange {
	return channelRange{lo: [3]uint8{255, 255, 255}}
}

func (c *channelRange) add(p pixel.Pixel) {
	for i, v := range [3]uint8{p.R(), p.G(), p.B()} {
		c.lo[i] = min(c.lo[i], v)
		c.hi[i] = max(c.hi[i], v)
	}
}

func (c *channelRange) merge(o channelRange) {
	for i := range 3 {
		c.lo[i] = min(c.lo[i], o.lo[i])
		c.hi[i] = max(c.hi[i], o.hi[i])
	}
}

// table builds the lookup for channel i.
func (c *channelRange) table(i int) [256]uint8 {
	var t [256]uint8
	lo, hi := int(c.lo[i]), int(c.hi[i])
	for v := range t {
		switch {
		case hi <= lo:
			t[v] = uint8(v)
		case v <= lo:
			t[v] = 0
		case v >= hi:
			t[v] = 255
		default:
			t[v] = uint8(((v-lo)*255 + (hi-lo)/2) / (hi - lo))
		}
	}
	return t
}

// Apply stretches the selected pixels of b. The range is measured over
// the selected pixels only.
func (s Stretch) Apply(ctx context.Context, b *image.Bitmap, sel mask.Selection, opts ...parallel.Option) error {
	region := mask.Clip(sel, b.Rect())
	if region.Empty() {
		return nil
	}
	active := mask.Active(sel)

	var (
		mu    sync.Mutex
		total = newChannelRange()
	)
	quiet := append(opts[:len(opts):len(opts)], parallel.WithProgress(nil))
	err := parallel.Run(ctx, region, func(band *parallel.Band) error {
		local := newChannelRange()
		err := band.Rows(func(y int) {
			for x := region.Min.X; x < region.Max.X; x++ {
				if active && !sel.Contains(x, y) {
					continue
				}
				local.add(b.PixelAt(x, y))
			}
		})
		mu.Lock()
		total.merge(local)
		mu.Unlock()
		return err
	}, quiet...)
	if err != nil {
		return wrapErr("stretch", err)
	}
	logging.Logger().Debug("filter: stretch", "lo", total.lo, "hi", total.hi)

	tr, tg, tb := total.table(0), total.table(1), total.table(2)
	return perPixel(ctx, "stretch", b, sel, func(_, _ int, p pixel.Pixel) pixel.Pixel {
		return pixel.Pack(tr[p.R()], tg[p.G()], tb[p.B()], p.A())
	}, opts)
}
