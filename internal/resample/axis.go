package resample

import (
	"math"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/cache"
	"github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"
)

// tap is the weighted source window of one destination sample. Indices
// are already clamped to the source, so edge samples repeat.
type tap struct {
	index  [4]int
	weight [4]float64
	n      int
}

// plan maps one axis of srcLen samples onto dstLen samples.
type plan struct {
	srcLen   int
	dstLen   int
	identity bool
	taps     []tap
}

// newPlan precomputes the windows for every destination index. The centre
// of destination sample i maps to source coordinate (i+0.5)*src/dst - 0.5.
func newPlan(srcLen, dstLen int, m Method) *plan {
	p := &plan{srcLen: srcLen, dstLen: dstLen}
	if srcLen == dstLen {
		p.identity = true
		return p
	}
	p.taps = make([]tap, dstLen)
	ratio := float64(srcLen) / float64(dstLen)
	last := srcLen - 1
	b, c, cubic := m.Cubic()

	for i := range p.taps {
		t := &p.taps[i]
		center := (float64(i)+0.5)*ratio - 0.5

		switch {
		case m == NearestNeighbor:
			t.n = 1
			t.index[0] = clampIndex(int(math.Floor(center+0.5)), last)
			t.weight[0] = 1

		case cubic:
			x0 := int(math.Floor(center))
			f := center - float64(x0)
			t.n = 4
			sum := 0.0
			for k := range 4 {
				w := cubicWeight(b, c, f-float64(k-1))
				t.index[k] = clampIndex(x0+k-1, last)
				t.weight[k] = w
				sum += w
			}
			if sum != 0 && sum != 1 {
				for k := range 4 {
					t.weight[k] /= sum
				}
			}

		default: // Bilinear
			x0 := int(math.Floor(center))
			f := center - float64(x0)
			t.n = 2
			t.index[0] = clampIndex(x0, last)
			t.index[1] = clampIndex(x0+1, last)
			t.weight[0] = 1 - f
			t.weight[1] = f
		}
	}
	return p
}

type planKey struct {
	srcLen, dstLen int
	method         Method
}

// plans holds recently used plans. A plan is immutable once built, so one
// instance is shared by every band and every caller.
var plans = cache.New[planKey, *plan](64)

// planFor returns the cached plan for the mapping, building it on a miss.
func planFor(srcLen, dstLen int, m Method) *plan {
	return plans.GetOrCreate(planKey{srcLen, dstLen, m}, func() *plan {
		return newPlan(srcLen, dstLen, m)
	})
}

func clampIndex(i, last int) int {
	if i < 0 {
		return 0
	}
	if i > last {
		return last
	}
	return i
}

// apply resamples src (srcLen samples) into dst (dstLen samples).
func (p *plan) apply(dst, src []pixel.Pixel) {
	if p.identity {
		copy(dst, src)
		return
	}
	for i := range p.taps {
		t := &p.taps[i]
		if t.n == 1 {
			dst[i] = src[t.index[0]]
			continue
		}
		var acc [4]float64
		for k := range t.n {
			s := src[t.index[k]]
			w := t.weight[k]
			acc[0] += float64(s.B()) * w
			acc[1] += float64(s.G()) * w
			acc[2] += float64(s.R()) * w
			acc[3] += float64(s.A()) * w
		}
		dst[i] = packRounded(acc)
	}
}

// packRounded converts accumulated B, G, R, A sums back to a pixel.
func packRounded(acc [4]float64) pixel.Pixel {
	return pixel.Pack(
		pixel.ClampByte(acc[2]+0.5),
		pixel.ClampByte(acc[1]+0.5),
		pixel.ClampByte(acc[0]+0.5),
		pixel.ClampByte(acc[3]+0.5),
	)
}

// ScaleAxis resamples a line of pixels to exactly dstLen samples.
// A dstLen equal to len(src) returns an unchanged copy; an empty src or a
// non-positive dstLen returns nil.
func ScaleAxis(src []pixel.Pixel, dstLen int, m Method) []pixel.Pixel {
	if len(src) == 0 || dstLen <= 0 {
		return nil
	}
	dst := make([]pixel.Pixel, dstLen)
	planFor(len(src), dstLen, m).apply(dst, src)
	return dst
}

// ScaleAxisInto resamples src into all of dst. It does nothing when either
// slice is empty.
func ScaleAxisInto(dst, src []pixel.Pixel, m Method) {
	if len(src) == 0 || len(dst) == 0 {
		return
	}
	planFor(len(src), len(dst), m).apply(dst, src)
}
