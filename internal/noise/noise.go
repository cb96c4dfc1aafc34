// Package noise generates deterministic Perlin-style lattice noise.
//
// A Generator is immutable after construction and safe for concurrent use,
// so one instance can be shared by every band of a parallel effect.
package noise

import "math"

// TableSize is the number of precomputed lattice values.
const TableSize = 1024

const tableMask = TableSize - 1

// Axis multipliers used to spread lattice coordinates over the table. The
// z multiplier differs from y so that the axes stay decorrelated.
const (
	yStride = 57
	zStride = 61
)

// Generator sums octaves of interpolated lattice noise.
type Generator struct {
	persistence float64
	octaves     int
	ratio       float64
	table       [TableSize]float64
}

// Option configures a Generator.
type Option func(*Generator)

// WithFrequencyRatio sets the factor applied to the frequency between
// successive octaves. The default is 2. Non-positive ratios are ignored.
func WithFrequencyRatio(r float64) Option {
	return func(g *Generator) {
		if r > 0 {
			g.ratio = r
		}
	}
}

// New builds a generator. Each octave's amplitude is the previous one
// multiplied by persistence. An octave count below one is treated as one.
func New(persistence float64, octaves int, opts ...Option) *Generator {
	if octaves < 1 {
		octaves = 1
	}
	g := &Generator{
		persistence: persistence,
		octaves:     octaves,
		ratio:       2,
	}
	for _, opt := range opts {
		opt(g)
	}
	for i := range g.table {
		g.table[i] = lattice(int32(i))
	}
	return g
}

// lattice is the integer scramble that fills the table. int32 arithmetic
// wraps, which is part of the formula.
func lattice(n int32) float64 {
	n = (n << 13) ^ n
	v := (n*(n*n*15731+789221) + 1376312589) & 0x7fffffff
	return 1 - float64(v)/1073741824
}

// Persistence returns the amplitude factor between octaves.
func (g *Generator) Persistence() float64 { return g.persistence }

// Octaves returns the number of octaves summed.
func (g *Generator) Octaves() int { return g.octaves }

// FrequencyRatio returns the frequency factor between octaves.
func (g *Generator) FrequencyRatio() float64 { return g.ratio }

// Table returns a copy of the lattice table.
func (g *Generator) Table() [TableSize]float64 { return g.table }

func (g *Generator) at2(x, y int) float64 {
	return g.table[(x+y*yStride)&tableMask]
}

func (g *Generator) at3(x, y, z int) float64 {
	return g.table[(x+y*yStride+z*zStride)&tableMask]
}

// Noise2D returns the lattice noise at (x, y), linearly interpolated
// between the four surrounding lattice points.
func (g *Generator) Noise2D(x, y float64) float64 {
	fx, fy := math.Floor(x), math.Floor(y)
	ix, iy := int(fx), int(fy)
	tx, ty := x-fx, y-fy

	top := lerp(g.at2(ix, iy), g.at2(ix+1, iy), tx)
	bottom := lerp(g.at2(ix, iy+1), g.at2(ix+1, iy+1), tx)
	return lerp(top, bottom, ty)
}

// Noise3D is Noise2D with a third lattice axis.
func (g *Generator) Noise3D(x, y, z float64) float64 {
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)
	ix, iy, iz := int(fx), int(fy), int(fz)
	tx, ty, tz := x-fx, y-fy, z-fz

	plane := func(iz int) float64 {
		top := lerp(g.at3(ix, iy, iz), g.at3(ix+1, iy, iz), tx)
		bottom := lerp(g.at3(ix, iy+1, iz), g.at3(ix+1, iy+1, iz), tx)
		return lerp(top, bottom, ty)
	}
	return lerp(plane(iz), plane(iz+1), tz)
}

// PerlinNoise2D sums the octaves at (x, y) starting from baseFrequency and
// clamps the total to [-1, 1]. The sum is clamped, not rescaled by the
// total amplitude.
func (g *Generator) PerlinNoise2D(x, y, baseFrequency float64) float64 {
	var total float64
	freq, amp := baseFrequency, 1.0
	for range g.octaves {
		total += g.Noise2D(x*freq, y*freq) * amp
		freq *= g.ratio
		amp *= g.persistence
	}
	return clamp1(total)
}

// PerlinNoise3D is PerlinNoise2D with a third coordinate.
func (g *Generator) PerlinNoise3D(x, y, z, baseFrequency float64) float64 {
	var total float64
	freq, amp := baseFrequency, 1.0
	for range g.octaves {
		total += g.Noise3D(x*freq, y*freq, z*freq) * amp
		freq *= g.ratio
		amp *= g.persistence
	}
	return clamp1(total)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp1(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
