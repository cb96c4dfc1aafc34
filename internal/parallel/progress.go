package parallel

import (
	"math"
	"sync/atomic"
)

// Accumulator sums progress deltas reported concurrently by band workers.
// The zero value is ready to use.
type Accumulator struct {
	bits atomic.Uint64
}

// Add adds delta and returns the new total.
func (a *Accumulator) Add(delta float64) float64 {
	for {
		old := a.bits.Load()
		sum := math.Float64frombits(old) + delta
		if a.bits.CompareAndSwap(old, math.Float64bits(sum)) {
			return sum
		}
	}
}

// Load returns the current total.
func (a *Accumulator) Load() float64 {
	return math.Float64frombits(a.bits.Load())
}

// Reset sets the total back to zero.
func (a *Accumulator) Reset() {
	a.bits.Store(0)
}

// Progress returns a ProgressFunc that adds into a.
func (a *Accumulator) Progress() ProgressFunc {
	return func(delta float64) { a.Add(delta) }
}
