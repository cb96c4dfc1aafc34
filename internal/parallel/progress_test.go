package parallel

import (
	"sync"
	"testing"
)

func TestAccumulatorConcurrentAdds(t *testing.T) {
	var acc Accumulator
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				acc.Add(0.25)
			}
		}()
	}
	wg.Wait()

	// 0.25 is exact in binary, so no rounding drift is expected.
	if got := acc.Load(); got != 4000 {
		t.Errorf("Load() = %v, want 4000", got)
	}

	acc.Reset()
	if got := acc.Load(); got != 0 {
		t.Errorf("Load() after Reset = %v", got)
	}
}
