package image

import (
	"sync"
	"testing"

	"github.com/HaikuArchives/ArtPaint-sub001/internal/pixel"
)

func TestPool_GetPut(t *testing.T) {
	pool := NewPool(2)

	b, err := pool.Get(8, 4)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	b.Fill(pixel.White)
	pool.Put(b)
	if pool.Len(8, 4) != 1 {
		t.Fatalf("Len = %d, want 1", pool.Len(8, 4))
	}

	reused, err := pool.Get(8, 4)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if reused != b {
		t.Error("expected the pooled bitmap to be reused")
	}
	if reused.PixelAt(3, 3) != pixel.Transparent {
		t.Error("reused bitmap should be cleared")
	}
}

func TestPool_BucketLimit(t *testing.T) {
	pool := NewPool(1)
	a, _ := New(2, 2)
	b, _ := New(2, 2)
	pool.Put(a)
	pool.Put(b)
	pool.Put(nil)
	if got := pool.Len(2, 2); got != 1 {
		t.Errorf("Len = %d, want 1", got)
	}
}

func TestPool_InvalidSize(t *testing.T) {
	if _, err := NewPool(0).Get(0, 5); err == nil {
		t.Error("Get(0,5) should fail")
	}
}

func TestPool_Concurrent(t *testing.T) {
	pool := NewPool(0)
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				b, err := pool.Get(16, 16)
				if err != nil {
					t.Error(err)
					return
				}
				b.SetPixel(0, 0, pixel.White)
				pool.Put(b)
			}
		}()
	}
	wg.Wait()
}

func TestDefaultScratch(t *testing.T) {
	b, err := GetScratch(3, 3)
	if err != nil {
		t.Fatalf("GetScratch: %v", err)
	}
	PutScratch(b)
}
