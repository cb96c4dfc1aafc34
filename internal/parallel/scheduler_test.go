package parallel

import (
	"context"
	"errors"
	"image"
	"math"
	"sync/atomic"
	"testing"
)

func TestSchedulerRun(t *testing.T) {
	s := NewScheduler(3)
	defer s.Close()

	region := image.Rect(0, 10, 5, 45)
	var hits [45]atomic.Int32
	var acc Accumulator

	for range 3 {
		acc.Reset()
		err := s.Run(context.Background(), region, func(b *Band) error {
			return b.Rows(func(y int) { hits[y].Add(1) })
		}, WithProgress(acc.Progress()))
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if got := acc.Load(); math.Abs(got-100) > 1e-9 {
			t.Errorf("progress total = %v, want 100", got)
		}
	}
	for y := range 45 {
		want := int32(0)
		if y >= 10 {
			want = 3
		}
		if got := hits[y].Load(); got != want {
			t.Errorf("row %d visited %d times, want %d", y, got, want)
		}
	}
}

func TestSchedulerKernelError(t *testing.T) {
	s := NewScheduler(4)
	defer s.Close()

	errBoom := errors.New("boom")
	err := s.Run(context.Background(), image.Rect(0, 0, 2, 80), func(b *Band) error {
		if b.Index == 2 {
			return errBoom
		}
		return b.Rows(func(int) {})
	})
	if !errors.Is(err, errBoom) {
		t.Errorf("Run error = %v, want errBoom", err)
	}
}

func TestSchedulerCanceled(t *testing.T) {
	s := NewScheduler(2)
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Run(ctx, image.Rect(0, 0, 2, 20), func(*Band) error { return nil })
	if !errors.Is(err, ErrCanceled) {
		t.Errorf("Run error = %v, want ErrCanceled", err)
	}
}

func TestSchedulerClosed(t *testing.T) {
	s := NewScheduler(2)
	s.Close()
	s.Close()

	err := s.Run(context.Background(), image.Rect(0, 0, 2, 2), func(*Band) error { return nil })
	if !errors.Is(err, ErrClosed) {
		t.Errorf("Run error = %v, want ErrClosed", err)
	}
}
