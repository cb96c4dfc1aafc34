package image

import "sync"

// Pool is a thread-safe pool of scratch bitmaps.
//
// Pool groups bitmaps by their dimensions so that operations which need an
// intermediate buffer of the same size on every call (the horizontal pass
// of a two-pass resample, rotation previews) can reuse it.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Bitmap
	maxSize int // max bitmaps per bucket
}

// poolKey identifies a bucket of identically sized bitmaps.
type poolKey struct {
	width  int
	height int
}

// NewPool creates a pool retaining at most maxPerBucket bitmaps per size.
// A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Bitmap),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed bitmap of the given size, reusing a pooled one when
// available. Allocation errors from New are returned unchanged.
func (p *Pool) Get(width, height int) (*Bitmap, error) {
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		b := bucket[n-1]
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()

		clear(b.data)
		return b, nil
	}
	p.mu.Unlock()

	return New(width, height)
}

// Put returns a bitmap to the pool. Nil bitmaps and bitmaps beyond the
// bucket limit are dropped.
func (p *Pool) Put(b *Bitmap) {
	if b == nil {
		return
	}
	key := poolKey{width: b.width, height: b.height}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, b)
}

// Len returns the number of pooled bitmaps of the given size.
func (p *Pool) Len(width, height int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[poolKey{width: width, height: height}])
}

// defaultPool is the package-level pool for scratch buffers.
var defaultPool = NewPool(4)

// GetScratch retrieves a bitmap from the default pool.
func GetScratch(width, height int) (*Bitmap, error) {
	return defaultPool.Get(width, height)
}

// PutScratch returns a bitmap to the default pool.
func PutScratch(b *Bitmap) {
	defaultPool.Put(b)
}
