package image

import "sync"

// Pool is a thread-safe pool for reusing 8-bit sample planes.
//
// Pool groups planes by their dimensions so that history snapshots of one
// canvas can recycle the buffers of evicted snapshots instead of allocating.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][][]byte
	maxSize int // max planes per bucket
}

// poolKey identifies a bucket of identically sized planes.
type poolKey struct {
	width  int
	height int
}

// NewPool creates a new plane pool with the given maximum planes per bucket.
// A maxPerBucket of 0 means unlimited (use with caution).
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][][]byte),
		maxSize: maxPerBucket,
	}
}

// Get retrieves a width*height plane from the pool or allocates a new one.
// Reused planes are cleared before they are returned.
// Returns nil for non-positive dimensions.
func (p *Pool) Get(width, height int) []byte {
	if width <= 0 || height <= 0 {
		return nil
	}
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		plane := bucket[len(bucket)-1]
		bucket[len(bucket)-1] = nil
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		clear(plane)
		return plane
	}
	p.mu.Unlock()

	return make([]byte, width*height)
}

// Put returns a plane to the pool for reuse.
// Planes whose length does not match width*height, nil planes, and planes
// arriving at a full bucket are discarded.
// The caller must not use plane after Put.
func (p *Pool) Put(width, height int, plane []byte) {
	if plane == nil || width <= 0 || height <= 0 || len(plane) != width*height {
		return
	}
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, plane)
}

// Len returns the number of pooled planes of the given size.
func (p *Pool) Len(width, height int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[poolKey{width: width, height: height}])
}

// Reset drops every pooled plane.
func (p *Pool) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	clear(p.buckets)
}
