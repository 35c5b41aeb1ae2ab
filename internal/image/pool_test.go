package image

import (
	"sync"
	"testing"
)

func TestNewPool(t *testing.T) {
	tests := []struct {
		name         string
		maxPerBucket int
	}{
		{"zero means unlimited", 0},
		{"positive limit", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(tt.maxPerBucket)
			if pool == nil {
				t.Fatal("NewPool returned nil")
			}
			if pool.maxSize != tt.maxPerBucket {
				t.Errorf("maxSize = %d, want %d", pool.maxSize, tt.maxPerBucket)
			}
			if pool.buckets == nil {
				t.Error("buckets map is nil")
			}
		})
	}
}

func TestPool_GetPut(t *testing.T) {
	pool := NewPool(4)

	plane := pool.Get(10, 5)
	if len(plane) != 50 {
		t.Fatalf("len(Get(10, 5)) = %d, want 50", len(plane))
	}
	for i := range plane {
		plane[i] = 0xAA
	}
	pool.Put(10, 5, plane)
	if pool.Len(10, 5) != 1 {
		t.Fatalf("Len = %d after Put, want 1", pool.Len(10, 5))
	}

	reused := pool.Get(10, 5)
	if &reused[0] != &plane[0] {
		t.Error("Get did not reuse the pooled plane")
	}
	for i, v := range reused {
		if v != 0 {
			t.Fatalf("reused plane sample %d = %#x, want cleared", i, v)
		}
	}
	if pool.Len(10, 5) != 0 {
		t.Errorf("Len = %d after Get, want 0", pool.Len(10, 5))
	}
}

func TestPool_BucketsBySize(t *testing.T) {
	pool := NewPool(4)
	pool.Put(4, 4, make([]byte, 16))
	pool.Put(2, 8, make([]byte, 16))

	if pool.Len(4, 4) != 1 || pool.Len(2, 8) != 1 {
		t.Errorf("Len(4,4)=%d Len(2,8)=%d, want 1 and 1", pool.Len(4, 4), pool.Len(2, 8))
	}
	if pool.Len(8, 2) != 0 {
		t.Error("plane leaked into a bucket with the same area")
	}
}

func TestPool_PutRejects(t *testing.T) {
	pool := NewPool(1)

	pool.Put(4, 4, nil)
	pool.Put(4, 4, make([]byte, 15))
	pool.Put(0, 4, make([]byte, 0))
	if pool.Len(4, 4) != 0 {
		t.Fatalf("Len = %d, invalid planes should be discarded", pool.Len(4, 4))
	}

	pool.Put(4, 4, make([]byte, 16))
	pool.Put(4, 4, make([]byte, 16))
	if pool.Len(4, 4) != 1 {
		t.Errorf("Len = %d, want 1 (bucket limit)", pool.Len(4, 4))
	}
}

func TestPool_GetInvalid(t *testing.T) {
	pool := NewPool(0)
	if pool.Get(0, 3) != nil || pool.Get(3, -1) != nil {
		t.Error("Get with non-positive dimensions should return nil")
	}
}

func TestPool_Reset(t *testing.T) {
	pool := NewPool(0)
	for range 3 {
		pool.Put(2, 2, make([]byte, 4))
	}
	pool.Reset()
	if pool.Len(2, 2) != 0 {
		t.Errorf("Len = %d after Reset, want 0", pool.Len(2, 2))
	}
}

func TestPool_Concurrent(t *testing.T) {
	pool := NewPool(8)
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				p := pool.Get(16, 16)
				if len(p) != 256 {
					t.Errorf("len = %d, want 256", len(p))
					return
				}
				pool.Put(16, 16, p)
			}
		}()
	}
	wg.Wait()
	if n := pool.Len(16, 16); n > 8 {
		t.Errorf("Len = %d exceeds bucket limit 8", n)
	}
}

func BenchmarkPool_GetPut(b *testing.B) {
	pool := NewPool(4)
	b.ReportAllocs()
	for b.Loop() {
		p := pool.Get(256, 256)
		pool.Put(256, 256, p)
	}
}
