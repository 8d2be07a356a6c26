package alloc

import (
	"math/bits"
	"sync"
)

// Size class bounds for the pool. Requests above maxClassSize fall
// through to plain heap allocation.
const (
	minClassShift = 6  // 64 B
	maxClassShift = 16 // 64 KiB
	numClasses    = maxClassShift - minClassShift + 1
)

// Pool is a size-classed recycling allocator built on sync.Pool.
// Regions are rounded up to the next power-of-two class, so the slice
// returned by Alloc has length n but capacity equal to the class size;
// Free recovers the class from the capacity.
//
// Pool is safe for concurrent use by multiple goroutines, though each
// individual region still has a single owner at a time.
type Pool struct {
	classes [numClasses]sync.Pool
}

// NewPool creates a pool allocator with empty size classes.
func NewPool() *Pool {
	p := &Pool{}
	for i := range p.classes {
		size := 1 << (minClassShift + i)
		p.classes[i].New = func() interface{} {
			region := make([]byte, size)
			return &region
		}
	}
	return p
}

// classFor returns the smallest class index whose size fits n,
// or -1 if n exceeds the largest class.
func classFor(n int) int {
	if n <= 1<<minClassShift {
		return 0
	}
	if n > 1<<maxClassShift {
		return -1
	}
	return bits.Len(uint(n-1)) - minClassShift
}

// Alloc returns a zeroed region of n bytes drawn from the pool.
func (p *Pool) Alloc(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}

	class := classFor(n)
	if class < 0 {
		// Oversized request, bypass the classes.
		return make([]byte, n), nil
	}

	region := *p.classes[class].Get().(*[]byte)
	region = region[:cap(region)]
	for i := range region {
		region[i] = 0
	}
	return region[:n], nil
}

// Realloc moves the used prefix of region into a fresh n-byte region
// and recycles the old one. On failure the old region is untouched.
func (p *Pool) Realloc(region []byte, used, n int) ([]byte, error) {
	next, err := p.Alloc(n)
	if err != nil {
		return nil, err
	}
	if used > n {
		used = n
	}
	if used > 0 {
		copy(next, region[:used])
	}
	p.Free(region)
	return next, nil
}

// Free returns a region to its size class for reuse. Regions that do
// not map to a class (oversized or foreign) are left to the garbage
// collector.
func (p *Pool) Free(region []byte) {
	if region == nil {
		return
	}

	// The class is identified by capacity; anything that is not an
	// exact class size did not come from the pool.
	c := cap(region)
	if c < 1<<minClassShift || c > 1<<maxClassShift || c&(c-1) != 0 {
		return
	}
	class := bits.Len(uint(c)) - 1 - minClassShift

	full := region[:c]
	p.classes[class].Put(&full)
}
