package alloc

import (
	"fmt"
	"sync"
)

// Limit wraps another Allocator with a byte budget. Requests that would
// push the outstanding total over the budget fail with
// ErrAllocationFailure and leave the inner allocator untouched.
//
// Accounting is by requested length, so the budget bounds the bytes the
// caller can hold, not the (possibly rounded-up) bytes the inner
// allocator reserves.
type Limit struct {
	inner  Allocator
	budget int

	mu   sync.Mutex
	used int
}

// NewLimit creates a budgeted view over inner. A nil inner uses Default.
func NewLimit(inner Allocator, budget int) *Limit {
	if inner == nil {
		inner = Default
	}
	return &Limit{inner: inner, budget: budget}
}

// Used reports the bytes currently outstanding.
func (l *Limit) Used() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.used
}

// reserve claims n bytes of budget, failing if they are not available.
func (l *Limit) reserve(n int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.used+n > l.budget {
		return fmt.Errorf("%d-byte request exceeds budget %d (%d in use): %w",
			n, l.budget, l.used, ErrAllocationFailure)
	}
	l.used += n
	return nil
}

// unreserve returns n bytes of budget.
func (l *Limit) unreserve(n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.used -= n
	if l.used < 0 {
		l.used = 0
	}
}

// Alloc returns a region of n bytes if the budget allows it.
func (l *Limit) Alloc(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	if err := l.reserve(n); err != nil {
		return nil, err
	}
	region, err := l.inner.Alloc(n)
	if err != nil {
		l.unreserve(n)
		return nil, err
	}
	return region, nil
}

// Realloc resizes region within the budget. The old region counts
// against the budget until the new one is confirmed, so a grow needs
// headroom for both regions for the duration of the call.
func (l *Limit) Realloc(region []byte, used, n int) ([]byte, error) {
	if n <= 0 {
		l.Free(region)
		return nil, nil
	}
	if err := l.reserve(n); err != nil {
		return nil, err
	}
	next, err := l.inner.Realloc(region, used, n)
	if err != nil {
		l.unreserve(n)
		return nil, err
	}
	l.unreserve(len(region))
	return next, nil
}

// Free reclaims a region and returns its bytes to the budget.
func (l *Limit) Free(region []byte) {
	if region == nil {
		return
	}
	l.inner.Free(region)
	l.unreserve(len(region))
}
