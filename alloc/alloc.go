// Package alloc defines the allocator boundary for strbuf.
//
// A Buffer never allocates its backing region directly; it asks an
// Allocator for memory and returns memory through the same Allocator.
// Any conforming implementation may be substituted, which is what makes
// the string type usable inside arenas, pools, or quota'd regions.
//
// Three implementations are provided:
//
//   - Heap: plain make-backed allocation, Free is a no-op. The default.
//   - Pool: size-classed recycling built on sync.Pool. Free really
//     returns regions for reuse.
//   - Limit: wraps another Allocator with a byte budget and fails
//     requests that would exceed it.
//
// The lifetime contract is manual: every region handed out by Alloc or
// Realloc must be freed exactly once, and never used after it is freed.
// With the Pool allocator a use-after-free is observable as data
// corruption, exactly as it would be against a native allocator.
package alloc

import "errors"

// ErrAllocationFailure is returned when an allocator cannot satisfy a
// request. The caller's data structures remain valid; the request may
// be retried at a higher level after memory is released elsewhere.
var ErrAllocationFailure = errors.New("allocation failure")

// Allocator hands out and reclaims contiguous byte regions.
//
// Alloc(0) returns nil, nil; a nil region is the canonical empty
// allocation and may be passed to Free (which ignores it).
type Allocator interface {
	// Alloc returns a fresh region of exactly n bytes.
	Alloc(n int) ([]byte, error)

	// Realloc returns a region of n bytes holding the first used bytes
	// of region. On success the old region is reclaimed; on failure the
	// old region is untouched and remains owned by the caller.
	Realloc(region []byte, used, n int) ([]byte, error)

	// Free reclaims a region previously returned by Alloc or Realloc.
	// The region must not be used afterwards.
	Free(region []byte)
}

// Default is the allocator used when none is configured.
var Default Allocator = Heap{}

// Heap allocates from the Go heap. Free is a no-op; the garbage
// collector reclaims regions once unreferenced. Heap never fails.
type Heap struct{}

// Alloc returns a zeroed region of n bytes.
func (Heap) Alloc(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	return make([]byte, n), nil
}

// Realloc copies the used prefix of region into a fresh n-byte region.
func (Heap) Realloc(region []byte, used, n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	next := make([]byte, n)
	if used > n {
		used = n
	}
	if used > 0 {
		copy(next, region[:used])
	}
	return next, nil
}

// Free is a no-op; the garbage collector owns reclamation.
func (Heap) Free(region []byte) {}
