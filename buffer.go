package strbuf

import (
	"fmt"

	"github.com/dshills/strbuf/alloc"
)

// Buffer is a growable, UTF-8 encoded string backed by an explicitly
// managed byte region. The zero state (no allocation, zero length) is
// valid; New returns a Buffer in that state.
//
// The bytes [0, Len()) always form a complete sequence of UTF-8
// codepoints, and the allocated capacity never drops below Len()
// between public calls. Positional operations address characters, not
// bytes; character indices are resolved by decoding forward from the
// start of the content.
//
// A Buffer has a single logical owner at a time. It is not safe for
// concurrent use; callers needing shared access must synchronize
// externally.
type Buffer struct {
	data   []byte // allocated region; len(data) is the capacity
	length int    // bytes of valid content, <= len(data)
	alloc  alloc.Allocator
}

// New creates an empty buffer with no allocation.
func New(opts ...Option) *Buffer {
	b := &Buffer{alloc: alloc.Default}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewWithCapacity creates an empty buffer with n bytes of capacity
// pre-allocated. NewWithCapacity(0) allocates nothing.
func NewWithCapacity(n int, opts ...Option) (*Buffer, error) {
	b := New(opts...)
	if n > 0 {
		region, err := b.alloc.Alloc(n)
		if err != nil {
			return nil, fmt.Errorf("allocate %d bytes: %w", n, err)
		}
		b.data = region
	}
	return b, nil
}

// Len returns the number of content bytes.
func (b *Buffer) Len() int {
	return b.length
}

// Cap returns the allocated capacity in bytes.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// IsEmpty returns true if the buffer holds no content.
func (b *Buffer) IsEmpty() bool {
	return b.length == 0
}

// Release returns the backing region to the allocator and resets the
// buffer to the empty state. The buffer remains usable afterwards; the
// next growing operation allocates fresh. Releasing an empty buffer is
// a no-op.
func (b *Buffer) Release() {
	if b.data != nil {
		b.alloc.Free(b.data)
	}
	b.data = nil
	b.length = 0
}

// ensureCapacity grows the backing region so it can hold at least
// required bytes. Growth doubles the current capacity (or jumps
// straight to required when that is larger, or when starting from
// zero), which keeps repeated small appends amortized O(1). On
// allocation failure the existing region and content are untouched.
func (b *Buffer) ensureCapacity(required int) error {
	if len(b.data) >= required {
		return nil
	}

	newCap := 2 * len(b.data)
	if newCap < required {
		newCap = required
	}

	region, err := b.alloc.Realloc(b.data, b.length, newCap)
	if err != nil {
		return fmt.Errorf("grow capacity %d -> %d: %w", len(b.data), newCap, err)
	}
	b.data = region
	return nil
}

// shiftRight moves the bytes [from, length) up by n to open a gap for
// insertion. The caller must have ensured capacity for length+n.
func (b *Buffer) shiftRight(from, n int) {
	copy(b.data[from+n:b.length+n], b.data[from:b.length])
}

// shiftLeft moves the bytes [from, length) down by n to close a gap
// after removal.
func (b *Buffer) shiftLeft(from, n int) {
	copy(b.data[from-n:], b.data[from:b.length])
}

// content returns the valid byte range.
func (b *Buffer) content() []byte {
	return b.data[:b.length]
}
