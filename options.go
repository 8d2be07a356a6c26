package strbuf

import "github.com/dshills/strbuf/alloc"

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithAllocator sets the allocator backing the buffer. The buffer and
// every buffer it produces (SplitOff, Drain) allocate and free through
// it. A nil allocator is ignored.
func WithAllocator(a alloc.Allocator) Option {
	return func(b *Buffer) {
		if a != nil {
			b.alloc = a
		}
	}
}
