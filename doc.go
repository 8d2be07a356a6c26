// Package strbuf provides a growable, UTF-8 encoded string type backed
// by an explicitly managed byte region.
//
// A Buffer offers the operation surface of an owned string — push,
// insert, remove, split, drain, replace, retain, comparison, hashing —
// with character-index addressing and a pluggable allocator, making it
// usable inside arenas, pools, and other manually managed memory. All
// positional operations take character indices (counted in decoded
// codepoints), which are resolved to byte offsets by decoding forward
// from the start.
//
// Basic usage:
//
//	b, _ := strbuf.FromString("hello")
//	b.Push('!')                    // "hello!"
//	b.InsertStringAt(5, " world")  // "hello world!"
//	r, _ := b.RemoveAt(0)          // r == 'h', "ello world!"
//	defer b.Release()
//
// Memory model:
//
// Every Buffer allocates through an alloc.Allocator (the heap-backed
// default unless configured with WithAllocator). Operations that
// produce a new Buffer — FromString, FromWide, SplitOff, Drain —
// transfer ownership of the new allocation to the caller, who must call
// Release exactly once per live buffer when done. With the default heap
// allocator the garbage collector reclaims regions regardless; against
// a pooling or quota'd allocator, Release is what returns the memory.
//
// Encoding model:
//
// The type stores UTF-8 but models input and export as sequences of
// 16-bit code units (the "wide" representation). Surrogate pairs are
// never combined: characters outside the Basic Multilingual Plane are
// encoded as two independent 3-byte sequences and exported as their two
// surrogate halves. This is a documented limitation, preserved rather
// than fixed.
//
// Buffers are not safe for concurrent use. Exactly one logical owner
// may mutate or release a buffer at a time; callers needing shared
// access must synchronize externally.
package strbuf
