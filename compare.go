package strbuf

import (
	"bytes"
	"hash/fnv"
)

// Equal reports whether two buffers hold identical bytes. The
// comparison is byte-exact: no Unicode normalization is applied, and
// character counts are irrelevant.
func (b *Buffer) Equal(other *Buffer) bool {
	return bytes.Equal(b.content(), other.content())
}

// Compare orders two buffers lexicographically by raw bytes (memcmp
// semantics): the first differing byte decides, and a strict byte
// prefix sorts before the longer content. The result is -1, 0, or +1.
// Compare is a strict total order consistent with Equal.
func (b *Buffer) Compare(other *Buffer) int {
	return bytes.Compare(b.content(), other.content())
}

// Hash returns the 64-bit FNV-1a hash of the content bytes. Equal
// buffers hash equal, so Buffer contents are usable as map keys via
// their hash.
func (b *Buffer) Hash() uint64 {
	h := fnv.New64a()
	h.Write(b.content())
	return h.Sum64()
}
