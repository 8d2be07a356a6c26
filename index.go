package strbuf

import "fmt"

// byteOffset resolves a character index to its byte offset by decoding
// forward from the start of the content. charIndex == CharCount() is
// valid and resolves to the append position. Cost is O(charIndex); the
// type favors compact storage over random access, so no offset table is
// kept.
func (b *Buffer) byteOffset(charIndex int) (int, error) {
	if charIndex < 0 {
		return 0, fmt.Errorf("character index %d: %w", charIndex, ErrIndexOutOfRange)
	}

	off := 0
	for i := 0; i < charIndex; i++ {
		if off >= b.length {
			return 0, fmt.Errorf("character index %d exceeds count %d: %w",
				charIndex, i, ErrIndexOutOfRange)
		}
		_, n, err := decodeRune(b.data[off:b.length])
		if err != nil {
			return 0, err
		}
		off += n
	}
	return off, nil
}

// CharCount returns the number of codepoints in the buffer. Cost is
// O(Len()): content is decoded from the start.
func (b *Buffer) CharCount() int {
	count := 0
	for off := 0; off < b.length; count++ {
		_, n, err := decodeRune(b.data[off:b.length])
		if err != nil {
			break
		}
		off += n
	}
	return count
}
