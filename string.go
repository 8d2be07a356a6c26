package strbuf

import (
	"fmt"
	"unicode/utf16"
)

// FromWide creates a buffer from a sequence of 16-bit code units,
// allocating exactly the encoded size. Each unit is encoded
// independently; surrogate halves are not combined, so input containing
// characters outside the BMP is stored as two separate 3-byte
// sequences (a documented limitation of the type).
func FromWide(units []uint16, opts ...Option) (*Buffer, error) {
	b := New(opts...)

	size := wideLen(units)
	if size == 0 {
		return b, nil
	}

	region, err := b.alloc.Alloc(size)
	if err != nil {
		return nil, fmt.Errorf("allocate %d bytes: %w", size, err)
	}
	b.data = region

	off := 0
	for _, u := range units {
		off += encodeUnit(b.data[off:], u)
	}
	b.length = size
	return b, nil
}

// FromString creates a buffer from a Go string. The string is first
// expanded to its UTF-16 code units and then encoded unit by unit, so
// it shares FromWide's BMP-only model.
func FromString(s string, opts ...Option) (*Buffer, error) {
	return FromWide(utf16.Encode([]rune(s)), opts...)
}

// Push appends one character, growing capacity as needed. Runes beyond
// the BMP are split into surrogate halves and each half encoded on its
// own.
func (b *Buffer) Push(r rune) error {
	width := runeLen(r)
	if err := b.ensureCapacity(b.length + width); err != nil {
		return err
	}
	b.length += encodeRune(b.data[b.length:], r)
	return nil
}

// PushString appends a whole string with a single capacity check for
// the total encoded width.
func (b *Buffer) PushString(s string) error {
	units := utf16.Encode([]rune(s))
	width := wideLen(units)
	if width == 0 {
		return nil
	}
	if err := b.ensureCapacity(b.length + width); err != nil {
		return err
	}
	for _, u := range units {
		b.length += encodeUnit(b.data[b.length:], u)
	}
	return nil
}

// Write appends raw content, satisfying io.Writer. p must already be
// encoded the way this type encodes (valid UTF-8 for BMP content).
func (b *Buffer) Write(p []byte) (int, error) {
	if err := b.ensureCapacity(b.length + len(p)); err != nil {
		return 0, err
	}
	copy(b.data[b.length:], p)
	b.length += len(p)
	return len(p), nil
}

// WriteString appends a string, satisfying io.StringWriter.
func (b *Buffer) WriteString(s string) (int, error) {
	before := b.length
	if err := b.PushString(s); err != nil {
		return 0, err
	}
	return b.length - before, nil
}

// WriteRune appends a single rune, mirroring strings.Builder.
func (b *Buffer) WriteRune(r rune) (int, error) {
	before := b.length
	if err := b.Push(r); err != nil {
		return 0, err
	}
	return b.length - before, nil
}

// At returns the character at charIndex without modifying the buffer.
func (b *Buffer) At(charIndex int) (rune, error) {
	off, err := b.byteOffset(charIndex)
	if err != nil {
		return 0, err
	}
	if off >= b.length {
		return 0, fmt.Errorf("character index %d: %w", charIndex, ErrIndexOutOfRange)
	}
	r, _, err := decodeRune(b.data[off:b.length])
	return r, err
}

// InsertAt inserts one character at the given character index.
// charIndex == CharCount() appends.
func (b *Buffer) InsertAt(charIndex int, r rune) error {
	off, err := b.byteOffset(charIndex)
	if err != nil {
		return err
	}

	width := runeLen(r)
	if err := b.ensureCapacity(b.length + width); err != nil {
		return err
	}
	b.shiftRight(off, width)
	encodeRune(b.data[off:], r)
	b.length += width
	return nil
}

// InsertStringAt inserts a string at the given character index.
// charIndex == CharCount() appends.
func (b *Buffer) InsertStringAt(charIndex int, s string) error {
	off, err := b.byteOffset(charIndex)
	if err != nil {
		return err
	}

	units := utf16.Encode([]rune(s))
	width := wideLen(units)
	if width == 0 {
		return nil
	}
	if err := b.ensureCapacity(b.length + width); err != nil {
		return err
	}
	b.shiftRight(off, width)
	for _, u := range units {
		off += encodeUnit(b.data[off:], u)
	}
	b.length += width
	return nil
}

// RemoveAt removes and returns the character at charIndex. Unlike
// insertion, the index must address an existing character.
func (b *Buffer) RemoveAt(charIndex int) (rune, error) {
	off, err := b.byteOffset(charIndex)
	if err != nil {
		return 0, err
	}
	if off >= b.length {
		return 0, fmt.Errorf("character index %d: %w", charIndex, ErrIndexOutOfRange)
	}

	r, width, err := decodeRune(b.data[off:b.length])
	if err != nil {
		return 0, err
	}
	b.shiftLeft(off+width, width)
	b.length -= width
	return r, nil
}

// SplitOff truncates the buffer at charIndex and returns a newly
// allocated buffer owning the tail. The new buffer's capacity equals
// its length; the original keeps its capacity (no shrink-to-fit).
// charIndex == CharCount() yields an empty split. Ownership of the
// returned buffer transfers to the caller.
func (b *Buffer) SplitOff(charIndex int) (*Buffer, error) {
	off, err := b.byteOffset(charIndex)
	if err != nil {
		return nil, err
	}

	tail := &Buffer{alloc: b.alloc}
	size := b.length - off
	if size > 0 {
		region, err := b.alloc.Alloc(size)
		if err != nil {
			return nil, fmt.Errorf("allocate %d bytes for split: %w", size, err)
		}
		copy(region, b.data[off:b.length])
		tail.data = region
		tail.length = size
	}
	b.length = off
	return tail, nil
}

// Drain removes the characters in [start, end) and returns them as a
// newly allocated buffer. start == end yields an empty drain.
// Ownership of the returned buffer transfers to the caller.
func (b *Buffer) Drain(start, end int) (*Buffer, error) {
	if start > end {
		return nil, fmt.Errorf("drain start %d after end %d: %w", start, end, ErrIndexOutOfRange)
	}
	b0, err := b.byteOffset(start)
	if err != nil {
		return nil, err
	}
	b1, err := b.byteOffset(end)
	if err != nil {
		return nil, err
	}

	drained := &Buffer{alloc: b.alloc}
	size := b1 - b0
	if size > 0 {
		region, err := b.alloc.Alloc(size)
		if err != nil {
			return nil, fmt.Errorf("allocate %d bytes for drain: %w", size, err)
		}
		copy(region, b.data[b0:b1])
		drained.data = region
		drained.length = size

		b.shiftLeft(b1, size)
		b.length -= size
	}
	return drained, nil
}

// ReplaceRange replaces the characters in [start, end) with the content
// of repl. repl is not consumed; the caller retains ownership of it.
func (b *Buffer) ReplaceRange(start, end int, repl *Buffer) error {
	return b.replaceRange(start, end, repl.content())
}

// ReplaceRangeString replaces the characters in [start, end) with the
// encoded form of s.
func (b *Buffer) ReplaceRangeString(start, end int, s string) error {
	units := utf16.Encode([]rune(s))
	encoded := make([]byte, wideLen(units))
	off := 0
	for _, u := range units {
		off += encodeUnit(encoded[off:], u)
	}
	return b.replaceRange(start, end, encoded)
}

func (b *Buffer) replaceRange(start, end int, repl []byte) error {
	if start > end {
		return fmt.Errorf("replace start %d after end %d: %w", start, end, ErrIndexOutOfRange)
	}
	b0, err := b.byteOffset(start)
	if err != nil {
		return err
	}
	b1, err := b.byteOffset(end)
	if err != nil {
		return err
	}

	delta := len(repl) - (b1 - b0)
	if delta > 0 {
		if err := b.ensureCapacity(b.length + delta); err != nil {
			return err
		}
		b.shiftRight(b1, delta)
	} else if delta < 0 {
		b.shiftLeft(b1, -delta)
	}
	copy(b.data[b0:], repl)
	b.length += delta
	return nil
}

// Retain keeps only the characters for which pred returns true. pred
// receives each codepoint and its zero-based character index in order.
// The pass is single and in place: surviving bytes compact toward the
// front through a second write cursor, with no extra allocation. pred
// must not mutate the buffer.
func (b *Buffer) Retain(pred func(r rune, index int) bool) error {
	read, write, index := 0, 0, 0
	for read < b.length {
		r, width, err := decodeRune(b.data[read:b.length])
		if err != nil {
			return err
		}
		if pred(r, index) {
			if write != read {
				copy(b.data[write:], b.data[read:read+width])
			}
			write += width
		}
		read += width
		index++
	}
	b.length = write
	return nil
}
