package strbuf

import "unicode/utf16"

// ToWide decodes the content into a sequence of 16-bit code units, one
// per character. The destination is sized from CharCount before
// decoding. Codepoints at or above U+10000 are narrowed to their low 16
// bits — the type's documented BMP-only limitation; content written
// through this package never contains them, since astral input is
// stored as surrogate halves which export as themselves. The returned
// slice is freshly allocated and owned by the caller.
func (b *Buffer) ToWide() ([]uint16, error) {
	units := make([]uint16, 0, b.CharCount())
	for off := 0; off < b.length; {
		r, n, err := decodeRune(b.data[off:b.length])
		if err != nil {
			return nil, err
		}
		units = append(units, uint16(r))
		off += n
	}
	return units, nil
}

// String returns the content as a Go string (a copy of the raw UTF-8
// view). This is the cheap path; DebugString goes through the wide
// representation instead.
func (b *Buffer) String() string {
	return string(b.content())
}

// Bytes returns the content as a byte slice sharing the backing region.
// The view is invalidated by any mutating operation and by Release;
// writing through it breaks the buffer's encoding invariant.
func (b *Buffer) Bytes() []byte {
	return b.content()
}

// DebugString renders the content for diagnostics by exporting to the
// wide representation and rebuilding a Go string from it. Surrogate
// halves stored by astral input recombine here, so the result can
// differ from String. Not suitable for hot paths; if the content fails
// to decode, the raw byte view is returned instead.
func (b *Buffer) DebugString() string {
	units, err := b.ToWide()
	if err != nil {
		return b.String()
	}
	return string(utf16.Decode(units))
}
