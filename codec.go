package strbuf

import (
	"fmt"
	"unicode/utf16"
)

// UTF-8 encoding boundaries for 16-bit code units.
const (
	unit1Max = 0x80   // below: 1 byte
	unit2Max = 0x800  // below: 2 bytes
	maxUnit  = 0xFFFF // largest 16-bit code unit, 3 bytes
)

// maxEncodedLen is the widest sequence encodeUnit produces.
const maxEncodedLen = 3

// wideLen returns the number of UTF-8 bytes needed to encode units.
// Each 16-bit code unit is measured independently; surrogate halves are
// not combined into supplementary codepoints, so input containing
// characters outside the BMP is sized (and later encoded) as two
// separate 3-byte sequences. This is a documented limitation of the
// type, not a general UTF-8 length function.
func wideLen(units []uint16) int {
	n := 0
	for _, u := range units {
		switch {
		case u < unit1Max:
			n++
		case u < unit2Max:
			n += 2
		default:
			n += 3
		}
	}
	return n
}

// unitLen returns the encoded width of a single 16-bit code unit.
func unitLen(u uint16) int {
	switch {
	case u < unit1Max:
		return 1
	case u < unit2Max:
		return 2
	default:
		return 3
	}
}

// runeLen returns the number of bytes Push appends for r. Runes beyond
// the BMP split into two surrogate halves of 3 bytes each.
func runeLen(r rune) int {
	if r > maxUnit {
		return 2 * maxEncodedLen
	}
	return unitLen(uint16(r))
}

// encodeUnit writes the UTF-8 encoding of one 16-bit code unit at the
// start of dst and returns the number of bytes written (1-3). The
// caller guarantees dst has at least maxEncodedLen bytes.
func encodeUnit(dst []byte, u uint16) int {
	switch {
	case u < unit1Max:
		dst[0] = byte(u)
		return 1
	case u < unit2Max:
		dst[0] = 0xC0 | byte(u>>6)
		dst[1] = 0x80 | byte(u)&0x3F
		return 2
	default:
		dst[0] = 0xE0 | byte(u>>12)
		dst[1] = 0x80 | byte(u>>6)&0x3F
		dst[2] = 0x80 | byte(u)&0x3F
		return 3
	}
}

// encodeRune writes r at the start of dst and returns the bytes
// written. Runes beyond the BMP are split into their UTF-16 surrogate
// halves and each half is encoded independently, preserving the type's
// 16-bit code unit model.
func encodeRune(dst []byte, r rune) int {
	if r > maxUnit {
		hi, lo := utf16.EncodeRune(r)
		n := encodeUnit(dst, uint16(hi))
		return n + encodeUnit(dst[n:], uint16(lo))
	}
	return encodeUnit(dst, uint16(r))
}

// decodeRune decodes the first UTF-8 sequence in b, returning the
// codepoint and the number of bytes consumed (1-4). It fails with
// ErrMalformedEncoding when b is shorter than the length the leading
// byte indicates, or when a byte does not match the expected pattern.
func decodeRune(b []byte) (rune, int, error) {
	if len(b) == 0 {
		return 0, 0, fmt.Errorf("decode at end of content: %w", ErrMalformedEncoding)
	}

	lead := b[0]
	var size int
	var r rune
	switch {
	case lead&0x80 == 0x00:
		return rune(lead), 1, nil
	case lead&0xE0 == 0xC0:
		size, r = 2, rune(lead&0x1F)
	case lead&0xF0 == 0xE0:
		size, r = 3, rune(lead&0x0F)
	case lead&0xF8 == 0xF0:
		size, r = 4, rune(lead&0x07)
	default:
		return 0, 0, fmt.Errorf("invalid leading byte %#02x: %w", lead, ErrMalformedEncoding)
	}

	if len(b) < size {
		return 0, 0, fmt.Errorf("truncated %d-byte sequence (%d remaining): %w",
			size, len(b), ErrMalformedEncoding)
	}
	for i := 1; i < size; i++ {
		c := b[i]
		if c&0xC0 != 0x80 {
			return 0, 0, fmt.Errorf("invalid continuation byte %#02x at offset %d: %w",
				c, i, ErrMalformedEncoding)
		}
		r = r<<6 | rune(c&0x3F)
	}
	return r, size, nil
}
