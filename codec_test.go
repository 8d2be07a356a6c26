package strbuf

import (
	"bytes"
	"errors"
	"testing"
	"unicode/utf16"
)

func TestWideLen(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
		want  int
	}{
		{"empty", nil, 0},
		{"ascii", utf16.Encode([]rune("abc")), 3},
		{"two byte", utf16.Encode([]rune("é")), 2},
		{"three byte", utf16.Encode([]rune("世界")), 6},
		{"mixed", utf16.Encode([]rune("aé世")), 6},
		{"boundary 0x7F", []uint16{0x7F}, 1},
		{"boundary 0x80", []uint16{0x80}, 2},
		{"boundary 0x7FF", []uint16{0x7FF}, 2},
		{"boundary 0x800", []uint16{0x800}, 3},
		{"boundary 0xFFFF", []uint16{0xFFFF}, 3},
		// Astral input arrives as a surrogate pair; each half is sized
		// independently at 3 bytes.
		{"astral surrogate halves", utf16.Encode([]rune("𝄞")), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wideLen(tt.units); got != tt.want {
				t.Errorf("wideLen = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEncodeUnit(t *testing.T) {
	tests := []struct {
		name string
		unit uint16
		want []byte
	}{
		{"ascii", 'a', []byte{0x61}},
		{"nul", 0, []byte{0x00}},
		{"two byte", 0xE9, []byte{0xC3, 0xA9}},         // é
		{"three byte", 0x4E16, []byte{0xE4, 0xB8, 0x96}}, // 世
		{"max unit", 0xFFFF, []byte{0xEF, 0xBF, 0xBF}},
		{"high surrogate", 0xD834, []byte{0xED, 0xA0, 0xB4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, maxEncodedLen)
			n := encodeUnit(dst, tt.unit)
			if n != len(tt.want) {
				t.Fatalf("width = %d, want %d", n, len(tt.want))
			}
			if !bytes.Equal(dst[:n], tt.want) {
				t.Errorf("encoded % x, want % x", dst[:n], tt.want)
			}
		})
	}
}

func TestEncodeRuneAstral(t *testing.T) {
	// U+1D11E is stored as its two surrogate halves, 3 bytes each.
	dst := make([]byte, 2*maxEncodedLen)
	n := encodeRune(dst, '𝄞')
	if n != 6 {
		t.Fatalf("width = %d, want 6", n)
	}

	hi, _, err := decodeRune(dst[:3])
	if err != nil {
		t.Fatalf("decode high half: %v", err)
	}
	lo, _, err := decodeRune(dst[3:6])
	if err != nil {
		t.Fatalf("decode low half: %v", err)
	}
	if hi != 0xD834 || lo != 0xDD1E {
		t.Errorf("halves = %#x, %#x; want 0xd834, 0xdd1e", hi, lo)
	}
}

func TestDecodeRune(t *testing.T) {
	tests := []struct {
		name      string
		input     []byte
		wantRune  rune
		wantWidth int
	}{
		{"ascii", []byte("a"), 'a', 1},
		{"two byte", []byte("é"), 'é', 2},
		{"three byte", []byte("世"), '世', 3},
		{"four byte", []byte("𝄞"), '𝄞', 4},
		{"trailing content ignored", []byte("abc"), 'a', 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, n, err := decodeRune(tt.input)
			if err != nil {
				t.Fatalf("decodeRune failed: %v", err)
			}
			if r != tt.wantRune || n != tt.wantWidth {
				t.Errorf("got (%#x, %d), want (%#x, %d)", r, n, tt.wantRune, tt.wantWidth)
			}
		})
	}
}

func TestDecodeRuneMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"empty", nil},
		{"bare continuation", []byte{0x80}},
		{"invalid lead 0xFF", []byte{0xFF}},
		{"truncated two byte", []byte{0xC3}},
		{"truncated three byte", []byte{0xE4, 0xB8}},
		{"truncated four byte", []byte{0xF0, 0x9D, 0x84}},
		{"bad continuation", []byte{0xC3, 0x41}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := decodeRune(tt.input)
			if !errors.Is(err, ErrMalformedEncoding) {
				t.Errorf("got %v, want ErrMalformedEncoding", err)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	units := []uint16{0, 'a', 0x7F, 0x80, 0x7FF, 0x800, 0x4E16, 0xFFFF}

	for _, u := range units {
		dst := make([]byte, maxEncodedLen)
		n := encodeUnit(dst, u)

		r, width, err := decodeRune(dst[:n])
		if err != nil {
			t.Fatalf("unit %#x: decode failed: %v", u, err)
		}
		if rune(u) != r || width != n {
			t.Errorf("unit %#x: round trip gave (%#x, %d), want (%#x, %d)", u, r, width, u, n)
		}
	}
}
