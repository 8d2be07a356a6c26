package strbuf

import (
	"bytes"
	"testing"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"
)

func TestToWideRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
	}{
		{"empty", nil},
		{"ascii", utf16.Encode([]rune("hello"))},
		{"two byte", utf16.Encode([]rune("héllo"))},
		{"three byte", utf16.Encode([]rune("世界"))},
		{"mixed", utf16.Encode([]rune("aé世 x"))},
		{"boundaries", []uint16{0, 0x7F, 0x80, 0x7FF, 0x800, 0xFFFF}},
		// Astral input: the surrogate halves survive the round trip as
		// two separate units.
		{"astral", utf16.Encode([]rune("𝄞"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := FromWide(tt.units)
			if err != nil {
				t.Fatalf("FromWide failed: %v", err)
			}

			got, err := b.ToWide()
			if err != nil {
				t.Fatalf("ToWide failed: %v", err)
			}
			if len(got) != len(tt.units) {
				t.Fatalf("got %d units, want %d", len(got), len(tt.units))
			}
			for i := range got {
				if got[i] != tt.units[i] {
					t.Errorf("unit %d = %#x, want %#x", i, got[i], tt.units[i])
				}
			}
			if len(got) != b.CharCount() {
				t.Errorf("unit count %d != CharCount %d", len(got), b.CharCount())
			}
		})
	}
}

// TestToWideMatchesReferenceEncoder checks the wide export against the
// x/text UTF-16 transcoder for BMP-only content, where the two models
// agree.
func TestToWideMatchesReferenceEncoder(t *testing.T) {
	inputs := []string{"", "hello", "héllo wörld", "世界の空", "mixed é世x"}
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()

	for _, s := range inputs {
		b := mustFromString(t, s)
		units, err := b.ToWide()
		if err != nil {
			t.Fatalf("%q: ToWide failed: %v", s, err)
		}

		ref, err := enc.Bytes([]byte(s))
		if err != nil {
			t.Fatalf("%q: reference encoder failed: %v", s, err)
		}

		le := make([]byte, 0, 2*len(units))
		for _, u := range units {
			le = append(le, byte(u), byte(u>>8))
		}
		if !bytes.Equal(le, ref) {
			t.Errorf("%q: wide export % x, reference % x", s, le, ref)
		}
	}
}

func TestAstralStoredAsSurrogateHalves(t *testing.T) {
	// U+1D11E arrives as the pair (0xD834, 0xDD1E); each half is
	// encoded as its own 3-byte sequence rather than one 4-byte one.
	b := mustFromString(t, "𝄞")

	if b.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", b.Len())
	}
	if b.CharCount() != 2 {
		t.Errorf("CharCount() = %d, want 2 (two surrogate halves)", b.CharCount())
	}

	units, err := b.ToWide()
	if err != nil {
		t.Fatal(err)
	}
	if len(units) != 2 || units[0] != 0xD834 || units[1] != 0xDD1E {
		t.Errorf("units = %#x, want [0xd834 0xdd1e]", units)
	}
}

func TestDebugString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"ascii", "hello", "hello"},
		{"unicode", "héllo 世界", "héllo 世界"},
		// The wide round trip recombines the stored surrogate halves.
		{"astral recombines", "𝄞", "𝄞"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustFromString(t, tt.input)
			if got := b.DebugString(); got != tt.want {
				t.Errorf("DebugString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringVsDebugString(t *testing.T) {
	// For BMP content the raw view and the wide round trip agree; for
	// astral content only DebugString restores the original string.
	b := mustFromString(t, "𝄞")
	if b.String() == "𝄞" {
		t.Error("raw view should expose the surrogate-half encoding, not the original rune")
	}
	if b.DebugString() != "𝄞" {
		t.Errorf("DebugString() = %q, want %q", b.DebugString(), "𝄞")
	}
}

func TestBytesSharesBacking(t *testing.T) {
	b := mustFromString(t, "abc")
	view := b.Bytes()
	if err := b.Push('d'); err != nil {
		t.Fatal(err)
	}
	// The old view is documented as invalidated; only its length is
	// guaranteed to reflect the pre-mutation content.
	if len(view) != 3 {
		t.Errorf("view length = %d, want 3", len(view))
	}
	if b.String() != "abcd" {
		t.Errorf("content = %q, want %q", b.String(), "abcd")
	}
}
