package strbuf

import "github.com/rivo/uniseg"

// GraphemeCount returns the number of user-perceived characters
// (grapheme clusters) in the content. This can be smaller than
// CharCount when combining sequences are present: "é" is two
// codepoints but one grapheme.
func (b *Buffer) GraphemeCount() int {
	return uniseg.GraphemeClusterCount(b.String())
}

// GraphemeIterator walks the content one grapheme cluster at a time.
// It operates on a snapshot of the content taken when Graphemes was
// called; later mutations are not reflected.
type GraphemeIterator struct {
	g *uniseg.Graphemes
}

// Graphemes returns an iterator over the buffer's grapheme clusters.
func (b *Buffer) Graphemes() *GraphemeIterator {
	return &GraphemeIterator{g: uniseg.NewGraphemes(b.String())}
}

// Next advances to the next grapheme cluster, returning false when the
// content is exhausted.
func (it *GraphemeIterator) Next() bool {
	return it.g.Next()
}

// Str returns the current grapheme cluster as a string.
func (it *GraphemeIterator) Str() string {
	return it.g.Str()
}

// Runes returns the codepoints making up the current grapheme cluster.
func (it *GraphemeIterator) Runes() []rune {
	return it.g.Runes()
}
