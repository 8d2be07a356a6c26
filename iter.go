package strbuf

// CharIterator walks the content one codepoint at a time, forward only.
// A fresh iterator starts from the beginning; call Chars again to
// restart. Mutating the buffer mid-iteration leaves the iterator in an
// undefined state.
type CharIterator struct {
	buf   *Buffer
	next  int // byte offset of the next character
	off   int // byte offset of the current character
	index int
	r     rune
	width int
	err   error
}

// Chars returns an iterator over the buffer's codepoints.
func (b *Buffer) Chars() *CharIterator {
	return &CharIterator{buf: b, index: -1}
}

// Next advances to the next character. It returns false when the
// content is exhausted or a decode error occurred; check Err to
// distinguish.
func (it *CharIterator) Next() bool {
	if it.err != nil || it.next >= it.buf.length {
		return false
	}

	r, n, err := decodeRune(it.buf.data[it.next:it.buf.length])
	if err != nil {
		it.err = err
		return false
	}

	it.off = it.next
	it.next += n
	it.r = r
	it.width = n
	it.index++
	return true
}

// Rune returns the current codepoint.
func (it *CharIterator) Rune() rune {
	return it.r
}

// Index returns the zero-based character index of the current codepoint.
func (it *CharIterator) Index() int {
	return it.index
}

// ByteOffset returns the byte offset where the current codepoint starts.
func (it *CharIterator) ByteOffset() int {
	return it.off
}

// Width returns the encoded width of the current codepoint in bytes.
func (it *CharIterator) Width() int {
	return it.width
}

// Err returns the decode error that stopped iteration, if any.
func (it *CharIterator) Err() error {
	return it.err
}
