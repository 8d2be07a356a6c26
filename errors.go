package strbuf

import (
	"errors"

	"github.com/dshills/strbuf/alloc"
)

// Errors returned by buffer operations.
var (
	// ErrIndexOutOfRange reports a character index outside the valid
	// range for the operation. It signals a caller logic error, not
	// corruption.
	ErrIndexOutOfRange = errors.New("character index out of range")

	// ErrMalformedEncoding reports an incomplete or invalid UTF-8
	// sequence during decoding. Content produced by this package always
	// decodes cleanly, so this indicates external mutation of the
	// backing bytes or a bug in an encode path.
	ErrMalformedEncoding = errors.New("malformed UTF-8 encoding")

	// ErrAllocationFailure is the allocator's failure sentinel,
	// re-exported so callers can match it without importing alloc.
	ErrAllocationFailure = alloc.ErrAllocationFailure
)
