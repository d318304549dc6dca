// Package errs defines the sentinel error values shared across fastdata
// packages.
//
// Callers classify failures with errors.Is:
//
//	if errors.Is(err, errs.ErrStringTooLong) {
//	    // value cannot be represented in the wire format
//	}
//
// I/O failures from the underlying sink are not wrapped in a sentinel; the
// sink's own error is returned so callers can inspect it directly.
package errs

import "errors"

var (
	// ErrInvalidBufferSize indicates a writer was constructed with a staging
	// buffer smaller than the 8 bytes required to hold the widest primitive.
	ErrInvalidBufferSize = errors.New("buffer size must be at least 8 bytes")

	// ErrStringTooLong indicates a string whose Modified UTF-8 encoding
	// exceeds the 65535-byte limit of the u16 length prefix.
	ErrStringTooLong = errors.New("modified UTF-8 length exceeds 65535 bytes")

	// ErrUnsupported indicates a legacy serialization method that is
	// intentionally not implemented. Callers should use WriteString instead.
	ErrUnsupported = errors.New("unsupported legacy string serialization")

	// ErrLingeringData indicates Release or Close was called while buffered
	// bytes had not been drained. Call Flush before releasing the writer.
	ErrLingeringData = errors.New("lingering data, call Flush() before releasing")

	// ErrReleased indicates an operation on a writer after it was released.
	ErrReleased = errors.New("writer used after release")

	// ErrMalformedUTF indicates input bytes that are not valid Modified UTF-8.
	ErrMalformedUTF = errors.New("malformed modified UTF-8 sequence")

	// ErrInvalidReference indicates an interned string reference that does
	// not resolve to a previously read string.
	ErrInvalidReference = errors.New("unresolved interned string reference")
)
