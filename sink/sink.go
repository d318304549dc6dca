// Package sink defines the byte sink contract consumed by the stream writer
// and provides common sink implementations.
//
// A sink accepts sequential byte writes and supports flush and close. The
// writer assumes a sink either writes the full requested range or fails, and
// that it never reorders bytes. Everything beyond that contract, such as
// buffering policy or on-the-wire compression, is the sink's business; the
// serialized byte sequence handed to the sink is always the plain wire
// format.
//
// Provided implementations:
//   - Buffer: in-memory sink, useful for tests and for assembling frames
//   - FromWriter: adapts any io.Writer, forwarding Flush/Close when the
//     underlying writer supports them
//   - Counting: decorator that counts bytes passed through
//   - S2Sink, LZ4Sink, ZstdSink: compressing transports
package sink

import (
	"bytes"
	"io"
)

// Sink is the destination of a stream writer's drained bytes.
//
// Write must consume all of p or return an error. Flush pushes any bytes the
// sink itself buffers toward the final destination. Close releases the sink;
// compressing sinks finalize their frame during Close.
type Sink interface {
	io.Writer
	Flush() error
	Close() error
}

// Buffer is an in-memory sink that accumulates every written byte.
//
// Flush and Close are no-ops, so the accumulated bytes remain inspectable
// after the writer is closed. The zero value is ready for use.
type Buffer struct {
	buf bytes.Buffer
}

var _ Sink = (*Buffer)(nil)

// NewBuffer creates an empty in-memory sink.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Write appends p to the buffer. It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	return b.buf.Write(p)
}

// Flush implements Sink. It is a no-op.
func (b *Buffer) Flush() error { return nil }

// Close implements Sink. It is a no-op; the buffer stays readable.
func (b *Buffer) Close() error { return nil }

// Bytes returns the accumulated bytes. The slice is valid until the next
// write or Reset.
func (b *Buffer) Bytes() []byte {
	return b.buf.Bytes()
}

// Len returns the number of accumulated bytes.
func (b *Buffer) Len() int {
	return b.buf.Len()
}

// Reset discards the accumulated bytes.
func (b *Buffer) Reset() {
	b.buf.Reset()
}

type writerSink struct {
	w io.Writer
}

var _ Sink = (*writerSink)(nil)

// FromWriter adapts an arbitrary io.Writer into a Sink.
//
// If the writer also implements Flush() error or io.Closer, those methods
// are forwarded; otherwise Flush and Close are no-ops.
func FromWriter(w io.Writer) Sink {
	if s, ok := w.(Sink); ok {
		return s
	}

	return &writerSink{w: w}
}

func (s *writerSink) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

func (s *writerSink) Flush() error {
	if f, ok := s.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}

	return nil
}

func (s *writerSink) Close() error {
	if c, ok := s.w.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

// Counting is a sink decorator that counts the bytes written through it.
type Counting struct {
	next Sink
	n    int64
}

var _ Sink = (*Counting)(nil)

// NewCounting wraps next with a byte counter.
func NewCounting(next Sink) *Counting {
	return &Counting{next: next}
}

// Write forwards p to the wrapped sink and adds the written byte count.
func (c *Counting) Write(p []byte) (int, error) {
	n, err := c.next.Write(p)
	c.n += int64(n)

	return n, err
}

// Flush forwards to the wrapped sink.
func (c *Counting) Flush() error { return c.next.Flush() }

// Close forwards to the wrapped sink.
func (c *Counting) Close() error { return c.next.Close() }

// BytesWritten returns the total number of bytes written so far.
func (c *Counting) BytesWritten() int64 {
	return c.n
}
