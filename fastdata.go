// Package fastdata provides buffered binary serialization in the classical
// big-endian "DataOutput / Modified UTF-8" wire format.
//
// The stream.Writer stages primitive and string encodings in a fixed-size
// buffer and drains it to a byte sink, avoiding a syscall or sink call per
// value. The stream.Reader is the symmetric decoder. Strings use Modified
// UTF-8 (U+0000 as 0xC0 0x80, no embedded zero bytes) in one of two
// dialects, and repeated strings can be interned into two-byte references.
//
// # Core Features
//
//   - Fixed-layout big-endian primitives (1/2/4/8 bytes, IEEE-754 raw bits)
//   - Modified UTF-8 strings with u16 length prefix, in both the canonical
//     3-byte dialect and the historic 4-byte dialect
//   - Per-stream string interning with 16-bit references
//   - Pluggable byte sinks, including S2, LZ4, and Zstd compressing
//     transports (the wire format itself is never compressed)
//   - Best-effort writer recycling through a process-wide single-slot pool
//
// # Basic Usage
//
// Writing and reading a round trip through an in-memory sink:
//
//	import "github.com/arloliu/fastdata"
//
//	buf := sink.NewBuffer()
//	w, err := fastdata.NewWriter(buf, stream.With3ByteSequences())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w.WriteInt32(0x01020304)
//	w.WriteString("héllo")
//	w.WriteInternedString("unit")
//	w.WriteInternedString("unit") // two bytes on the wire
//	if err := w.Flush(); err != nil {
//	    log.Fatal(err)
//	}
//
//	r := fastdata.NewReader(bytes.NewReader(buf.Bytes()))
//	v, _ := r.ReadInt32()
//	s, _ := r.ReadString()
//
// # Package Structure
//
// This package provides thin top-level wrappers around the stream package.
// For sink implementations see the sink package; for the Modified UTF-8
// encoder itself see the mutf8 package.
package fastdata

import (
	"io"

	"github.com/arloliu/fastdata/sink"
	"github.com/arloliu/fastdata/stream"
)

// NewWriter creates a stream.Writer bound to out.
//
// Defaults to the 4-byte Modified UTF-8 dialect and a 32 KiB staging
// buffer; override with stream.With3ByteSequences and
// stream.WithBufferSize.
//
// Parameters:
//   - out: Destination sink
//   - opts: Optional configuration (see stream.WriterOption)
//
// Returns:
//   - *stream.Writer: The created writer.
//   - error: An error if the configuration is invalid.
func NewWriter(out sink.Sink, opts ...stream.WriterOption) (*stream.Writer, error) {
	return stream.NewWriter(out, opts...)
}

// NewReader creates a stream.Reader decoding from in.
func NewReader(in io.Reader) *stream.Reader {
	return stream.NewReader(in)
}

// Obtain3ByteWriter returns a default-capacity writer using the canonical
// 3-byte Modified UTF-8 dialect.
func Obtain3ByteWriter(out sink.Sink) *stream.Writer {
	return stream.Obtain3ByteWriter(out)
}

// Obtain4ByteWriter returns a default-capacity writer using the 4-byte
// dialect, recycled from the process-wide pool when one is available.
func Obtain4ByteWriter(out sink.Sink) *stream.Writer {
	return stream.Obtain4ByteWriter(out)
}
