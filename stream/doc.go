// Package stream implements buffered binary serialization in the big-endian
// "DataOutput / Modified UTF-8" wire format.
//
// The Writer stages encoded bytes in a fixed-capacity buffer and drains it
// to a sink whenever the next value needs more room, so small primitive
// writes amortize to a handful of buffer stores. The Reader is the symmetric
// decoder for streams produced by the Writer.
//
// # Wire format
//
// Integers are big-endian two's-complement at widths 1, 2, 4, and 8 bytes.
// float32/float64 are IEEE-754 raw bit patterns at widths 4 and 8. Booleans
// are a single 0x00 or 0x01 byte. Strings are a u16 byte-length prefix
// followed by Modified UTF-8 payload (see the mutf8 package); interned
// strings are either a u16 reference id or the u16 sentinel 65535 followed
// by a literal string. There is no framing, magic number, or header; the
// stream is the exact concatenation of the per-operation encodings in call
// order.
//
// # Basic usage
//
//	buf := sink.NewBuffer()
//	w, err := stream.NewWriter(buf, stream.With3ByteSequences())
//	if err != nil {
//	    return err
//	}
//	w.WriteInt32(42)
//	w.WriteString("hello")
//	if err := w.Flush(); err != nil {
//	    return err
//	}
//
//	r := stream.NewReader(bytes.NewReader(buf.Bytes()))
//	v, _ := r.ReadInt32()
//	s, _ := r.ReadString()
//
// # Concurrency
//
// A Writer or Reader is not safe for concurrent use; callers serialize
// access per instance. Blocking occurs only inside the sink's Write, Flush,
// and Close calls.
package stream
