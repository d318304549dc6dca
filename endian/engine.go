// Package endian provides the byte order engine used by the fastdata wire
// format.
//
// The wire format is big-endian throughout: every multi-byte primitive and
// every string length prefix is emitted most-significant byte first. The
// package combines ByteOrder and AppendByteOrder from encoding/binary into a
// single EndianEngine interface so encoders can both patch fixed regions
// (PutUint16 for back-patched length prefixes) and append to growing buffers
// without juggling two interface values.
//
// GetLittleEndianEngine exists for tooling that inspects staging buffers in
// host order; the writer itself always uses GetBigEndianEngine.
package endian

import "encoding/binary"

// EndianEngine combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary. It is satisfied by binary.BigEndian and
// binary.LittleEndian, so engines are immutable, stateless, and safe for
// concurrent use.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine. This is the byte order
// of the wire format.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
