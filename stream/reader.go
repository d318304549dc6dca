package stream

import (
	"io"
	"math"

	"github.com/arloliu/fastdata/endian"
	"github.com/arloliu/fastdata/errs"
	"github.com/arloliu/fastdata/internal/pool"
	"github.com/arloliu/fastdata/mutf8"
)

// Reader decodes streams produced by Writer.
//
// It reads primitives at their fixed widths, strings as u16-prefixed
// Modified UTF-8 payloads, and interned strings against a reference table
// built up as literals arrive. The Modified UTF-8 decoder accepts both
// dialects, so one Reader handles streams from 3-byte and 4-byte writers
// alike.
//
// Truncated input surfaces as io.ErrUnexpectedEOF (io.EOF when the stream
// ends cleanly on an operation boundary). Readers are not safe for
// concurrent use.
type Reader struct {
	engine  endian.EndianEngine
	in      io.Reader
	refs    []string
	scratch [8]byte
}

// NewReader creates a reader decoding from in.
func NewReader(in io.Reader) *Reader {
	return &Reader{
		engine: endian.GetBigEndianEngine(),
		in:     in,
	}
}

// fill reads exactly n bytes into the scratch buffer.
func (r *Reader) fill(n int) ([]byte, error) {
	b := r.scratch[:n]
	if _, err := io.ReadFull(r.in, b); err != nil {
		return nil, err
	}

	return b, nil
}

// ReadFull reads exactly len(p) bytes, the inverse of Writer.Write.
func (r *Reader) ReadFull(p []byte) error {
	_, err := io.ReadFull(r.in, p)
	return err
}

// ReadBool reads a boolean. Any non-zero byte decodes as true.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadUint8()
	return v != 0, err
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.fill(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// ReadInt8 reads a signed byte.
func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadUint8()
	return int8(v), err
}

// ReadUint16 reads a big-endian 16-bit value.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.fill(2)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint16(b), nil
}

// ReadInt16 reads a big-endian 16-bit signed value.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadChar reads a UTF-16 code unit, the inverse of Writer.WriteChar.
func (r *Reader) ReadChar() (uint16, error) {
	return r.ReadUint16()
}

// ReadUint32 reads a big-endian 32-bit value.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.fill(4)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint32(b), nil
}

// ReadInt32 reads a big-endian 32-bit signed value.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadUint64 reads a big-endian 64-bit value.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.fill(8)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint64(b), nil
}

// ReadInt64 reads a big-endian 64-bit signed value.
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

// ReadFloat32 reads an IEEE-754 bit pattern as a float32.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat64 reads an IEEE-754 bit pattern as a float64.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	return math.Float64frombits(v), err
}

// ReadString reads a u16 length prefix and decodes that many bytes of
// Modified UTF-8 payload.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadUint16()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}

	sb := pool.GetSpill(int(n))
	defer pool.PutSpill(sb)

	if _, err := io.ReadFull(r.in, sb.B); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}

		return "", err
	}

	return mutf8.Decode(sb.B)
}

// ReadInternedString reads the interned wire form: either a reference to a
// previously read string or the sentinel 65535 followed by a literal.
//
// Literals are appended to the reference table while it holds fewer than
// 65535 entries, mirroring the writer's insertion rule so ids stay aligned.
// A reference beyond the table returns errs.ErrInvalidReference.
func (r *Reader) ReadInternedString() (string, error) {
	ref, err := r.ReadUint16()
	if err != nil {
		return "", err
	}

	if ref != MaxUnsignedShort {
		if int(ref) >= len(r.refs) {
			return "", errs.ErrInvalidReference
		}

		return r.refs[ref], nil
	}

	s, err := r.ReadString()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}

		return "", err
	}

	if len(r.refs) < MaxUnsignedShort {
		r.refs = append(r.refs, s)
	}

	return s, nil
}
