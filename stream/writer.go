package stream

import (
	"errors"
	"math"
	"sync/atomic"

	"github.com/arloliu/fastdata/endian"
	"github.com/arloliu/fastdata/errs"
	"github.com/arloliu/fastdata/internal/pool"
	"github.com/arloliu/fastdata/mutf8"
	"github.com/arloliu/fastdata/sink"
)

const (
	// DefaultBufferSize is the staging buffer capacity used by the Obtain
	// factories and by NewWriter when WithBufferSize is not given.
	DefaultBufferSize = 32768

	// MaxUnsignedShort is the maximum encoded string length, the interned
	// string sentinel, and the intern table capacity.
	MaxUnsignedShort = 65535

	// minBufferSize is the widest primitive; smaller buffers could never
	// stage a single int64 write.
	minBufferSize = 8
)

// writerCache is the process-wide single-slot recycling cell. It only ever
// holds a writer with the default capacity and the 4-byte dialect, so pool
// consumers always receive the configuration Obtain4ByteWriter hands out.
var writerCache atomic.Pointer[Writer]

// Writer encodes primitives and strings into the big-endian wire format,
// staging bytes in a fixed-capacity buffer that drains to the sink when
// space runs out.
//
// A Writer is bound to a sink at construction and can be rebound with
// SetOutput. After Release or Close, every operation fails with
// errs.ErrReleased. Writers are not safe for concurrent use.
type Writer struct {
	engine endian.EndianEngine
	out    sink.Sink
	buf    []byte
	pos    int
	refs   internTable

	use4ByteSequence bool
}

// NewWriter creates a writer bound to out.
//
// Defaults: DefaultBufferSize staging capacity and the 4-byte Modified UTF-8
// dialect. Use With3ByteSequences for streams consumed by readers that
// follow the canonical DataOutput contract.
//
// Parameters:
//   - out: Destination sink; must not be nil
//   - opts: Optional configuration (buffer size, UTF dialect)
//
// Returns:
//   - *Writer: Writer bound to out
//   - error: errs.ErrInvalidBufferSize if the configured capacity is below 8
func NewWriter(out sink.Sink, opts ...WriterOption) (*Writer, error) {
	if out == nil {
		return nil, errors.New("nil sink")
	}

	cfg := writerConfig{
		bufferSize:       DefaultBufferSize,
		use4ByteSequence: true,
	}
	if err := applyWriterOptions(&cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.bufferSize < minBufferSize {
		return nil, errs.ErrInvalidBufferSize
	}

	w := &Writer{
		engine:           endian.GetBigEndianEngine(),
		buf:              make([]byte, cfg.bufferSize),
		use4ByteSequence: cfg.use4ByteSequence,
	}
	w.SetOutput(out)

	return w, nil
}

// Obtain3ByteWriter returns a writer with default capacity that encodes
// supplementary code points as two 3-byte surrogate sequences. This dialect
// matches the canonical DataOutput contract and is readable by any Modified
// UTF-8 decoder.
func Obtain3ByteWriter(out sink.Sink) *Writer {
	w, _ := NewWriter(out, With3ByteSequences())
	return w
}

// Obtain4ByteWriter returns a writer with default capacity that encodes
// supplementary code points as single 4-byte sequences, the dialect expected
// by historic readers that diverged from the canonical form.
//
// Writers from this factory may come from the process-wide recycling slot;
// Release returns them to it.
func Obtain4ByteWriter(out sink.Sink) *Writer {
	if w := writerCache.Swap(nil); w != nil {
		w.SetOutput(out)
		return w
	}

	w, _ := NewWriter(out)

	return w
}

// SetOutput rebinds the writer to a new sink, discarding any staged bytes
// and clearing the intern table.
func (w *Writer) SetOutput(out sink.Sink) {
	w.out = out
	w.pos = 0
	w.refs.reset()
}

// Release detaches the writer from its sink and makes it eligible for
// recycling. The writer must not be used afterwards.
//
// Buffered bytes are not drained: releasing with staged data is a caller
// bug and fails with errs.ErrLingeringData. Call Flush first.
func (w *Writer) Release() error {
	if w.out == nil {
		return errs.ErrReleased
	}
	if w.pos > 0 {
		return errs.ErrLingeringData
	}

	w.out = nil
	w.refs.reset()

	if len(w.buf) == DefaultBufferSize && w.use4ByteSequence {
		writerCache.CompareAndSwap(nil, w)
	}

	return nil
}

// drain writes the staged bytes to the sink and resets the cursor.
func (w *Writer) drain() error {
	if w.pos == 0 {
		return nil
	}

	if _, err := w.out.Write(w.buf[:w.pos]); err != nil {
		return err
	}
	w.pos = 0

	return nil
}

// ensure guarantees at least n free bytes at the cursor, draining first when
// the remaining capacity is insufficient.
func (w *Writer) ensure(n int) error {
	if w.out == nil {
		return errs.ErrReleased
	}
	if len(w.buf)-w.pos < n {
		return w.drain()
	}

	return nil
}

// Flush drains the staging buffer and flushes the sink.
func (w *Writer) Flush() error {
	if w.out == nil {
		return errs.ErrReleased
	}
	if err := w.drain(); err != nil {
		return err
	}

	return w.out.Flush()
}

// Close closes the sink unconditionally and releases the writer.
//
// If bytes were still staged, the sink is closed anyway and Close reports
// errs.ErrLingeringData: the stream is short and the caller missed a Flush.
func (w *Writer) Close() error {
	if w.out == nil {
		return errs.ErrReleased
	}

	cerr := w.out.Close()
	rerr := w.releaseAfterClose()
	if cerr != nil {
		return cerr
	}

	return rerr
}

// releaseAfterClose mirrors Release but always detaches, so a writer whose
// sink is already closed cannot keep writing to it.
func (w *Writer) releaseAfterClose() error {
	lingering := w.pos > 0

	w.out = nil
	w.pos = 0
	w.refs.reset()

	if lingering {
		return errs.ErrLingeringData
	}

	if len(w.buf) == DefaultBufferSize && w.use4ByteSequence {
		writerCache.CompareAndSwap(nil, w)
	}

	return nil
}

// Write stages an opaque byte range.
//
// Ranges that can never fit in the staging buffer are forwarded directly to
// the sink after a drain; smaller ranges are staged. Either way the bytes
// land on the wire in call order.
func (w *Writer) Write(p []byte) (int, error) {
	if w.out == nil {
		return 0, errs.ErrReleased
	}

	if len(p) >= len(w.buf) {
		if err := w.drain(); err != nil {
			return 0, err
		}

		return w.out.Write(p)
	}

	if len(w.buf)-w.pos < len(p) {
		if err := w.drain(); err != nil {
			return 0, err
		}
	}
	copy(w.buf[w.pos:], p)
	w.pos += len(p)

	return len(p), nil
}

// WriteBool writes a boolean as a single 0x00 or 0x01 byte.
func (w *Writer) WriteBool(v bool) error {
	if v {
		return w.WriteUint8(1)
	}

	return w.WriteUint8(0)
}

// WriteUint8 writes a single byte.
func (w *Writer) WriteUint8(v uint8) error {
	if err := w.ensure(1); err != nil {
		return err
	}
	w.buf[w.pos] = v
	w.pos++

	return nil
}

// WriteInt8 writes a signed byte in two's complement.
func (w *Writer) WriteInt8(v int8) error {
	return w.WriteUint8(uint8(v))
}

// WriteUint16 writes a 16-bit value big-endian.
func (w *Writer) WriteUint16(v uint16) error {
	if err := w.ensure(2); err != nil {
		return err
	}
	w.engine.PutUint16(w.buf[w.pos:], v)
	w.pos += 2

	return nil
}

// WriteInt16 writes a 16-bit signed value big-endian in two's complement.
func (w *Writer) WriteInt16(v int16) error {
	return w.WriteUint16(uint16(v))
}

// WriteChar writes a UTF-16 code unit. It is wire-identical to WriteUint16;
// the 16-bit narrowing of wider character values happens in the argument
// conversion.
func (w *Writer) WriteChar(v uint16) error {
	return w.WriteUint16(v)
}

// WriteUint32 writes a 32-bit value big-endian.
func (w *Writer) WriteUint32(v uint32) error {
	if err := w.ensure(4); err != nil {
		return err
	}
	w.engine.PutUint32(w.buf[w.pos:], v)
	w.pos += 4

	return nil
}

// WriteInt32 writes a 32-bit signed value big-endian in two's complement.
func (w *Writer) WriteInt32(v int32) error {
	return w.WriteUint32(uint32(v))
}

// WriteUint64 writes a 64-bit value big-endian.
func (w *Writer) WriteUint64(v uint64) error {
	if err := w.ensure(8); err != nil {
		return err
	}
	w.engine.PutUint64(w.buf[w.pos:], v)
	w.pos += 8

	return nil
}

// WriteInt64 writes a 64-bit signed value big-endian in two's complement.
func (w *Writer) WriteInt64(v int64) error {
	return w.WriteUint64(uint64(v))
}

// WriteFloat32 writes the IEEE-754 bit pattern of v as a 32-bit value.
func (w *Writer) WriteFloat32(v float32) error {
	return w.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 writes the IEEE-754 bit pattern of v as a 64-bit value.
func (w *Writer) WriteFloat64(v float64) error {
	return w.WriteUint64(math.Float64bits(v))
}

// WriteString writes s as a u16 byte-length prefix followed by its Modified
// UTF-8 encoding in the writer's dialect.
//
// Returns errs.ErrStringTooLong when the encoded form exceeds 65535 bytes.
func (w *Writer) WriteString(s string) error {
	if w.out == nil {
		return errs.ErrReleased
	}

	if w.use4ByteSequence {
		return w.writeString4(s)
	}

	return w.writeString3(s)
}

// writeString3 precomputes the encoded length, then encodes either directly
// into staging or through a spill buffer when the encoded form can never
// fit the staging capacity.
func (w *Writer) writeString3(s string) error {
	n := mutf8.EncodedLen(s, false)
	if n > MaxUnsignedShort {
		return errs.ErrStringTooLong
	}

	if 2+n <= len(w.buf) {
		if len(w.buf)-w.pos < 2+n {
			if err := w.drain(); err != nil {
				return err
			}
		}
		w.engine.PutUint16(w.buf[w.pos:], uint16(n))
		w.pos += 2
		mutf8.EncodeInto(w.buf[w.pos:w.pos+n], s, false)
		w.pos += n

		return nil
	}

	return w.writeStringSpill(s, n)
}

// writeString4 attempts to encode straight into the remaining staging
// region and back-patches the length prefix once the byte count is known.
// A negative count from the encoder means the region was too small; the
// magnitude is the required length and the write falls back to a spill
// buffer.
func (w *Writer) writeString4(s string) error {
	// len(s) is a lower bound on the encoded length, so draining on this
	// condition makes the in-place attempt succeed for most strings; the
	// encode itself is the authoritative capacity check.
	if len(w.buf)-w.pos < 2+len(s) {
		if err := w.drain(); err != nil {
			return err
		}
	}

	n := mutf8.EncodeInto(w.buf[w.pos+2:], s, true)
	if n > MaxUnsignedShort || -n > MaxUnsignedShort {
		return errs.ErrStringTooLong
	}

	if n >= 0 {
		w.engine.PutUint16(w.buf[w.pos:], uint16(n))
		w.pos += 2 + n

		return nil
	}

	return w.writeStringSpill(s, -n)
}

// writeStringSpill encodes s into a transient buffer of the exact known
// length and emits it through the large-write path. The buffer carries one
// trailing byte so encoders that terminate their output stay in bounds.
func (w *Writer) writeStringSpill(s string, n int) error {
	sb := pool.GetSpill(n + 1)
	defer pool.PutSpill(sb)

	mutf8.EncodeInto(sb.B, s, w.use4ByteSequence)

	if err := w.WriteUint16(uint16(n)); err != nil {
		return err
	}
	if _, err := w.Write(sb.B[:n]); err != nil {
		return err
	}

	return nil
}

// WriteInternedString writes s in the interned wire form.
//
// The first occurrence of a value emits the u16 sentinel 65535 followed by
// the literal string, and assigns the value the next reference id. Repeats
// emit only the two-byte id. Once 65535 values have been interned, further
// novel values are still written as literals but no longer inserted, which
// keeps a symmetric reader's table aligned.
func (w *Writer) WriteInternedString(s string) error {
	if w.out == nil {
		return errs.ErrReleased
	}

	if ref, ok := w.refs.lookup(s); ok {
		return w.WriteUint16(ref)
	}

	if err := w.WriteUint16(MaxUnsignedShort); err != nil {
		return err
	}
	if err := w.WriteString(s); err != nil {
		return err
	}

	if w.refs.size() < MaxUnsignedShort {
		w.refs.insert(s, uint16(w.refs.size()))
	}

	return nil
}

// WriteBytes is the legacy low-byte string serializer. It is not supported;
// use WriteString.
func (w *Writer) WriteBytes(s string) error {
	return errs.ErrUnsupported
}

// WriteChars is the legacy UTF-16 string serializer. It is not supported;
// use WriteString.
func (w *Writer) WriteChars(s string) error {
	return errs.ErrUnsupported
}
