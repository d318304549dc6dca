package sink

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// ZstdSink compresses the byte stream with Zstandard before handing it to
// the underlying writer.
//
// Zstd trades some encode throughput for a substantially better ratio than
// S2 or LZ4, which suits archival streams and constrained links.
type ZstdSink struct {
	zw *zstd.Encoder
}

var _ Sink = (*ZstdSink)(nil)

// NewZstdSink creates a compressing sink writing a zstd stream to w.
//
// Close finalizes the zstd stream; it does not close w.
func NewZstdSink(w io.Writer) (*ZstdSink, error) {
	zw, err := zstd.NewWriter(w,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderCRC(false),
	)
	if err != nil {
		return nil, err
	}

	return &ZstdSink{zw: zw}, nil
}

// Write compresses p into the zstd stream.
func (s *ZstdSink) Write(p []byte) (int, error) {
	return s.zw.Write(p)
}

// Flush emits a complete zstd block for all buffered bytes.
func (s *ZstdSink) Flush() error {
	return s.zw.Flush()
}

// Close finalizes the zstd stream.
func (s *ZstdSink) Close() error {
	return s.zw.Close()
}
