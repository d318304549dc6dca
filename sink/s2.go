package sink

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// S2Sink compresses the byte stream with S2 (an extended Snappy dialect)
// before handing it to the underlying writer.
//
// S2 favors throughput over ratio, making it a good default transport when
// the stream is consumed on the same machine or a fast local network.
type S2Sink struct {
	zw *s2.Writer
}

var _ Sink = (*S2Sink)(nil)

// NewS2Sink creates a compressing sink writing S2 frames to w.
//
// Close finalizes the S2 stream; it does not close w.
func NewS2Sink(w io.Writer) *S2Sink {
	return &S2Sink{zw: s2.NewWriter(w)}
}

// Write compresses p into the S2 stream.
func (s *S2Sink) Write(p []byte) (int, error) {
	return s.zw.Write(p)
}

// Flush emits a complete S2 block for all buffered bytes.
func (s *S2Sink) Flush() error {
	return s.zw.Flush()
}

// Close finalizes the S2 stream.
func (s *S2Sink) Close() error {
	return s.zw.Close()
}
