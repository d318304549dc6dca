package sink

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4Sink compresses the byte stream into an LZ4 frame before handing it to
// the underlying writer.
type LZ4Sink struct {
	zw *lz4.Writer
}

var _ Sink = (*LZ4Sink)(nil)

// NewLZ4Sink creates a compressing sink writing an LZ4 frame to w.
//
// Close finalizes the frame; it does not close w.
func NewLZ4Sink(w io.Writer) *LZ4Sink {
	return &LZ4Sink{zw: lz4.NewWriter(w)}
}

// Write compresses p into the LZ4 frame.
func (s *LZ4Sink) Write(p []byte) (int, error) {
	return s.zw.Write(p)
}

// Flush writes any buffered data to the underlying writer as a complete
// block.
func (s *LZ4Sink) Flush() error {
	return s.zw.Flush()
}

// Close finalizes the LZ4 frame.
func (s *LZ4Sink) Close() error {
	return s.zw.Close()
}
