//go:build nobuild

package sink

import (
	"io"

	"github.com/valyala/gozstd"
)

// CgoZstdSink is the cgo-backed Zstandard sink. It uses the reference
// libzstd implementation, which compresses faster than the pure-Go encoder
// at the same level.
type CgoZstdSink struct {
	zw *gozstd.Writer
}

var _ Sink = (*CgoZstdSink)(nil)

// NewCgoZstdSink creates a compressing sink writing a zstd stream to w.
func NewCgoZstdSink(w io.Writer) *CgoZstdSink {
	return &CgoZstdSink{zw: gozstd.NewWriter(w)}
}

// Write compresses p into the zstd stream.
func (s *CgoZstdSink) Write(p []byte) (int, error) {
	return s.zw.Write(p)
}

// Flush emits all buffered bytes as a complete zstd block.
func (s *CgoZstdSink) Flush() error {
	return s.zw.Flush()
}

// Close finalizes the zstd stream and releases the encoder.
func (s *CgoZstdSink) Close() error {
	err := s.zw.Close()
	s.zw.Release()

	return err
}
