package sink

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"
)

var compressPayload = []byte(strings.Repeat("interned strings compress well well well ", 256))

func writeAndClose(t *testing.T, s Sink) {
	t.Helper()

	half := len(compressPayload) / 2
	_, err := s.Write(compressPayload[:half])
	require.NoError(t, err)
	require.NoError(t, s.Flush())
	_, err = s.Write(compressPayload[half:])
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func TestS2Sink_RoundTrip(t *testing.T) {
	var under bytes.Buffer
	writeAndClose(t, NewS2Sink(&under))
	require.Less(t, under.Len(), len(compressPayload))

	got, err := io.ReadAll(s2.NewReader(&under))
	require.NoError(t, err)
	require.Equal(t, compressPayload, got)
}

func TestLZ4Sink_RoundTrip(t *testing.T) {
	var under bytes.Buffer
	writeAndClose(t, NewLZ4Sink(&under))
	require.Less(t, under.Len(), len(compressPayload))

	got, err := io.ReadAll(lz4.NewReader(&under))
	require.NoError(t, err)
	require.Equal(t, compressPayload, got)
}

func TestZstdSink_RoundTrip(t *testing.T) {
	var under bytes.Buffer
	zs, err := NewZstdSink(&under)
	require.NoError(t, err)
	writeAndClose(t, zs)
	require.Less(t, under.Len(), len(compressPayload))

	zr, err := zstd.NewReader(&under)
	require.NoError(t, err)
	defer zr.Close()

	got, err := io.ReadAll(zr)
	require.NoError(t, err)
	require.Equal(t, compressPayload, got)
}
