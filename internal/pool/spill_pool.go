package pool

import "sync"

const (
	// SpillDefaultSize is the initial capacity of pooled spill buffers.
	SpillDefaultSize = 4096
	// SpillMaxThreshold caps the capacity of buffers retained by the pool.
	// A spill buffer never needs more than 65536 bytes (the u16 string limit
	// plus a trailing byte); buffers whose capacity exceeds this cap are
	// discarded on Put.
	SpillMaxThreshold = 1024 * 128
)

// SpillBuffer is a transient byte region used when a single encoded value
// exceeds a writer's staging capacity. It lives for the duration of one
// string write and is returned to the pool afterwards.
type SpillBuffer struct {
	B []byte
}

var spillPool = sync.Pool{
	New: func() any {
		return &SpillBuffer{B: make([]byte, 0, SpillDefaultSize)}
	},
}

// GetSpill retrieves a spill buffer with length exactly size, growing the
// underlying slice if the pooled capacity is insufficient.
func GetSpill(size int) *SpillBuffer {
	sb, _ := spillPool.Get().(*SpillBuffer)
	if cap(sb.B) < size {
		sb.B = make([]byte, size)
	} else {
		sb.B = sb.B[:size]
	}

	return sb
}

// PutSpill returns a spill buffer to the pool for reuse. Buffers that grew
// beyond SpillMaxThreshold are dropped to avoid retaining oversized memory.
func PutSpill(sb *SpillBuffer) {
	if sb == nil {
		return
	}

	if cap(sb.B) > SpillMaxThreshold {
		return
	}

	sb.B = sb.B[:0]
	spillPool.Put(sb)
}
