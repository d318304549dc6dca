package stream

import "github.com/arloliu/fastdata/internal/options"

// writerConfig collects construction-time settings. Both the staging
// capacity and the UTF dialect are immutable for the writer's lifetime.
type writerConfig struct {
	bufferSize       int
	use4ByteSequence bool
}

// WriterOption configures a Writer at construction.
type WriterOption = options.Option[*writerConfig]

// applyWriterOptions applies opts to cfg in order.
func applyWriterOptions(cfg *writerConfig, opts ...WriterOption) error {
	return options.Apply(cfg, opts...)
}

// WithBufferSize sets the staging buffer capacity in bytes.
//
// The capacity governs when strings take the spill path: encoded forms that
// can never fit the buffer are staged in a transient buffer instead. It has
// no effect on the bytes produced. Capacities below 8 are rejected by
// NewWriter with errs.ErrInvalidBufferSize.
func WithBufferSize(size int) WriterOption {
	return options.NoError(func(cfg *writerConfig) {
		cfg.bufferSize = size
	})
}

// With3ByteSequences selects the canonical Modified UTF-8 dialect, which
// encodes supplementary code points as two 3-byte surrogate sequences.
func With3ByteSequences() WriterOption {
	return options.NoError(func(cfg *writerConfig) {
		cfg.use4ByteSequence = false
	})
}

// With4ByteSequences selects the dialect that encodes supplementary code
// points as single 4-byte sequences. This is the default, matching the
// historic reader divergence the dialect exists for.
func With4ByteSequences() WriterOption {
	return options.NoError(func(cfg *writerConfig) {
		cfg.use4ByteSequence = true
	})
}
