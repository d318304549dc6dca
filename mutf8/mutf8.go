// Package mutf8 implements the Modified UTF-8 encoding used by the fastdata
// wire format.
//
// Modified UTF-8 differs from standard UTF-8 in two respects:
//
//  1. The code point U+0000 is encoded as the two-byte sequence 0xC0 0x80,
//     never as a single null byte. Encoded strings therefore contain no
//     embedded zero bytes.
//  2. In the canonical 3-byte dialect, supplementary code points
//     (U+10000..U+10FFFF) are split into a UTF-16 surrogate pair and each
//     half is encoded independently as a 3-byte sequence, yielding 6 bytes
//     per supplementary code point.
//
// The package also implements the 4-byte dialect, which coalesces surrogate
// pairs and emits a single standard 4-byte UTF-8 sequence for supplementary
// code points. That dialect exists for bit-exact compatibility with historic
// readers that diverged from the canonical form; both dialects are
// first-class and are selected per writer.
//
// Decode accepts either dialect, recombining 3-byte surrogate pairs and
// passing 4-byte sequences through, so a single reader handles streams from
// writers of both configurations.
package mutf8

import (
	"strings"

	"github.com/arloliu/fastdata/errs"
)

// Surrogate halves of the UTF-16 representation of supplementary code
// points. Values in [surrMin, surrMax] never appear as standalone code
// points in a valid Go string.
const (
	surrMin  = 0xD800
	surrMid  = 0xDC00
	surrMax  = 0xDFFF
	surrSelf = 0x10000
)

// EncodedLen reports the exact number of bytes Append or EncodeInto will
// produce for s under the selected dialect, without encoding anything.
//
// Parameters:
//   - s: String to measure
//   - use4ByteSequence: true for the 4-byte dialect, false for 3-byte
//
// Returns:
//   - int: Encoded byte count
func EncodedLen(s string, use4ByteSequence bool) int {
	n := 0
	for _, r := range s {
		switch {
		case r == 0:
			n += 2
		case r < 0x80:
			n++
		case r < 0x800:
			n += 2
		case r < surrSelf:
			n += 3
		case use4ByteSequence:
			n += 4
		default:
			n += 6
		}
	}

	return n
}

// Append encodes s under the selected dialect and appends the result to dst,
// returning the extended slice.
func Append(dst []byte, s string, use4ByteSequence bool) []byte {
	var tmp [6]byte
	for _, r := range s {
		k := encodeRune(&tmp, r, use4ByteSequence)
		dst = append(dst, tmp[:k]...)
	}

	return dst
}

// EncodeInto encodes s into dst, writing from dst[0].
//
// On success it returns the number of bytes written. If dst is too small it
// returns the negated total byte count required, so callers can allocate a
// sufficient buffer and retry; dst may contain a partial encoding in that
// case and its contents must be discarded.
//
// This is the protocol the string writer uses for its in-place fast path:
// attempt the encode directly into remaining staging space, and fall back to
// a spill buffer of the reported size when the attempt fails.
func EncodeInto(dst []byte, s string, use4ByteSequence bool) int {
	var tmp [6]byte
	n := 0
	fits := true
	for _, r := range s {
		k := encodeRune(&tmp, r, use4ByteSequence)
		if fits && n+k <= len(dst) {
			copy(dst[n:], tmp[:k])
		} else {
			fits = false
		}
		n += k
	}

	if !fits {
		return -n
	}

	return n
}

// encodeRune encodes a single code point into buf and returns the byte
// count. Supplementary code points produce 4 bytes in the 4-byte dialect and
// a 6-byte surrogate pair in the 3-byte dialect.
func encodeRune(buf *[6]byte, r rune, use4ByteSequence bool) int {
	switch {
	case r == 0:
		buf[0] = 0xC0
		buf[1] = 0x80

		return 2
	case r < 0x80:
		buf[0] = byte(r)

		return 1
	case r < 0x800:
		buf[0] = 0xC0 | byte(r>>6)
		buf[1] = 0x80 | byte(r&0x3F)

		return 2
	case r < surrSelf:
		buf[0] = 0xE0 | byte(r>>12)
		buf[1] = 0x80 | byte((r>>6)&0x3F)
		buf[2] = 0x80 | byte(r&0x3F)

		return 3
	case use4ByteSequence:
		buf[0] = 0xF0 | byte(r>>18)
		buf[1] = 0x80 | byte((r>>12)&0x3F)
		buf[2] = 0x80 | byte((r>>6)&0x3F)
		buf[3] = 0x80 | byte(r&0x3F)

		return 4
	default:
		r -= surrSelf
		hi := surrMin + (r >> 10)
		lo := surrMid + (r & 0x3FF)
		buf[0] = 0xE0 | byte(hi>>12)
		buf[1] = 0x80 | byte((hi>>6)&0x3F)
		buf[2] = 0x80 | byte(hi&0x3F)
		buf[3] = 0xE0 | byte(lo>>12)
		buf[4] = 0x80 | byte((lo>>6)&0x3F)
		buf[5] = 0x80 | byte(lo&0x3F)

		return 6
	}
}

// Decode converts Modified UTF-8 bytes back into a string.
//
// It accepts both dialects: 3-byte surrogate pairs are recombined into
// supplementary code points, and 4-byte sequences are passed through
// directly. A raw zero byte, a truncated sequence, an unpaired surrogate, or
// a 4-byte sequence outside the supplementary range yields
// errs.ErrMalformedUTF.
func Decode(b []byte) (string, error) {
	var sb strings.Builder
	sb.Grow(len(b))

	i := 0
	for i < len(b) {
		c := b[i]
		switch {
		case c == 0x00:
			// U+0000 is always C0 80 on the wire.
			return "", errs.ErrMalformedUTF
		case c < 0x80:
			sb.WriteByte(c)
			i++
		case c&0xE0 == 0xC0:
			if i+2 > len(b) || !isCont(b[i+1]) {
				return "", errs.ErrMalformedUTF
			}
			sb.WriteRune(rune(c&0x1F)<<6 | rune(b[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0:
			r, err := decode3(b[i:])
			if err != nil {
				return "", err
			}
			if r >= surrMin && r <= surrMax {
				// Surrogate half: must be a high surrogate followed by a
				// 3-byte encoded low surrogate.
				if r >= surrMid || i+6 > len(b) {
					return "", errs.ErrMalformedUTF
				}
				lo, err := decode3(b[i+3:])
				if err != nil || lo < surrMid || lo > surrMax {
					return "", errs.ErrMalformedUTF
				}
				sb.WriteRune(surrSelf + (r-surrMin)<<10 + (lo - surrMid))
				i += 6
			} else {
				sb.WriteRune(r)
				i += 3
			}
		case c&0xF8 == 0xF0:
			if i+4 > len(b) || !isCont(b[i+1]) || !isCont(b[i+2]) || !isCont(b[i+3]) {
				return "", errs.ErrMalformedUTF
			}
			r := rune(c&0x07)<<18 | rune(b[i+1]&0x3F)<<12 | rune(b[i+2]&0x3F)<<6 | rune(b[i+3]&0x3F)
			if r < surrSelf || r > 0x10FFFF {
				return "", errs.ErrMalformedUTF
			}
			sb.WriteRune(r)
			i += 4
		default:
			return "", errs.ErrMalformedUTF
		}
	}

	return sb.String(), nil
}

// decode3 decodes one 3-byte sequence starting at b[0].
func decode3(b []byte) (rune, error) {
	if len(b) < 3 || !isCont(b[1]) || !isCont(b[2]) {
		return 0, errs.ErrMalformedUTF
	}

	return rune(b[0]&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F), nil
}

func isCont(b byte) bool {
	return b&0xC0 == 0x80
}
