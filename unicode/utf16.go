package unicode

import (
	"fmt"

	"github.com/libsteve/bibiconv/ioerr"
)

const (
	highSurrogateStart = 0xD800
	highSurrogateEnd   = 0xDBFF
	lowSurrogateStart  = 0xDC00
	lowSurrogateEnd    = 0xDFFF
	supplementaryBase  = 0x10000
)

// DecodeUTF16 reads one Unicode scalar from a little-endian UTF-16 byte
// sequence, returning the scalar and the number of bytes consumed (2 or 4).
//
// A code unit outside the surrogate block decodes directly. A high surrogate
// must be followed by a low surrogate; anything else is ErrIllegalSequence.
// A lone low surrogate, encountered first, is also ErrIllegalSequence.
// Truncated input (fewer than 2, or fewer than 4 when a high surrogate
// demands a pair) is ErrInvalidArgument.
func DecodeUTF16(src []byte) (Scalar, int, error) {
	if len(src) < 2 {
		return 0, 0, fmt.Errorf("utf16 decode: truncated code unit: %w", ioerr.ErrInvalidArgument)
	}

	first := uint16(src[0]) | uint16(src[1])<<8

	if first < highSurrogateStart || first > lowSurrogateEnd {
		return Scalar(first), 2, nil
	}

	if first > highSurrogateEnd {
		return 0, 0, fmt.Errorf("utf16 decode: lone low surrogate 0x%04X: %w", first, ioerr.ErrIllegalSequence)
	}

	if len(src) < 4 {
		return 0, 0, fmt.Errorf("utf16 decode: truncated surrogate pair: %w", ioerr.ErrInvalidArgument)
	}

	second := uint16(src[2]) | uint16(src[3])<<8
	if second < lowSurrogateStart || second > lowSurrogateEnd {
		return 0, 0, fmt.Errorf("utf16 decode: high surrogate 0x%04X not followed by low surrogate: %w", first, ioerr.ErrIllegalSequence)
	}

	s := (Scalar(first-highSurrogateStart) << 10) + Scalar(second-lowSurrogateStart) + supplementaryBase
	return s, 4, nil
}

// EncodeUTF16 writes the little-endian UTF-16 encoding of s into the start
// of dst, returning the number of bytes written. BMP
// scalars (including the three sentinel values, which fit in 16 bits)
// produce one code unit; supplementary scalars produce a surrogate pair.
func EncodeUTF16(dst []byte, s Scalar) (int, error) {
	if s >= surrogateLow && s <= surrogateHigh {
		return 0, fmt.Errorf("utf16 encode: surrogate scalar U+%04X: %w", uint32(s), ioerr.ErrIllegalSequence)
	}
	if s <= 0xFFFF {
		if len(dst) < 2 {
			return 0, fmt.Errorf("utf16 encode: %w", ioerr.ErrOutputTooBig)
		}
		putUint16LE(dst, uint16(s))
		return 2, nil
	}
	if s > MaxScalar {
		return 0, fmt.Errorf("utf16 encode: scalar U+%X out of range: %w", uint32(s), ioerr.ErrIllegalSequence)
	}
	if len(dst) < 4 {
		return 0, fmt.Errorf("utf16 encode: %w", ioerr.ErrOutputTooBig)
	}
	v := s - supplementaryBase
	hi := highSurrogateStart | uint16(v>>10)
	lo := lowSurrogateStart | uint16(v&0x3FF)
	putUint16LE(dst, hi)
	putUint16LE(dst[2:], lo)
	return 4, nil
}

func putUint16LE(dst []byte, v uint16) {
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
}
