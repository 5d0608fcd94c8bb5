package unicode

import (
	"fmt"

	"github.com/libsteve/bibiconv/ioerr"
)

// DecodeUTF8 reads one Unicode scalar from the lead byte of src. It returns
// the scalar and the number of bytes consumed.
//
// It fails with ErrInvalidArgument when src is shorter than the lead byte
// declares, and ErrIllegalSequence when a continuation byte doesn't match
// the 10xxxxxx pattern. No over-long or surrogate filtering is performed
// beyond what the bit patterns themselves enforce, matching the source this
// project was distilled from.
func DecodeUTF8(src []byte) (Scalar, int, error) {
	if len(src) == 0 {
		return 0, 0, fmt.Errorf("utf8 decode: empty input: %w", ioerr.ErrInvalidArgument)
	}

	lead := src[0]
	var n int
	var result Scalar

	switch {
	case lead < 0x80:
		return Scalar(lead), 1, nil
	case lead&0xE0 == 0xC0:
		n, result = 2, Scalar(lead&0x1F)
	case lead&0xF0 == 0xE0:
		n, result = 3, Scalar(lead&0x0F)
	case lead&0xF8 == 0xF0:
		n, result = 4, Scalar(lead&0x07)
	default:
		return 0, 0, fmt.Errorf("utf8 decode: invalid lead byte 0x%02X: %w", lead, ioerr.ErrIllegalSequence)
	}

	if len(src) < n {
		return 0, 0, fmt.Errorf("utf8 decode: truncated %d-byte sequence: %w", n, ioerr.ErrInvalidArgument)
	}

	for i := 1; i < n; i++ {
		b := src[i]
		if b&0xC0 != 0x80 {
			return 0, 0, fmt.Errorf("utf8 decode: bad continuation byte at offset %d: %w", i, ioerr.ErrIllegalSequence)
		}
		result = result<<6 | Scalar(b&0x3F)
	}

	return result, n, nil
}

// EncodeUTF8 writes the UTF-8 encoding of s into the start of dst, returning
// the number of bytes written. It fails with ErrIllegalSequence for scalars in the
// surrogate block or above U+10FFFF, and ErrOutputTooBig when dst has
// insufficient room.
func EncodeUTF8(dst []byte, s Scalar) (int, error) {
	switch {
	case s <= 0x7F:
		if len(dst) < 1 {
			return 0, fmt.Errorf("utf8 encode: %w", ioerr.ErrOutputTooBig)
		}
		dst[0] = byte(s)
		return 1, nil
	case s <= 0x7FF:
		if len(dst) < 2 {
			return 0, fmt.Errorf("utf8 encode: %w", ioerr.ErrOutputTooBig)
		}
		dst[0] = 0xC0 | byte(s>>6)
		dst[1] = 0x80 | byte(s&0x3F)
		return 2, nil
	case s >= surrogateLow && s <= surrogateHigh:
		return 0, fmt.Errorf("utf8 encode: surrogate scalar U+%04X: %w", uint32(s), ioerr.ErrIllegalSequence)
	case s <= 0xFFFF:
		if len(dst) < 3 {
			return 0, fmt.Errorf("utf8 encode: %w", ioerr.ErrOutputTooBig)
		}
		dst[0] = 0xE0 | byte(s>>12)
		dst[1] = 0x80 | byte((s>>6)&0x3F)
		dst[2] = 0x80 | byte(s&0x3F)
		return 3, nil
	case s <= MaxScalar:
		if len(dst) < 4 {
			return 0, fmt.Errorf("utf8 encode: %w", ioerr.ErrOutputTooBig)
		}
		dst[0] = 0xF0 | byte(s>>18)
		dst[1] = 0x80 | byte((s>>12)&0x3F)
		dst[2] = 0x80 | byte((s>>6)&0x3F)
		dst[3] = 0x80 | byte(s&0x3F)
		return 4, nil
	default:
		return 0, fmt.Errorf("utf8 encode: scalar U+%X out of range: %w", uint32(s), ioerr.ErrIllegalSequence)
	}
}
