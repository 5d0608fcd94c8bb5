package unicode

import (
	"encoding/binary"
	"fmt"

	"github.com/libsteve/bibiconv/ioerr"
)

// DecodeUTF32 reads one little-endian 32-bit scalar from src.
//
// The source this project was distilled from read the address of its source
// pointer instead of the four bytes it pointed to — a defect. This
// implementation always assembles the scalar from the four bytes at src, as
// required by spec §9.
func DecodeUTF32(src []byte) (Scalar, int, error) {
	if len(src) < 4 {
		return 0, 0, fmt.Errorf("utf32 decode: truncated code unit: %w", ioerr.ErrInvalidArgument)
	}
	s := Scalar(binary.LittleEndian.Uint32(src))
	if !s.Valid() {
		return 0, 0, fmt.Errorf("utf32 decode: scalar U+%X out of range: %w", uint32(s), ioerr.ErrIllegalSequence)
	}
	return s, 4, nil
}

// EncodeUTF32 writes the little-endian 32-bit encoding of s into the start
// of dst, returning the number of bytes written.
func EncodeUTF32(dst []byte, s Scalar) (int, error) {
	if len(dst) < 4 {
		return 0, fmt.Errorf("utf32 encode: %w", ioerr.ErrOutputTooBig)
	}
	if !s.Valid() {
		return 0, fmt.Errorf("utf32 encode: scalar U+%X out of range: %w", uint32(s), ioerr.ErrIllegalSequence)
	}
	binary.LittleEndian.PutUint32(dst, uint32(s))
	return 4, nil
}
