// Package codec implements the POSIX-iconv-flavored converter descriptor:
// Open/Convert/Close over a registry of MARC-8 and Unicode transformation
// format codecs.
package codec

import "github.com/libsteve/bibiconv/unicode"

// ScalarDecoder turns a byte stream into Unicode scalars, one at a time,
// advancing *src by exactly the bytes it consumes on success and leaving it
// untouched on failure. marc8.Decoder and this package's UTF-8/16/32
// adapters all implement it.
type ScalarDecoder interface {
	Read(src *[]byte) (unicode.Scalar, error)
}

// ScalarEncoder writes one Unicode scalar to dst, advancing *dst by the
// bytes it wrote. It fails with ErrOutputTooBig when *dst has insufficient
// room, leaving *dst untouched so the caller can retry after growing it.
type ScalarEncoder interface {
	Write(dst *[]byte, s unicode.Scalar) (int, error)
}
