package codec

import (
	"github.com/libsteve/bibiconv/marc8"
	"github.com/libsteve/bibiconv/unicode"
)

// newMARC8Decoder adapts marc8.NewDecoder to the zero-argument factory
// shape the registry expects.
func newMARC8Decoder() *marc8.Decoder { return marc8.NewDecoder() }

// utf8Codec, utf16Codec and utf32Codec adapt the stateless unicode package
// functions to ScalarDecoder/ScalarEncoder: each call decodes or encodes
// exactly one scalar and advances the buffer pointer it was given.
type utf8Codec struct{}
type utf16Codec struct{}
type utf32Codec struct{}

func (utf8Codec) Read(src *[]byte) (unicode.Scalar, error) {
	s, n, err := unicode.DecodeUTF8(*src)
	if err != nil {
		return 0, err
	}
	*src = (*src)[n:]
	return s, nil
}

func (utf8Codec) Write(dst *[]byte, s unicode.Scalar) (int, error) {
	n, err := unicode.EncodeUTF8(*dst, s)
	if err != nil {
		return 0, err
	}
	*dst = (*dst)[n:]
	return n, nil
}

func (utf16Codec) Read(src *[]byte) (unicode.Scalar, error) {
	s, n, err := unicode.DecodeUTF16(*src)
	if err != nil {
		return 0, err
	}
	*src = (*src)[n:]
	return s, nil
}

func (utf16Codec) Write(dst *[]byte, s unicode.Scalar) (int, error) {
	n, err := unicode.EncodeUTF16(*dst, s)
	if err != nil {
		return 0, err
	}
	*dst = (*dst)[n:]
	return n, nil
}

func (utf32Codec) Read(src *[]byte) (unicode.Scalar, error) {
	s, n, err := unicode.DecodeUTF32(*src)
	if err != nil {
		return 0, err
	}
	*src = (*src)[n:]
	return s, nil
}

func (utf32Codec) Write(dst *[]byte, s unicode.Scalar) (int, error) {
	n, err := unicode.EncodeUTF32(*dst, s)
	if err != nil {
		return 0, err
	}
	*dst = (*dst)[n:]
	return n, nil
}
