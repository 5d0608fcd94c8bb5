// Package textenc exposes the MARC-8 codec through golang.org/x/text's
// Encoding/Transformer interfaces, so callers already built around
// transform.NewReader, transform.String or encoding.Decoder can consume
// MARC-8 the same way they'd consume any other x/text legacy encoding,
// alongside the POSIX-flavored codec.Open/Convert/Close API.
package textenc

import (
	"errors"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/libsteve/bibiconv/ioerr"
	"github.com/libsteve/bibiconv/marc8"
	"github.com/libsteve/bibiconv/unicode"
)

// ErrEncodeNotImplemented is returned by MARC8's Encoder. Spec §9 defers
// the Unicode-to-MARC-8 forward direction: the source's codespace.h sketches
// a code-page/range/candidate lookup structure for a future encoder, but
// implementing it is out of scope here.
var ErrEncodeNotImplemented = errors.New("textenc: unicode to MARC-8 is not implemented")

// MARC8 is the MARC-8/ANSEL encoding. Its decoder is fully functional;
// its encoder always fails with ErrEncodeNotImplemented, serving as the
// hook spec §9 asks implementers to leave for a future forward direction.
var MARC8 encoding.Encoding = marc8Encoding{}

type marc8Encoding struct{}

func (marc8Encoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: newMARC8Decoder()}
}

func (marc8Encoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: marc8EncoderStub{}}
}

// marc8Decoder adapts marc8.Decoder to transform.Transformer. A scalar
// decoded but not yet fit in dst is held in pending across calls, the same
// carry-over discipline codec.Descriptor uses for its encoder side.
type marc8Decoder struct {
	dec        *marc8.Decoder
	pending    unicode.Scalar
	hasPending bool
}

func newMARC8Decoder() *marc8Decoder {
	return &marc8Decoder{dec: marc8.NewDecoder()}
}

func (t *marc8Decoder) Reset() {
	t.dec.Reset()
	t.pending = 0
	t.hasPending = false
}

func (t *marc8Decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	rest := src
	for {
		var scalar unicode.Scalar
		if t.hasPending {
			scalar = t.pending
		} else {
			if len(rest) == 0 && !t.dec.Pending() {
				break
			}
			s, rerr := t.dec.Read(&rest)
			if rerr != nil {
				if !atEOF && ioerr.CodeOf(rerr) == ioerr.CodeInvalidArgument {
					err = transform.ErrShortSrc
				} else {
					err = rerr
				}
				break
			}
			scalar = s
		}

		n, werr := unicode.EncodeUTF8(dst[nDst:], scalar)
		if werr != nil {
			t.pending = scalar
			t.hasPending = true
			err = transform.ErrShortDst
			break
		}
		t.hasPending = false
		nDst += n
	}
	nSrc = len(src) - len(rest)
	return nDst, nSrc, err
}

type marc8EncoderStub struct{ transform.NopResetter }

func (marc8EncoderStub) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if len(src) == 0 {
		return 0, 0, nil
	}
	return 0, 0, ErrEncodeNotImplemented
}
