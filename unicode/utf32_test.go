package unicode_test

import (
	"errors"
	"testing"

	"github.com/libsteve/bibiconv/ioerr"
	"github.com/libsteve/bibiconv/unicode"
)

func TestDecodeUTF32(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    unicode.Scalar
		wantErr error
	}{
		{name: "supplementary", input: []byte{0x00, 0xF6, 0x01, 0x00}, want: 0x1F600},
		{name: "truncated", input: []byte{0x00, 0xF6, 0x01}, wantErr: ioerr.ErrInvalidArgument},
		{name: "surrogate", input: []byte{0x00, 0xD8, 0x00, 0x00}, wantErr: ioerr.ErrIllegalSequence},
		{name: "too big", input: []byte{0x00, 0x00, 0x11, 0x00}, wantErr: ioerr.ErrIllegalSequence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n, err := unicode.DecodeUTF32(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DecodeUTF32(% X) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeUTF32(% X) unexpected error: %v", tt.input, err)
			}
			if got != tt.want || n != 4 {
				t.Fatalf("DecodeUTF32(% X) = (%#x, %d), want (%#x, 4)", tt.input, got, n, tt.want)
			}
		})
	}
}

func TestUTF32RoundTrip(t *testing.T) {
	for _, s := range []unicode.Scalar{0x00, 0x2713, 0x10000, unicode.MaxScalar} {
		buf := make([]byte, 4)
		if _, err := unicode.EncodeUTF32(buf, s); err != nil {
			t.Fatalf("EncodeUTF32(%#x): %v", s, err)
		}
		got, _, err := unicode.DecodeUTF32(buf)
		if err != nil {
			t.Fatalf("DecodeUTF32 round trip of %#x: %v", s, err)
		}
		if got != s {
			t.Fatalf("round trip %#x -> %#x", s, got)
		}
	}
}

func TestCrossUTFRoundTrip(t *testing.T) {
	// UTF-8 -> UTF-16 -> UTF-32 -> UTF-8 preserves the scalar sequence.
	scalars := []unicode.Scalar{0x43, 0x61, 0x66, 0xE9, 0x2713, 0x1F600}

	var utf8Buf []byte
	for _, s := range scalars {
		b := make([]byte, 4)
		n, err := unicode.EncodeUTF8(b, s)
		if err != nil {
			t.Fatalf("EncodeUTF8(%#x): %v", s, err)
		}
		utf8Buf = append(utf8Buf, b[:n]...)
	}

	var decoded []unicode.Scalar
	for len(utf8Buf) > 0 {
		s, n, err := unicode.DecodeUTF8(utf8Buf)
		if err != nil {
			t.Fatalf("DecodeUTF8: %v", err)
		}
		decoded = append(decoded, s)
		utf8Buf = utf8Buf[n:]
	}

	var utf16Buf []byte
	for _, s := range decoded {
		b := make([]byte, 4)
		n, err := unicode.EncodeUTF16(b, s)
		if err != nil {
			t.Fatalf("EncodeUTF16(%#x): %v", s, err)
		}
		utf16Buf = append(utf16Buf, b[:n]...)
	}

	decoded = nil
	for len(utf16Buf) > 0 {
		s, n, err := unicode.DecodeUTF16(utf16Buf)
		if err != nil {
			t.Fatalf("DecodeUTF16: %v", err)
		}
		decoded = append(decoded, s)
		utf16Buf = utf16Buf[n:]
	}

	var utf32Buf []byte
	for _, s := range decoded {
		b := make([]byte, 4)
		if _, err := unicode.EncodeUTF32(b, s); err != nil {
			t.Fatalf("EncodeUTF32(%#x): %v", s, err)
		}
		utf32Buf = append(utf32Buf, b...)
	}

	decoded = nil
	for len(utf32Buf) > 0 {
		s, n, err := unicode.DecodeUTF32(utf32Buf)
		if err != nil {
			t.Fatalf("DecodeUTF32: %v", err)
		}
		decoded = append(decoded, s)
		utf32Buf = utf32Buf[n:]
	}

	if len(decoded) != len(scalars) {
		t.Fatalf("scalar count = %d, want %d", len(decoded), len(scalars))
	}
	for i, s := range scalars {
		if decoded[i] != s {
			t.Fatalf("scalar %d = %#x, want %#x", i, decoded[i], s)
		}
	}
}
