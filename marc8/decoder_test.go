package marc8_test

import (
	"errors"
	"testing"

	"github.com/libsteve/bibiconv/ioerr"
	"github.com/libsteve/bibiconv/marc8"
	"github.com/libsteve/bibiconv/unicode"
)

func readAll(t *testing.T, d *marc8.Decoder, src []byte) []unicode.Scalar {
	t.Helper()
	var got []unicode.Scalar
	for len(src) > 0 || d.Pending() {
		s, err := d.Read(&src)
		if err != nil {
			t.Fatalf("Read: %v (remaining %X)", err, src)
		}
		if s == 0 {
			break
		}
		got = append(got, s)
	}
	return got
}

func TestDecoderBasicLatin(t *testing.T) {
	d := marc8.NewDecoder()
	got := readAll(t, d, []byte("Cat"))
	want := []unicode.Scalar{'C', 'a', 't'}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

// "Café" in MARC-8: C a f, then ANSEL combining acute (0xE2) before e.
// Decoder.Read must reorder the combining scalar to follow 'e'.
func TestDecoderCombiningReorder(t *testing.T) {
	d := marc8.NewDecoder()
	src := []byte{0x43, 0x61, 0x66, 0xE2, 0x65}
	got := readAll(t, d, src)
	want := []unicode.Scalar{'C', 'a', 'f', 'e', 0x0301}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestDecoderEACCShift(t *testing.T) {
	d := marc8.NewDecoder()
	src := []byte{0x1B, 0x24, 0x31, 0x21, 0x21, 0x21}
	s, err := d.Read(&src)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if s != 0x4E00 {
		t.Fatalf("Read = %#x, want 0x4E00", s)
	}
	if len(src) != 0 {
		t.Fatalf("src = %X, want fully consumed", src)
	}
}

func TestDecoderExplicitG1Shift(t *testing.T) {
	d := marc8.NewDecoder()
	// Shift G1 to Basic Hebrew (finalizer '2'), then read its first letter.
	src := []byte{0x1B, 0x29, 0x32, 0xC1}
	s, err := d.Read(&src)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if s != 0x05D0 {
		t.Fatalf("Read = %#x, want 0x5D0 (aleph)", s)
	}
}

func TestDecoderExtendedLatinRequiresBang(t *testing.T) {
	d := marc8.NewDecoder()
	src := []byte{0x1B, 0x28, 0x45} // missing '!' before 'E'
	if _, err := d.Read(&src); !errors.Is(err, ioerr.ErrIllegalSequence) {
		t.Fatalf("Read error = %v, want ErrIllegalSequence", err)
	}
}

func TestDecoderRollsBackOnIllegalEscape(t *testing.T) {
	d := marc8.NewDecoder()
	src := []byte{0x1B, 0x2E} // 0x2E is not a recognized intermediate
	saved := append([]byte(nil), src...)
	if _, err := d.Read(&src); !errors.Is(err, ioerr.ErrIllegalSequence) {
		t.Fatalf("Read error = %v, want ErrIllegalSequence", err)
	}
	if string(src) != string(saved) {
		t.Fatalf("src mutated on failure: got %X, want %X", src, saved)
	}
}

func TestDecoderNulTerminator(t *testing.T) {
	d := marc8.NewDecoder()
	src := []byte{0x41, 0x00}
	s, err := d.Read(&src)
	if err != nil || s != 'A' {
		t.Fatalf("Read = (%#x, %v), want ('A', nil)", s, err)
	}
	s, err = d.Read(&src)
	if err != nil || s != 0 {
		t.Fatalf("Read at NUL = (%#x, %v), want (0, nil)", s, err)
	}
	if len(src) != 0 {
		t.Fatalf("src = %X, want fully consumed", src)
	}
}

func TestDecoderSingleEscAtEndOfInput(t *testing.T) {
	d := marc8.NewDecoder()
	src := []byte{0x1B}
	if _, err := d.Read(&src); !errors.Is(err, ioerr.ErrIllegalSequence) {
		t.Fatalf("Read error = %v, want ErrIllegalSequence", err)
	}
}

// TestWorkingSetMonotonicityAcrossNoOp covers spec invariant 5: processing
// only non-shift graphic bytes leaves the working set unchanged, and an
// escape sequence mutates only the area(s) it addresses.
func TestWorkingSetMonotonicityAcrossNoOp(t *testing.T) {
	ws := marc8.NewWorkingSet()
	before := ws.Clone()

	for _, b := range []byte("plain ascii, no shifts") {
		src := []byte{b}
		if _, _, _, err := marc8.Lookup(ws, src, 0); err != nil {
			t.Fatalf("Lookup(%q): %v", string(b), err)
		}
	}
	if ws.CodeTable != before.CodeTable {
		t.Fatalf("working set mutated by graphic-byte-only processing")
	}
	if len(ws.CodeSpans) != len(before.CodeSpans) {
		t.Fatalf("CodeSpans mutated by graphic-byte-only processing")
	}

	ws.ShiftG0(&marc8.BasicHebrew)
	if ws.CodeTable.GL == before.CodeTable.GL {
		t.Fatalf("ShiftG0 did not change GL")
	}
	if ws.CodeTable.CR != before.CodeTable.CR || ws.CodeTable.GR != before.CodeTable.GR {
		t.Fatalf("ShiftG0 touched CR/GR, want untouched")
	}
}

func TestDecoderPendingReflectsCombiningBuffer(t *testing.T) {
	d := marc8.NewDecoder()
	src := []byte{0x43, 0x61, 0x66, 0xE2, 0x65} // "Caf" + combining acute + "e"
	if d.Pending() {
		t.Fatalf("Pending() = true before any Read")
	}
	for range "Caf" {
		if _, err := d.Read(&src); err != nil {
			t.Fatalf("Read: %v", err)
		}
	}
	// Next Read consumes the combining mark and the base 'e', returning 'e'
	// and leaving the reordered accent buffered.
	s, err := d.Read(&src)
	if err != nil || s != 'e' {
		t.Fatalf("Read = (%#x, %v), want ('e', nil)", s, err)
	}
	if !d.Pending() {
		t.Fatalf("Pending() = false, want true after combining mark buffered")
	}
	s, err = d.Read(&src)
	if err != nil || s != 0x0301 {
		t.Fatalf("Read = (%#x, %v), want (U+0301, nil)", s, err)
	}
	if d.Pending() {
		t.Fatalf("Pending() = true after combining buffer drained")
	}
}
