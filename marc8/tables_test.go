package marc8_test

import (
	"errors"
	"testing"

	"github.com/libsteve/bibiconv/ioerr"
	"github.com/libsteve/bibiconv/marc8"
	"github.com/libsteve/bibiconv/unicode"
)

func TestBasicLatinIsASCIIIdentity(t *testing.T) {
	ws := marc8.NewWorkingSet() // GL starts as Basic Latin's GL
	for b := byte(0x20); b < 0x80; b++ {
		cell := marc8.BasicLatin.CodeTable.At(b)
		if !cell.Final() {
			t.Fatalf("BasicLatin byte %#x is not terminal", b)
		}
		scalar, combining, _, err := marc8.Lookup(ws, []byte{b}, 0)
		if err != nil || combining || scalar != unicode.Scalar(b) {
			t.Fatalf("Lookup(%#x) = (%#x, %v, %v), want (%#x, false, nil)", b, scalar, combining, err, b)
		}
	}
}

func TestExtendedLatinUndefinedSlotsAreUnassigned(t *testing.T) {
	ws := marc8.NewWorkingSet() // GR starts as Extended Latin's GR
	for _, b := range []byte{0xAF, 0xBB, 0xC9, 0xFC, 0xFD} {
		cell := marc8.ExtendedLatin.CodeTable.At(b)
		if !cell.Final() {
			t.Fatalf("ExtendedLatin byte %#x expected terminal unassigned cell", b)
		}
		if _, _, _, err := marc8.Lookup(ws, []byte{b}, 0); !errors.Is(err, ioerr.ErrIllegalSequence) {
			t.Fatalf("Lookup(%#x) error = %v, want ErrIllegalSequence (unassigned)", b, err)
		}
	}
}

func TestSubscriptDigitsMapToUnicodeSubscriptBlock(t *testing.T) {
	ws := marc8.NewWorkingSet()
	ws.ShiftG0(&marc8.Subscript)

	scalar, combining, _, err := marc8.Lookup(ws, []byte{'5'}, 0)
	if err != nil {
		t.Fatalf("Lookup('5'): %v", err)
	}
	if combining || scalar != 0x2085 {
		t.Fatalf("Lookup('5') = (%#x, %v), want (0x2085, false)", scalar, combining)
	}
}

func TestEACCSharedSpansAcrossLeadBytes(t *testing.T) {
	ws := marc8.NewWorkingSet()
	ws.ShiftG0(&marc8.EACC)
	ws.ShiftMultibyte(&marc8.EACC)

	for _, lead := range []byte{0x21, 0x30, 0x7E} {
		scalar, _, next, err := marc8.Lookup(ws, []byte{lead, 0x30, 0x30}, 0)
		if err != nil {
			t.Fatalf("Lookup(lead=%#x): %v", lead, err)
		}
		if scalar != 0x65E5 || next != 3 {
			t.Fatalf("Lookup(lead=%#x) = (%#x, %d), want (0x65E5, 3)", lead, scalar, next)
		}
	}
}
