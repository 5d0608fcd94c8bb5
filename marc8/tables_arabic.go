package marc8

import "github.com/libsteve/bibiconv/unicode"

// BasicArabic is MARC-8's G0 charset for the core Arabic letterforms.
// ExtendedArabic is its G1 companion, covering extended letters used by
// Persian, Urdu and other Arabic-script languages, plus vowel points.
//
// Both are representative subsets of the published LC charts rather than
// byte-for-byte reproductions — see DESIGN.md.
//
// https://www.loc.gov/marc/specifications/codetables/BasicArabic.html
// https://www.loc.gov/marc/specifications/codetables/ExtendedArabic.html
var (
	BasicArabic    = Charset{Name: "Basic Arabic", CodeTable: singleByteTable(arabicCore())}
	ExtendedArabic = Charset{Name: "Extended Arabic", CodeTable: singleByteTable(arabicExtras())}
)

func arabicCore() map[byte]Cell {
	assignments := make(map[byte]Cell, 28)
	for i := 0; i < 28; i++ {
		assignments[0x41+byte(i)] = Term(unicode.Scalar(0x0621 + i))
	}
	return assignments
}

func arabicExtras() map[byte]Cell {
	return map[byte]Cell{
		0x61: Term(0x067E), // peh (Persian/Urdu)
		0x62: Term(0x0686), // tcheh
		0x63: Term(0x0698), // jeh
		0x64: Term(0x06AF), // gaf
		0x65: TermCombining(0x064B), // fathatan
		0x66: TermCombining(0x064C), // dammatan
		0x67: TermCombining(0x064D), // kasratan
		0x68: TermCombining(0x064E), // fatha
		0x69: TermCombining(0x064F), // damma
		0x6A: TermCombining(0x0650), // kasra
		0x6B: TermCombining(0x0651), // shadda
		0x6C: TermCombining(0x0652), // sukun
	}
}
