package marc8

import "github.com/libsteve/bibiconv/unicode"

// BasicCyrillic is MARC-8's G0 charset for the modern Russian Cyrillic
// alphabet. ExtendedCyrillic is its G1 companion, covering the additional
// letters used by Ukrainian, Belarusian and older orthographies.
//
// Both are representative subsets of the published LC charts rather than
// byte-for-byte reproductions — see DESIGN.md.
//
// https://www.loc.gov/marc/specifications/codetables/BasicCyrillic.html
// https://www.loc.gov/marc/specifications/codetables/ExtendedCyrillic.html
var (
	BasicCyrillic    = Charset{Name: "Basic Cyrillic", CodeTable: singleByteTable(cyrillicAlphabet(0x41, 0x0410))}
	ExtendedCyrillic = Charset{Name: "Extended Cyrillic", CodeTable: singleByteTable(cyrillicExtras())}
)

// cyrillicAlphabet assigns the 32-letter uppercase Cyrillic block starting
// at unicodeBase to consecutive GL bytes starting at glBase.
func cyrillicAlphabet(glBase byte, unicodeBase int) map[byte]Cell {
	assignments := make(map[byte]Cell, 32)
	for i := 0; i < 32; i++ {
		assignments[glBase+byte(i)] = Term(unicode.Scalar(unicodeBase + i))
	}
	return assignments
}

func cyrillicExtras() map[byte]Cell {
	return map[byte]Cell{
		0x61: Term(0x0490), // Ghe with upturn (Ukrainian ґ's uppercase)
		0x62: Term(0x0404), // Ukrainian ie
		0x63: Term(0x0406), // Byelorussian-Ukrainian i
		0x64: Term(0x0407), // Ukrainian yi
		0x65: Term(0x0491), // ghe with upturn, lowercase
		0x66: Term(0x0454), // ukrainian ie, lowercase
		0x67: Term(0x0456), // byelorussian-ukrainian i, lowercase
		0x68: Term(0x0457), // ukrainian yi, lowercase
	}
}
