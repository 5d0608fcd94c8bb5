package marc8

// GreekSymbols is MARC-8's small G0 charset of Greek letters and
// mathematical symbols used as bibliographic notation (formula
// transliteration, mostly), distinct from the full Basic Greek alphabet.
//
// This is a representative subset of the published LC chart rather than a
// byte-for-byte reproduction — see DESIGN.md.
//
// https://www.loc.gov/marc/specifications/codetables/GreekSymbols.html
var GreekSymbols = Charset{
	Name: "Greek Symbols",
	CodeTable: singleByteTable(map[byte]Cell{
		0x61: Term(0x03B1), // alpha
		0x62: Term(0x03B2), // beta
		0x67: Term(0x03B3), // gamma
		0x64: Term(0x03B4), // delta
		0x65: Term(0x03B5), // epsilon
		0x6D: Term(0x03BC), // mu
		0x70: Term(0x03C0), // pi
		0x73: Term(0x03C3), // sigma
		0x21: Term(0x2211), // summation sign
		0x22: Term(0x221A), // square root
		0x23: Term(0x222B), // integral sign
	}),
}
