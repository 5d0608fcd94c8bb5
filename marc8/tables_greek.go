package marc8

import "github.com/libsteve/bibiconv/unicode"

// BasicGreek is MARC-8's G0 charset for the full modern Greek alphabet,
// distinct from GreekSymbols' smaller set of letters used as mathematical
// notation.
//
// This is a representative subset of the published LC chart rather than a
// byte-for-byte reproduction — see DESIGN.md.
//
// https://www.loc.gov/marc/specifications/codetables/BasicGreek.html
var BasicGreek = Charset{
	Name:      "Basic Greek",
	CodeTable: singleByteTable(greekAlphabet()),
}

func greekAlphabet() map[byte]Cell {
	assignments := make(map[byte]Cell, 48)
	for i := 0; i < 24; i++ {
		upper, lower := 0x0391+i, 0x03B1+i
		if upper >= 0x03A2 { // skip the unassigned code point between Ρ and Σ
			upper++
		}
		if lower >= 0x03C2 { // skip final sigma ς, keeping σ aligned with Σ
			lower++
		}
		assignments[0x41+byte(i)] = Term(unicode.Scalar(upper)) // uppercase Α-Ω
		assignments[0x61+byte(i)] = Term(unicode.Scalar(lower)) // lowercase α-ω
	}
	return assignments
}
