package marc8

import "github.com/libsteve/bibiconv/unicode"

// BasicHebrew is MARC-8's G0 charset for the Hebrew alphabet.
//
// This is a representative subset of the published LC chart (the 22-letter
// core alphabet, in order, starting at GL byte 0x41) rather than a
// byte-for-byte reproduction of the full chart including points and
// punctuation — see DESIGN.md.
//
// https://www.loc.gov/marc/specifications/codetables/BasicHebrew.html
var BasicHebrew = Charset{
	Name:      "Basic Hebrew",
	CodeTable: singleByteTable(hebrewAlphabet()),
}

func hebrewAlphabet() map[byte]Cell {
	assignments := make(map[byte]Cell, 22)
	b := byte(0x41)
	for r := 0x05D0; r <= 0x05EA; r++ { // aleph through tav
		switch r {
		case 0x05DA, 0x05DD, 0x05DF, 0x05E3, 0x05E5: // final forms
			continue
		}
		assignments[b] = Term(unicode.Scalar(r))
		b++
	}
	return assignments
}
