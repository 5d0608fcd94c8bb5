package marc8

import "github.com/libsteve/bibiconv/unicode"

// BasicLatin is MARC-8's Basic Latin charset: 7-bit ASCII, the decoder's
// default CL/GL designation.
//
// https://www.loc.gov/marc/specifications/codetables/BasicLatin.html
var BasicLatin = Charset{
	Name:      "Basic Latin",
	CodeTable: basicLatinTable(),
}

func basicLatinTable() CodeTable {
	cl := make(map[byte]Cell, 32)
	for b := byte(0); b < 0x20; b++ {
		cl[b] = Term(unicode.Scalar(b))
	}

	gl := make(map[byte]Cell, 96)
	for b := byte(0x20); b < 0x80; b++ {
		gl[b] = Term(unicode.Scalar(b))
	}

	return CodeTable{
		CL: fillControlSet(cl),
		GL: *fillGraphicSet(gl),
		CR: fillControlSet(nil),
		GR: *fillGraphicSet(toGR(gl)),
	}
}
