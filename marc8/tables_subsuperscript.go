package marc8

// Subscript and Superscript are MARC-8's two small G0 charsets for
// mathematical and bibliographic notation. Both mirror Basic Latin's digit
// and punctuation byte positions, so the only difference from ASCII is
// which Unicode block the cells resolve to.
//
// https://www.loc.gov/marc/specifications/codetables/Subscripts.html
// https://www.loc.gov/marc/specifications/codetables/Superscripts.html
var (
	Subscript   = Charset{Name: "Subscript", CodeTable: singleByteTable(subscriptAssignments())}
	Superscript = Charset{Name: "Superscript", CodeTable: singleByteTable(superscriptAssignments())}
)

func subscriptAssignments() map[byte]Cell {
	return map[byte]Cell{
		0x28: Term(0x208D), // (
		0x29: Term(0x208E), // )
		0x2B: Term(0x208A), // +
		0x2D: Term(0x208B), // -
		0x30: Term(0x2080),
		0x31: Term(0x2081),
		0x32: Term(0x2082),
		0x33: Term(0x2083),
		0x34: Term(0x2084),
		0x35: Term(0x2085),
		0x36: Term(0x2086),
		0x37: Term(0x2087),
		0x38: Term(0x2088),
		0x39: Term(0x2089),
		0x3D: Term(0x208C), // =
	}
}

func superscriptAssignments() map[byte]Cell {
	return map[byte]Cell{
		0x28: Term(0x207D), // (
		0x29: Term(0x207E), // )
		0x2B: Term(0x207A), // +
		0x2D: Term(0x207B), // -
		0x30: Term(0x2070),
		0x31: Term(0x00B9), // superscript 1 has its own legacy code point
		0x32: Term(0x00B2),
		0x33: Term(0x00B3),
		0x34: Term(0x2074),
		0x35: Term(0x2075),
		0x36: Term(0x2076),
		0x37: Term(0x2077),
		0x38: Term(0x2078),
		0x39: Term(0x2079),
		0x3D: Term(0x207C), // =
	}
}
