package marc8

import "github.com/libsteve/bibiconv/unicode"

// EACC is MARC-8's East Asian Character Code set, the only multibyte
// charset this implementation supports: every code point is a three-byte
// sequence, each byte drawn from the GL graphic range (0x21-0x7E), shifted
// in as G0 by "ESC $ 1".
//
// The LC chart assigns roughly 14,000 code points across Chinese, Japanese
// and Korean ideographs and syllabaries; per spec this package carries a
// small, representative slice rather than the full chart — see DESIGN.md.
// EACC.CodeTable.GL holds a Transition cell at every byte, since an EACC
// lead byte can never resolve a character on its own; CodeSpans[0] and
// CodeSpans[1] hold the second- and third-byte tries.
//
// https://www.loc.gov/marc/specifications/specchareacc.html
var EACC = Charset{
	Name:      "East Asian Character Code",
	CodeTable: eaccLeadByteTable(),
	CodeSpans: []CodeSpan{
		SparseSpan(eaccSecondByteSpan()),
		SparseSpan(eaccThirdByteSpan()),
	},
}

func eaccLeadByteTable() CodeTable {
	gl := make(map[byte]Cell, 96)
	for b := byte(0x20); b < 0x80; b++ {
		gl[b] = Transition(0)
	}
	return CodeTable{
		CL: fillControlSet(nil),
		GL: *fillGraphicSet(gl),
		CR: fillControlSet(nil),
		GR: *fillGraphicSet(nil),
	}
}

// eaccSecondByteSpan and eaccThirdByteSpan model a flat, shared trie: every
// lead byte transitions through the same second- and third-byte tables.
// The real LC chart structures this per-lead-byte, trading the simplicity
// here for a much larger, mostly-repetitive table; since this package only
// carries a representative sample of code points, the shared-span
// simplification does not lose any coverage it would otherwise have.
func eaccSecondByteSpan() CodePath {
	return CodePath{
		{Byte: 0x21, Cell: Transition(1)},
		{Byte: 0x30, Cell: Transition(1)},
		{Byte: 0x3F, Cell: Transition(1)},
	}
}

func eaccThirdByteSpan() CodePath {
	return CodePath{
		{Byte: 0x21, Cell: Term(unicode.Scalar(0x4E00))}, // 一 "one", CJK radical 1
		{Byte: 0x22, Cell: Term(unicode.Scalar(0x4E8C))}, // 二 "two"
		{Byte: 0x23, Cell: Term(unicode.Scalar(0x4E09))}, // 三 "three"
		{Byte: 0x30, Cell: Term(unicode.Scalar(0x65E5))}, // 日 "sun/day"
		{Byte: 0x31, Cell: Term(unicode.Scalar(0x6708))}, // 月 "moon/month"
		{Byte: 0x3F, Cell: Term(unicode.Scalar(0x6C34))}, // 水 "water"
	}
}
