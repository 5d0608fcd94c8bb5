package marc8

// ExtendedLatin is MARC-8's Extended Latin charset, ANSEL (ANSI/NISO
// Z39.47), the decoder's default CR/GR designation. It supplies the Latin
// letters with diacritics and strokes that Basic Latin omits, plus the
// combining diacritical marks MARC-8 writes before the base character they
// modify — Decoder.Read reorders them to follow the base on the way out to
// Unicode, per the cells this table marks TermCombining.
//
// Mapping data grounded on the Library of Congress code chart as reproduced
// by a GEDCOM ANSEL decoder in this project's reference corpus.
//
// https://www.loc.gov/marc/specifications/codetables/ExtendedLatin.html
var ExtendedLatin = Charset{
	Name:      "Extended Latin",
	CodeTable: extendedLatinTable(),
}

func extendedLatinTable() CodeTable {
	gr := map[byte]Cell{
		// Uppercase special letters
		0xA1: Term(0x0141), // Ł
		0xA2: Term(0x00D8), // Ø
		0xA3: Term(0x0110), // Đ
		0xA4: Term(0x00DE), // Þ
		0xA5: Term(0x00C6), // Æ
		0xA6: Term(0x0152), // Œ
		0xA7: Term(0x02B9), // ʹ modifier letter prime
		0xA8: Term(0x00B7), // middle dot
		0xA9: Term(0x266D), // music flat sign
		0xAA: Term(0x00AE), // registered sign
		0xAB: Term(0x00B1), // plus-minus sign
		0xAC: Term(0x01A0), // Ơ
		0xAD: Term(0x01AF), // Ư
		0xAE: Term(0x02BC), // modifier letter apostrophe
		0xB0: Term(0x02BB), // modifier letter turned comma

		// Lowercase special letters
		0xB1: Term(0x0142), // ł
		0xB2: Term(0x00F8), // ø
		0xB3: Term(0x0111), // đ
		0xB4: Term(0x00FE), // þ
		0xB5: Term(0x00E6), // æ
		0xB6: Term(0x0153), // œ
		0xB7: Term(0x02BA), // modifier letter double prime
		0xB8: Term(0x0131), // ı dotless i
		0xB9: Term(0x00A3), // £
		0xBA: Term(0x00F0), // ð
		0xBC: Term(0x01A1), // ơ
		0xBD: Term(0x01B0), // ư
		0xBE: Term(0x25A1), // LDS extension: empty box
		0xBF: Term(0x25A0), // LDS extension: black box

		// Symbols and punctuation
		0xC0: Term(0x00B0), // degree sign
		0xC1: Term(0x2113), // script small l
		0xC2: Term(0x2117), // sound recording copyright
		0xC3: Term(0x00A9), // copyright sign
		0xC4: Term(0x266F), // music sharp sign
		0xC5: Term(0x00BF), // inverted question mark
		0xC6: Term(0x00A1), // inverted exclamation mark
		0xC7: Term(0x00DF), // ß
		0xC8: Term(0x20AC), // euro sign
		0xCD: Term(0x0065), // LDS extension: midline e
		0xCE: Term(0x006F), // LDS extension: midline o
		0xCF: Term(0x00DF), // LDS extension: alternate ß

		// Combining diacritical marks, written before the base byte they
		// modify; reordered after it on the way to Unicode.
		0xE0: TermCombining(0x0309), // hook above
		0xE1: TermCombining(0x0300), // grave accent
		0xE2: TermCombining(0x0301), // acute accent
		0xE3: TermCombining(0x0302), // circumflex accent
		0xE4: TermCombining(0x0303), // tilde
		0xE5: TermCombining(0x0304), // macron
		0xE6: TermCombining(0x0306), // breve
		0xE7: TermCombining(0x0307), // dot above
		0xE8: TermCombining(0x0308), // diaeresis
		0xE9: TermCombining(0x030C), // caron
		0xEA: TermCombining(0x030A), // ring above
		0xEB: TermCombining(0xFE20), // ligature left half
		0xEC: TermCombining(0xFE21), // ligature right half
		0xED: TermCombining(0x0315), // comma above right
		0xEE: TermCombining(0x030B), // double acute accent
		0xEF: TermCombining(0x0310), // candrabindu
		0xF0: TermCombining(0x0327), // cedilla
		0xF1: TermCombining(0x0328), // ogonek
		0xF2: TermCombining(0x0323), // dot below
		0xF3: TermCombining(0x0324), // diaeresis below
		0xF4: TermCombining(0x0325), // ring below
		0xF5: TermCombining(0x0333), // double low line
		0xF6: TermCombining(0x0332), // low line
		0xF7: TermCombining(0x0326), // comma below
		0xF8: TermCombining(0x031C), // left half ring below
		0xF9: TermCombining(0x032E), // breve below
		0xFA: TermCombining(0x0360), // double tilde, first half
		0xFB: TermCombining(0x0361), // double inverted breve, ligature tie
		0xFE: TermCombining(0x0313), // comma above
	}

	return CodeTable{
		CL: fillControlSet(nil),
		GL: *fillGraphicSet(toGL(gr)),
		CR: fillControlSet(nil),
		GR: *fillGraphicSet(gr),
	}
}
