package marc8

// GraphicSet is a 96-entry table covering one GL or GR graphic area,
// indexed by (byte & 0x7F) - 0x20. By MARC-8 convention slot 0 (space,
// 0x20) and slot 95 (DEL, 0x7F) are pass-through entries in every 94/96
// character graphic set.
type GraphicSet [96]Cell

// ControlSet is a 32-entry table covering one CL or CR control area,
// indexed by byte & 0x1F. MARC-8 never shifts a different control set into
// CL — it is always Basic Latin's C0 block, with ESC at slot 0x1B — so
// ControlSet exists mainly as a carrier for CR, which the Extended Latin
// charset populates with its own control codes.
type ControlSet [32]Cell

// CodePath is a sparse, linearly-searched alternative to GraphicSet for
// charsets — EACC slices, mostly — that assign very few of the 96 possible
// code units. Unlike the C original this project was distilled from,
// CodePath is a plain Go slice: its length is the terminator, so there is
// no need for a dedicated sentinel entry.
type CodePath []PathEntry

// PathEntry pairs one MARC-8 byte (already masked to its low 7 bits) with
// the Cell it resolves to.
type PathEntry struct {
	Byte byte
	Cell Cell
}

// CodeSpan is either a dense GraphicSet or a sparse CodePath — never both.
// The zero CodeSpan is the distinguished root sentinel: it tells lookup to
// consult the owning Charset's 256-entry CodeTable directly, indexed by the
// raw (unmasked) input byte, rather than a nested graphic set.
type CodeSpan struct {
	dense  *GraphicSet
	sparse CodePath
}

// DenseSpan wraps a GraphicSet as a CodeSpan.
func DenseSpan(g *GraphicSet) CodeSpan { return CodeSpan{dense: g} }

// SparseSpan wraps a CodePath as a CodeSpan.
func SparseSpan(p CodePath) CodeSpan { return CodeSpan{sparse: p} }

func (s CodeSpan) isRoot() bool { return s.dense == nil && s.sparse == nil }

// CodeTable is a full 256-entry MARC-8 code table, logically partitioned
// into the four ISO-2022 code areas: CL (0x00-0x1F), GL (0x20-0x7F),
// CR (0x80-0x9F), and GR (0xA0-0xFF).
type CodeTable struct {
	CL ControlSet
	GL GraphicSet
	CR ControlSet
	GR GraphicSet
}

// At resolves the cell for a raw input byte against the full code table.
func (t *CodeTable) At(b byte) Cell {
	switch {
	case b < 0x20:
		return t.CL[b]
	case b < 0x80:
		return t.GL[b-0x20]
	case b < 0xA0:
		return t.CR[b-0x80]
	default:
		return t.GR[b-0xA0]
	}
}

// Charset is a named, immutable MARC-8 character set: a 256-entry code
// table plus, for EACC only, the array of code spans its multibyte
// sequences transition through.
type Charset struct {
	Name      string
	CodeTable CodeTable
	CodeSpans []CodeSpan
}

// fillGraphicSet builds a 96-entry GraphicSet from a sparse map of
// assignments keyed by the MARC-8 byte value, in either the GL (0x20-0x7F)
// or the GR (0xA0-0xFF) domain; slot 0 and slot 95 default to the space and
// DEL pass-through entries, and everything else resolves to the unassigned
// cell unless the map says otherwise. This is the table-construction idiom
// every tables_*.go file in this package uses: it keeps the literal data
// close to the Library of Congress code charts (byte -> mapping) instead of
// forcing every file to spell out 96 positions by hand.
func fillGraphicSet(assignments map[byte]Cell) *GraphicSet {
	var g GraphicSet
	for i := range g {
		g[i] = unassigned
	}
	g[0] = Term(0x20)
	g[95] = Term(0x7F)
	for b, cell := range assignments {
		g[(b&0x7F)-0x20] = cell
	}
	return &g
}

// toGR shifts a map of GL-domain assignments (bytes 0x20-0x7F) into the
// corresponding GR-domain bytes (0xA0-0xFF), so a charset's canonical
// mapping can be registered into either code area without restating it.
func toGR(gl map[byte]Cell) map[byte]Cell {
	gr := make(map[byte]Cell, len(gl))
	for b, c := range gl {
		gr[b+0x80] = c
	}
	return gr
}

// toGL is the inverse of toGR, for charsets whose canonical data is most
// naturally expressed in its GR-domain form (Extended Latin, in practice).
func toGL(gr map[byte]Cell) map[byte]Cell {
	gl := make(map[byte]Cell, len(gr))
	for b, c := range gr {
		gl[b-0x80] = c
	}
	return gl
}

// singleByteTable builds a CodeTable for a charset whose canonical data is
// a GL-domain assignment map, mirroring it into GR so the charset resolves
// correctly whichever of G0/G1 an escape sequence designates it to.
func singleByteTable(gl map[byte]Cell) CodeTable {
	return CodeTable{
		CL: fillControlSet(nil),
		GL: *fillGraphicSet(gl),
		CR: fillControlSet(nil),
		GR: *fillGraphicSet(toGR(gl)),
	}
}

func fillControlSet(assignments map[byte]Cell) ControlSet {
	var c ControlSet
	for i := range c {
		c[i] = unassigned
	}
	for b, cell := range assignments {
		c[b&0x1F] = cell
	}
	return c
}
