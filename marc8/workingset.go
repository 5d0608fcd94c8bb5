package marc8

// WorkingSet is the decoder's mutable code space: a CodeTable built by
// copying GL/GR/CL/CR regions in from named Charsets as escape sequences are
// processed, plus the CodeSpans pointer for whichever multibyte charset
// (only EACC, in practice) is currently active.
//
// The original C decoder's working-set mutation copies whole regions by value on every
// shift, the same approach spec §9 documents as the simple, correct default
// ("a functionally equivalent implementation may instead hold indices...
// either is acceptable"); this project keeps the by-value copy since a
// GraphicSet is a fixed 96-element array and the copy is cheap.
type WorkingSet struct {
	CodeTable CodeTable
	CodeSpans []CodeSpan
}

// NewWorkingSet builds the initial decoder state per spec §4.2: CL and GL
// start from Basic Latin, CR and GR start from Extended Latin (ANSEL) —
// not standard ISO-2022 behavior, but required for compatibility with real
// MARC-8 records per the spec's own open question — and CodeSpans starts
// from EACC's spans so a bare "$1" shift can take effect immediately.
func NewWorkingSet() *WorkingSet {
	ws := &WorkingSet{}
	ws.CodeTable.CL = BasicLatin.CodeTable.CL
	ws.CodeTable.GL = BasicLatin.CodeTable.GL
	ws.CodeTable.CR = ExtendedLatin.CodeTable.CR
	ws.CodeTable.GR = ExtendedLatin.CodeTable.GR
	ws.CodeSpans = EACC.CodeSpans
	return ws
}

// ShiftG0 replaces the GL area with cs's GL area, per an escape sequence
// that targets the G0 code area.
func (ws *WorkingSet) ShiftG0(cs *Charset) {
	ws.CodeTable.GL = cs.CodeTable.GL
}

// ShiftG1 replaces the CR and GR areas with cs's, per an escape sequence
// that targets the G1 code area.
func (ws *WorkingSet) ShiftG1(cs *Charset) {
	ws.CodeTable.CR = cs.CodeTable.CR
	ws.CodeTable.GR = cs.CodeTable.GR
}

// ShiftMultibyte sets the active multibyte code spans, in addition to
// whatever ShiftG0/ShiftG1 did for the same escape sequence. EACC is the
// only MARC-8 charset this applies to.
func (ws *WorkingSet) ShiftMultibyte(cs *Charset) {
	ws.CodeSpans = cs.CodeSpans
}

// Clone returns a copy of ws suitable for independent mutation; two
// descriptors never share a working set, but tests find it convenient to
// snapshot state before asserting "this escape sequence touched only the
// areas it names" (spec §8 invariant 5).
func (ws *WorkingSet) Clone() *WorkingSet {
	clone := *ws
	return &clone
}
