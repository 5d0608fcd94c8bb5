package marc8

import "github.com/libsteve/bibiconv/unicode"

// Cell is a single entry in a MARC-8 lookup table. It is either a Terminal
// cell — a resolved Unicode scalar, possibly combining — or a Transition
// cell that points at the CodeSpan holding the next byte of a multibyte
// sequence (EACC is the only charset that needs more than one byte).
//
// The spec this project follows describes Cell as a 32-bit tagged union
// packed into a single word; this is the "portable implementation [using]
// a larger struct without loss of correctness" its design notes explicitly
// allow, since nothing here is marshaled to or from a byte layout.
type Cell struct {
	final      bool
	combining  bool
	scalar     unicode.Scalar
	spanOffset int
}

// Final reports whether c is a resolved scalar (true) or a transition into
// a deeper CodeSpan (false).
func (c Cell) Final() bool { return c.final }

// Term builds a Terminal cell resolving to s.
func Term(s unicode.Scalar) Cell {
	return Cell{final: true, scalar: s}
}

// TermCombining builds a Terminal cell resolving to a combining scalar: one
// that must be reordered to follow its base character on the way out to
// Unicode (see Decoder.Read).
func TermCombining(s unicode.Scalar) Cell {
	return Cell{final: true, combining: true, scalar: s}
}

// Transition builds a cell that continues a multibyte sequence into the
// code span at spanOffset within the owning Charset's CodeSpans slice.
func Transition(spanOffset int) Cell {
	return Cell{final: false, spanOffset: spanOffset}
}

// unassigned is the cell MARC-8 tables use for code units with no defined
// mapping; resolving it always fails with ErrIllegalSequence.
var unassigned = Term(unicode.NonChar)
