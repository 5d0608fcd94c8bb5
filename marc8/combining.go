package marc8

import (
	"golang.org/x/exp/slices"

	"github.com/libsteve/bibiconv/unicode"
)

const combiningInitialCap = 8

// combiningBuffer holds combining scalars read from a MARC-8 run, in
// arrival order, until the base character that follows them is resolved.
// MARC-8 writes diacritics before their base; Unicode expects them after,
// so Decoder.Read drains this buffer back to front (LIFO) once the base is
// known.
type combiningBuffer struct {
	scalars []unicode.Scalar
}

func newCombiningBuffer() *combiningBuffer {
	return &combiningBuffer{scalars: make([]unicode.Scalar, 0, combiningInitialCap)}
}

func (b *combiningBuffer) reset() {
	b.scalars = b.scalars[:0]
}

// push appends a newly read combining scalar. On overflow it asks for room
// for half the current capacity again, so the buffer grows by at least 1.5x
// (append's own growth may round this up further), per spec §3/§9, using
// x/exp/slices.Grow so the growth
// policy is expressed the same way the rest of this project's dependency on
// x/exp is: a thin, well-tested helper over a plain slice rather than a
// hand-rolled amortized-growth loop.
func (b *combiningBuffer) push(s unicode.Scalar) {
	if len(b.scalars) == cap(b.scalars) {
		grow := cap(b.scalars) / 2
		if grow == 0 {
			grow = combiningInitialCap
		}
		b.scalars = slices.Grow(b.scalars, grow)
	}
	b.scalars = append(b.scalars, s)
}

func (b *combiningBuffer) len() int { return len(b.scalars) }

// truncate drops the buffer back to length n, used to roll back a failed
// Decoder.Read so no partial state is observable across the failure.
func (b *combiningBuffer) truncate(n int) {
	b.scalars = b.scalars[:n]
}

// pop removes and returns the most recently pushed scalar, implementing the
// LIFO drain order the reorder law requires.
func (b *combiningBuffer) pop() unicode.Scalar {
	n := len(b.scalars) - 1
	s := b.scalars[n]
	b.scalars = b.scalars[:n]
	return s
}
