package marc8

import (
	"fmt"
	"log/slog"

	"github.com/libsteve/bibiconv/ioerr"
	"github.com/libsteve/bibiconv/unicode"
)

const escapeChar = 0x1B

// Decoder turns a MARC-8 byte stream into Unicode scalars, one Read call per
// scalar, tracking the shifted working set and the pending combining-
// character buffer across calls. A Decoder is not safe for concurrent use.
type Decoder struct {
	ws        *WorkingSet
	combining *combiningBuffer
	logger    *slog.Logger
}

// DecoderOption configures a Decoder built by NewDecoder.
type DecoderOption func(*Decoder)

// WithDecoderLogger overrides the decoder's logger; the default is
// slog.Default().
func WithDecoderLogger(l *slog.Logger) DecoderOption {
	return func(d *Decoder) { d.logger = l }
}

// NewDecoder returns a Decoder in its initial shift state: CL/GL from Basic
// Latin, CR/GR from Extended Latin, per spec §4.2.
func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{
		ws:        NewWorkingSet(),
		combining: newCombiningBuffer(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Reset returns the decoder to its initial shift state and drops any
// buffered combining characters, for reuse across descriptor lifetimes.
func (d *Decoder) Reset() {
	d.ws = NewWorkingSet()
	d.combining.reset()
}

// Pending reports whether a reordered combining character is waiting to be
// drained by a subsequent Read call with no further input consumed.
func (d *Decoder) Pending() bool { return d.combining.len() > 0 }

// Read consumes bytes from the front of *src and returns the next Unicode
// scalar. It advances *src by exactly the bytes it consumes on success, and
// leaves *src and the decoder's working set and combining buffer untouched
// on failure, so a caller can retry once more input is appended (the same
// "incomplete sequence, try again with more bytes" contract iconv's own
// EINVAL affords).
//
// A return of (0, nil) with *src advanced past a single NUL byte signals
// the MARC-8 string terminator; callers that don't delimit records this way
// can ignore it.
func (d *Decoder) Read(src *[]byte) (unicode.Scalar, error) {
	if d.combining.len() > 0 {
		return d.combining.pop(), nil
	}

	saved := *src
	savedWS := *d.ws
	rollback := func() {
		*src = saved
		*d.ws = savedWS
		d.combining.truncate(0)
	}

	for {
		if len(*src) == 0 {
			rollback()
			return 0, fmt.Errorf("marc8 decode: empty input: %w", ioerr.ErrInvalidArgument)
		}

		b := (*src)[0]

		if b == 0 {
			*src = (*src)[1:]
			return 0, nil
		}

		if b == escapeChar {
			n, err := d.readEscape(*src)
			if err != nil {
				rollback()
				return 0, err
			}
			*src = (*src)[n:]
			continue
		}

		scalar, combining, next, err := Lookup(d.ws, *src, 0)
		if err != nil {
			rollback()
			return 0, err
		}
		*src = (*src)[next:]

		switch {
		case scalar == unicode.Ignored:
			continue
		case combining:
			d.combining.push(scalar)
			continue
		default:
			return scalar, nil
		}
	}
}

// readEscape parses one escape sequence starting at input[0] == ESC,
// shifts the decoder's working set accordingly, and returns the number of
// bytes consumed. It never mutates the working set on a failure return.
//
// The grammar mirrors original_source/bibiconv/marc8_decoding.c's
// marc8_read_escape: three single-byte GL shortcuts to Greek Symbols,
// Subscript and Superscript, a fourth to Basic Latin, and the general form
// ESC ['$'] ['('|','|')'|'-'] ['!'] finalizer, where '(' and ',' target G0
// (GL), ')' and '-' target G1 (CR/GR), '!' marks the Extended Latin (ANSEL)
// finalizer 'E', and a bare "ESC $ 1" with no page indicator implies G0 per
// the spec's own documented convention for multibyte EACC shifts.
func (d *Decoder) readEscape(input []byte) (int, error) {
	loc := 1 // past the ESC byte itself
	if loc >= len(input) {
		return 0, fmt.Errorf("marc8 decode: escape sequence truncated: %w", ioerr.ErrIllegalSequence)
	}

	switch input[loc] {
	case 'g':
		d.shiftAndLog(&GreekSymbols, true, false, false)
		return loc + 1, nil
	case 'b':
		d.shiftAndLog(&Subscript, true, false, false)
		return loc + 1, nil
	case 'p':
		d.shiftAndLog(&Superscript, true, false, false)
		return loc + 1, nil
	case 's':
		d.shiftAndLog(&BasicLatin, true, false, false)
		return loc + 1, nil
	case '$', '(', ',', ')', '-':
		// fall through to the general intermediate-byte parser below
	default:
		return 0, fmt.Errorf("marc8 decode: unrecognized escape 0x%02X: %w", input[loc], ioerr.ErrIllegalSequence)
	}

	var (
		isG0, isG1, expectAnsel, isMultibyte, g0Implied bool
		haveIndicator                                   bool
	)

	for loc < len(input) && input[loc]&0xF0 == 0x20 {
		switch input[loc] {
		case '!':
			if !haveIndicator || expectAnsel || isMultibyte {
				return 0, fmt.Errorf("marc8 decode: misplaced '!' in escape sequence: %w", ioerr.ErrIllegalSequence)
			}
			expectAnsel = true

		case '$':
			if haveIndicator || isMultibyte {
				return 0, fmt.Errorf("marc8 decode: misplaced '$' in escape sequence: %w", ioerr.ErrIllegalSequence)
			}
			isMultibyte = true
			g0Implied = true

		case '(', ',':
			if haveIndicator && !isMultibyte {
				return 0, fmt.Errorf("marc8 decode: duplicate G0 indicator: %w", ioerr.ErrIllegalSequence)
			}
			if isG1 {
				return 0, fmt.Errorf("marc8 decode: conflicting G0/G1 indicators: %w", ioerr.ErrIllegalSequence)
			}
			isG0 = true
			haveIndicator = true

		case ')', '-':
			if haveIndicator && !isMultibyte {
				return 0, fmt.Errorf("marc8 decode: duplicate G1 indicator: %w", ioerr.ErrIllegalSequence)
			}
			if isG0 {
				return 0, fmt.Errorf("marc8 decode: conflicting G0/G1 indicators: %w", ioerr.ErrIllegalSequence)
			}
			isG1 = true
			haveIndicator = true

		default:
			return 0, fmt.Errorf("marc8 decode: unrecognized intermediate byte 0x%02X: %w", input[loc], ioerr.ErrIllegalSequence)
		}
		loc++
	}

	if g0Implied && !isG0 && !isG1 {
		isG0 = true
	}
	if isG0 == isG1 {
		return 0, fmt.Errorf("marc8 decode: escape sequence names neither G0 nor G1: %w", ioerr.ErrIllegalSequence)
	}
	if loc >= len(input) {
		return 0, fmt.Errorf("marc8 decode: escape sequence truncated before finalizer: %w", ioerr.ErrIllegalSequence)
	}

	cs, err := charsetByFinal(input[loc], expectAnsel, isMultibyte)
	if err != nil {
		return 0, err
	}
	loc++

	d.shiftAndLog(cs, isG0, isG1, isMultibyte)
	return loc, nil
}

func (d *Decoder) shiftAndLog(cs *Charset, isG0, isG1, isMultibyte bool) {
	switch {
	case isG0:
		d.ws.ShiftG0(cs)
	case isG1:
		d.ws.ShiftG1(cs)
	}
	if isMultibyte {
		d.ws.ShiftMultibyte(cs)
	}
	d.logger.Debug("marc8: shifted charset", "name", cs.Name, "g0", isG0, "g1", isG1, "multibyte", isMultibyte)
}

// charsetByFinal maps an escape sequence's finalizer byte, together with
// the '!' (ANSEL) and '$' (multibyte) flags collected from its intermediate
// bytes, to the Charset it designates. The validity rules (which finalizers
// require or forbid each flag) follow marc8_read_escape's switch exactly.
func charsetByFinal(final byte, expectAnsel, isMultibyte bool) (*Charset, error) {
	illegal := func() (*Charset, error) {
		return nil, fmt.Errorf("marc8 decode: finalizer 0x%02X invalid for flags (ansel=%v, multibyte=%v): %w",
			final, expectAnsel, isMultibyte, ioerr.ErrIllegalSequence)
	}

	switch final {
	case '3':
		if expectAnsel || isMultibyte {
			return illegal()
		}
		return &BasicArabic, nil
	case '4':
		if expectAnsel || isMultibyte {
			return illegal()
		}
		return &ExtendedArabic, nil
	case 'B':
		if expectAnsel || isMultibyte {
			return illegal()
		}
		return &BasicLatin, nil
	case 'E':
		if !expectAnsel || isMultibyte {
			return illegal()
		}
		return &ExtendedLatin, nil
	case '1':
		if expectAnsel || !isMultibyte {
			return illegal()
		}
		return &EACC, nil
	case 'N':
		if expectAnsel || isMultibyte {
			return illegal()
		}
		return &BasicCyrillic, nil
	case 'Q':
		if expectAnsel || isMultibyte {
			return illegal()
		}
		return &ExtendedCyrillic, nil
	case 'S':
		if expectAnsel || isMultibyte {
			return illegal()
		}
		return &BasicGreek, nil
	case '2':
		if expectAnsel || isMultibyte {
			return illegal()
		}
		return &BasicHebrew, nil
	default:
		return nil, fmt.Errorf("marc8 decode: unrecognized finalizer 0x%02X: %w", final, ioerr.ErrIllegalSequence)
	}
}
