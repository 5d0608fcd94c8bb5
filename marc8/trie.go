package marc8

import (
	"fmt"

	"github.com/libsteve/bibiconv/ioerr"
	"github.com/libsteve/bibiconv/unicode"
)

// Lookup resolves a single code point starting at cursor in input against
// ws. It returns the resolved scalar, whether it is a combining character,
// and the cursor position just past the bytes consumed.
//
// Lookup never partially advances the cursor on failure: on any error the
// returned cursor equals the input cursor, so callers can restore their own
// position from it without tracking a separate copy.
//
// Complexity is O(k), where k is the length of the multibyte sequence (1
// for every charset except EACC, which is always 3).
func Lookup(ws *WorkingSet, input []byte, cursor int) (scalar unicode.Scalar, combining bool, next int, err error) {
	if ws == nil || input == nil || cursor < 0 || cursor >= len(input) {
		return 0, false, cursor, fmt.Errorf("marc8 lookup: %w", ioerr.ErrInvalidArgument)
	}
	scalar, combining, next, err = lookupBlock(ws, CodeSpan{}, input, cursor)
	if err != nil {
		return 0, false, cursor, err
	}
	return scalar, combining, next, nil
}

// lookupBlock resolves the cell for input[loc] against span (or, for the
// root sentinel span, against the working set's primary code table), then
// hands off to lookupInfo to interpret it.
func lookupBlock(ws *WorkingSet, span CodeSpan, input []byte, loc int) (unicode.Scalar, bool, int, error) {
	if loc >= len(input) {
		return 0, false, loc, fmt.Errorf("marc8 lookup: sequence truncated: %w", ioerr.ErrIllegalSequence)
	}

	switch {
	case span.isRoot():
		cell := ws.CodeTable.At(input[loc])
		return lookupInfo(ws, cell, input, loc)

	case span.dense != nil:
		unit := input[loc] & 0x7F
		if unit < 0x20 {
			return 0, false, loc, fmt.Errorf("marc8 lookup: control byte 0x%02X in graphic set: %w", input[loc], ioerr.ErrIllegalSequence)
		}
		cell := span.dense[unit-0x20]
		return lookupInfo(ws, cell, input, loc)

	default: // sparse code path
		unit := input[loc] & 0x7F
		for _, entry := range span.sparse {
			if entry.Byte == unit {
				return lookupInfo(ws, entry.Cell, input, loc)
			}
		}
		return 0, false, loc, fmt.Errorf("marc8 lookup: byte 0x%02X not assigned in sparse code path: %w", input[loc], ioerr.ErrIllegalSequence)
	}
}

// lookupInfo interprets the cell found for input[loc]: a Terminal cell
// resolves immediately, a Transition cell recurses into the next span to
// resolve the following byte.
func lookupInfo(ws *WorkingSet, cell Cell, input []byte, loc int) (unicode.Scalar, bool, int, error) {
	if cell.final {
		if cell.scalar == unicode.NonChar {
			return 0, false, loc, fmt.Errorf("marc8 lookup: byte 0x%02X unassigned: %w", input[loc], ioerr.ErrIllegalSequence)
		}
		return cell.scalar, cell.combining, loc + 1, nil
	}

	if cell.spanOffset < 0 || cell.spanOffset >= len(ws.CodeSpans) {
		return 0, false, loc, fmt.Errorf("marc8 lookup: span offset %d out of range: %w", cell.spanOffset, ioerr.ErrIllegalSequence)
	}
	return lookupBlock(ws, ws.CodeSpans[cell.spanOffset], input, loc+1)
}
