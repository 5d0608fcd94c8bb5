// Package ioerr defines the small, POSIX-flavored error taxonomy shared by
// every codec in this module (marc8, unicode, codec, textenc). It exists as
// its own leaf package so that the stateless unicode codecs and the
// stateful marc8 decoder can report errors the top-level codec package
// understands, without codec and its dependents forming an import cycle.
package ioerr

import "errors"

// Sentinel errors, one per externally observable error kind from spec §7.
// Wrap these with fmt.Errorf("...: %w", ErrX) to attach context; callers
// should use errors.Is against these values, not string comparison.
var (
	// ErrInvalidArgument signals a contract violation by the caller: a nil
	// pointer or an unrecognized encoding name. It also covers a decoder
	// running out of input: an empty source, or UTF-8/16/32 input truncated
	// before a full unit could even be attempted.
	ErrInvalidArgument = errors.New("ioerr: invalid argument")

	// ErrOutOfMemory signals that growing the combining-character buffer, or
	// allocating a descriptor, failed.
	ErrOutOfMemory = errors.New("ioerr: out of memory")

	// ErrIllegalSequence signals malformed input for the declared source
	// encoding: a bad or truncated MARC-8 escape sequence, an unassigned code
	// unit, a truncated MARC-8 multibyte (EACC) sequence, or a
	// lone/mismatched UTF-16 surrogate.
	ErrIllegalSequence = errors.New("ioerr: illegal byte sequence")

	// ErrOutputTooBig signals that the destination buffer has insufficient
	// room for the next encoded scalar. The caller should retry with more
	// space; the scalar that did not fit is not lost (codec.Descriptor keeps
	// it as a pending write and emits it first on the next call).
	ErrOutputTooBig = errors.New("ioerr: output buffer too small")
)

// Code is the small enum form of the four sentinel errors above, useful for
// switch statements and for mirroring the ambient "last error" slot POSIX
// iconv exposes via errno.
type Code int

const (
	// CodeNone indicates no error occurred.
	CodeNone Code = iota
	CodeInvalidArgument
	CodeOutOfMemory
	CodeIllegalSequence
	CodeOutputTooBig
)

func (c Code) String() string {
	switch c {
	case CodeInvalidArgument:
		return "invalid-argument"
	case CodeOutOfMemory:
		return "out-of-memory"
	case CodeIllegalSequence:
		return "illegal-sequence"
	case CodeOutputTooBig:
		return "output-too-big"
	default:
		return "none"
	}
}

// CodeOf recovers the Code for an error produced anywhere in this module. It
// unwraps with errors.Is, so wrapped errors (fmt.Errorf with %w) resolve
// correctly. Errors that don't originate from this package resolve to
// CodeNone.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return CodeNone
	case errors.Is(err, ErrInvalidArgument):
		return CodeInvalidArgument
	case errors.Is(err, ErrOutOfMemory):
		return CodeOutOfMemory
	case errors.Is(err, ErrIllegalSequence):
		return CodeIllegalSequence
	case errors.Is(err, ErrOutputTooBig):
		return CodeOutputTooBig
	default:
		return CodeNone
	}
}
