package codec

import (
	"fmt"

	"github.com/libsteve/bibiconv/ioerr"
)

// ErrUnsupportedEncoding is returned when Open is given a (to, from) name
// that normalizes to nothing in the registry. It chains ioerr.ErrInvalidArgument
// so codec.CodeOf reports CodeInvalidArgument for it, per spec §4.4/§7 and
// bib_iconv_open's errno = EINVAL for an unrecognized encoding name.
var ErrUnsupportedEncoding = fmt.Errorf("codec: unsupported encoding name: %w", ioerr.ErrInvalidArgument)

// Code and CodeOf mirror the POSIX errno-flavored taxonomy from spec §7;
// they're re-exported from ioerr, the leaf package every codec in this
// module (marc8, unicode, codec, textenc) reports errors through, so
// callers of this package don't need to import ioerr directly.
type Code = ioerr.Code

const (
	CodeNone            = ioerr.CodeNone
	CodeInvalidArgument = ioerr.CodeInvalidArgument
	CodeOutOfMemory     = ioerr.CodeOutOfMemory
	CodeIllegalSequence = ioerr.CodeIllegalSequence
	CodeOutputTooBig    = ioerr.CodeOutputTooBig
)

// CodeOf recovers the Code for an error produced anywhere in this module.
func CodeOf(err error) Code { return ioerr.CodeOf(err) }
