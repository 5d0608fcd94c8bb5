package codec

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/libsteve/bibiconv/ioerr"
	"github.com/libsteve/bibiconv/unicode"
)

// Descriptor is the open converter handle returned by Open, mirroring
// bib_iconv_t: a bound (decoder, encoder) pair plus the one-scalar carry-over
// slot a short destination buffer can leave behind.
//
// A Descriptor is not safe for concurrent use; open one per goroutine.
type Descriptor struct {
	// ID identifies this descriptor in log output, the way the teacher's
	// codec.Registry entries carry a UID distinct from their lookup name.
	ID uuid.UUID

	decoder ScalarDecoder
	encoder ScalarEncoder

	pendingWrite    unicode.Scalar
	hasPendingWrite bool
	initialized     bool

	logger *slog.Logger
}

// DescriptorOption configures a Descriptor built by Open.
type DescriptorOption func(*Descriptor)

// WithLogger overrides the descriptor's logger; the default is slog.Default().
func WithLogger(l *slog.Logger) DescriptorOption {
	return func(d *Descriptor) { d.logger = l }
}

// Open binds a decoder for from and an encoder for to, resolved through the
// package's name registry (see names.go). An empty to or from defaults to
// "char" (UTF-8), matching bib_iconv_open.
func Open(to, from string, opts ...DescriptorOption) (*Descriptor, error) {
	if to == "" {
		to = "char"
	}
	if from == "" {
		from = "char"
	}

	enc, err := encoders.get(to)
	if err != nil {
		return nil, fmt.Errorf("codec: open: target %q: %w", to, err)
	}
	dec, err := decoders.get(from)
	if err != nil {
		return nil, fmt.Errorf("codec: open: source %q: %w", from, err)
	}

	d := &Descriptor{
		ID:      uuid.New(),
		decoder: dec,
		encoder: enc,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger.Debug("codec: opened", "id", d.ID, "from", from, "to", to)
	return d, nil
}

// Convert pumps scalars from src to dst until src is exhausted, a NUL scalar
// is produced, or dst has no room left for the next encoded scalar.
// A NUL scalar, or a dst filled exactly, ends the call with a nil error.
// Running out of src ends it with the decoder's ErrInvalidArgument, and a
// dst too small for the next scalar ends it with ErrOutputTooBig; in both
// cases everything converted before that point has already been written.
//
// src == nil signals a flush: any scalar left over from a destination that
// was too small on a prior call is written out, and the descriptor resets
// its carry-over state for reuse. A non-nil *src with len(*src) == 0 is a
// no-op, matching bib_iconv's *srcleft == 0 short-circuit.
//
// On success, bytes consumed and produced are the shrinkage of *src and
// *dst, exactly as with POSIX iconv(); Convert does not return a count,
// since this project declines to emulate the "number of non-identical
// conversions" counter the original never implements beyond 0 (spec §9).
func (d *Descriptor) Convert(src, dst *[]byte) error {
	d.initialized = true

	if src == nil || *src == nil {
		if dst != nil && *dst != nil {
			if d.hasPendingWrite {
				if _, err := d.encoder.Write(dst, d.pendingWrite); err != nil {
					return fmt.Errorf("codec: flush: %w", err)
				}
				d.pendingWrite = 0
				d.hasPendingWrite = false
			}
			d.initialized = false
			d.logger.Debug("codec: flushed", "id", d.ID)
			return nil
		}
		d.pendingWrite = 0
		d.hasPendingWrite = false
		d.initialized = false
		return nil
	}

	if len(*src) == 0 {
		return nil
	}

	if dst == nil || *dst == nil {
		return fmt.Errorf("codec: convert: nil destination: %w", ioerr.ErrInvalidArgument)
	}

	for {
		var s unicode.Scalar
		if d.hasPendingWrite {
			s = d.pendingWrite
			d.pendingWrite = 0
			d.hasPendingWrite = false
		} else {
			scalar, err := d.decoder.Read(src)
			if err != nil {
				return fmt.Errorf("codec: convert: %w", err)
			}
			s = scalar
		}

		if _, err := d.encoder.Write(dst, s); err != nil {
			d.pendingWrite = s
			d.hasPendingWrite = true
			return fmt.Errorf("codec: convert: %w", err)
		}

		if s == 0 || len(*dst) == 0 {
			return nil
		}
	}
}

// Close releases the descriptor. It never fails; it exists so callers have
// a symmetric Open/Close pair to defer, matching bib_iconv_close.
func (d *Descriptor) Close() error {
	d.logger.Debug("codec: closed", "id", d.ID)
	return nil
}
