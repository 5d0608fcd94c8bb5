// Command bibiconv converts a file or stdin between MARC-8 and the UTF
// transformation formats, using the codec package the way a POSIX iconv(1)
// caller would use libiconv.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/libsteve/bibiconv/codec"
)

func main() {
	from := flag.String("from", "MARC-8", "source encoding name")
	to := flag.String("to", "UTF-8", "target encoding name")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-from enc] [-to enc] [file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	in := os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		in = f
	}

	if err := run(in, os.Stdout, *from, *to); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "bibiconv:", err)
	os.Exit(1)
}

func run(r io.Reader, w io.Writer, from, to string) error {
	d, err := codec.Open(to, from, codec.WithLogger(slog.Default().With("cmd", "bibiconv")))
	if err != nil {
		return fmt.Errorf("open %s -> %s: %w", from, to, err)
	}
	defer d.Close()

	input, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	dst := make([]byte, 4096)
	src := input
	for len(src) > 0 {
		out := dst
		convErr := d.Convert(&src, &out)
		if n := len(dst) - len(out); n > 0 {
			if _, err := w.Write(dst[:n]); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
		switch {
		case convErr == nil:
			continue
		case codec.CodeOf(convErr) == codec.CodeOutputTooBig:
			dst = make([]byte, len(dst)*2)
			continue
		case codec.CodeOf(convErr) == codec.CodeInvalidArgument && len(src) == 0:
			// The whole file is buffered up front and is not NUL-terminated,
			// so the last pump attempt finds nothing left to decode. That's
			// expected here, not a truncated stream.
		default:
			return fmt.Errorf("convert: %w", convErr)
		}
	}

	out := dst
	if err := d.Convert(nil, &out); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	if n := len(dst) - len(out); n > 0 {
		if _, err := w.Write(dst[:n]); err != nil {
			return fmt.Errorf("write flush output: %w", err)
		}
	}
	return nil
}
