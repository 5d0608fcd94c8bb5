package codec_test

import (
	"errors"
	"testing"

	"github.com/libsteve/bibiconv/codec"
)

func TestOpenDefaultsEmptyNamesToChar(t *testing.T) {
	d, err := codec.Open("", "")
	if err != nil {
		t.Fatalf("Open(\"\", \"\"): %v", err)
	}
	defer d.Close()

	src := []byte("Hi")
	dst := make([]byte, 16)
	out := dst
	// The input is not NUL-terminated, so the pump ends on an exhausted src.
	if err := d.Convert(&src, &out); codec.CodeOf(err) != codec.CodeInvalidArgument {
		t.Fatalf("Convert: err = %v, want invalid-argument (trailing EOF)", err)
	}
	if got := dst[:len(dst)-len(out)]; string(got) != "Hi" {
		t.Fatalf("Convert output = %q, want %q", got, "Hi")
	}
}

func TestOpenNameAliasesAreCaseAndDashInsensitive(t *testing.T) {
	aliases := []string{"UTF-8", "utf8", "Utf--8", "char", "CHAR"}
	for _, alias := range aliases {
		if _, err := codec.Open(alias, alias); err != nil {
			t.Errorf("Open(%q, %q): %v", alias, alias, err)
		}
	}
}

func TestOpenUnsupportedEncodingName(t *testing.T) {
	_, err := codec.Open("klingon", "char")
	if !errors.Is(err, codec.ErrUnsupportedEncoding) {
		t.Fatalf("Open(\"klingon\", ...) err = %v, want ErrUnsupportedEncoding", err)
	}
	if got := codec.CodeOf(err); got != codec.CodeInvalidArgument {
		t.Fatalf("CodeOf(Open(\"klingon\", ...)) = %v, want CodeInvalidArgument", got)
	}

	_, err = codec.Open("char", "klingon")
	if !errors.Is(err, codec.ErrUnsupportedEncoding) {
		t.Fatalf("Open(..., \"klingon\") err = %v, want ErrUnsupportedEncoding", err)
	}
	if got := codec.CodeOf(err); got != codec.CodeInvalidArgument {
		t.Fatalf("CodeOf(Open(..., \"klingon\")) = %v, want CodeInvalidArgument", got)
	}
}

func TestOpenRecognizesAllDocumentedAliases(t *testing.T) {
	fromNames := []string{"MARC-8", "ANSEL", "UTF-8", "char", "UTF-16", "UCS-2", "UTF-32", "UCS-4", "wchar", "wchar_t"}
	for _, name := range fromNames {
		if _, err := codec.Open("char", name); err != nil {
			t.Errorf("Open(\"char\", %q): %v", name, err)
		}
	}

	toNames := []string{"UTF-8", "char", "UTF-16", "UCS-2", "UTF-32", "UCS-4", "wchar", "wchar_t"}
	for _, name := range toNames {
		if _, err := codec.Open(name, "char"); err != nil {
			t.Errorf("Open(%q, \"char\"): %v", name, err)
		}
	}
}
