package builtins

import (
	"bytes"
	"strings"
	"testing"
)

func TestHelpWithNoArgumentListsBuiltinNames(t *testing.T) {
	var buf bytes.Buffer
	old := Stdout
	Stdout = &buf
	defer func() { Stdout = old }()

	want(t, "(help)", "()")
	got := buf.String()
	if !strings.Contains(got, "lisp-like") {
		t.Error("help overview text is missing")
	}
	if !strings.Contains(got, "+") {
		t.Error("help listing is missing a builtin name")
	}
}

func TestHelpOnValueDescribesType(t *testing.T) {
	var buf bytes.Buffer
	old := Stdout
	Stdout = &buf
	defer func() { Stdout = old }()

	want(t, "(help 42)", "()")
	if got := buf.String(); !strings.Contains(got, "numeric:") {
		t.Errorf("help on a number printed %q, want it to mention \"numeric:\"", got)
	}
}

func TestHelpOnSymbolReResolvesThroughLookup(t *testing.T) {
	// A raw string argument is re-resolved as a symbol name, mirroring the
	// original's help_m behavior, rather than describing the string itself.
	var buf bytes.Buffer
	old := Stdout
	Stdout = &buf
	defer func() { Stdout = old }()

	want(t, `(help "+")`, "()")
	if got := buf.String(); !strings.Contains(got, "function:") {
		t.Errorf("help(\"+\") printed %q, want it to mention \"function:\"", got)
	}
}

func TestHelpOnUndefinedNameErrors(t *testing.T) {
	runErr(t, `(help "no-such-symbol")`)
}
