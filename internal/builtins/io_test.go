package builtins

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestEchoPrintsPrintedFormAndReturnsEmptyList(t *testing.T) {
	var buf bytes.Buffer
	old := Stdout
	Stdout = &buf
	defer func() { Stdout = old }()

	want(t, `(echo "hi")`, "()")
	if got, want := buf.String(), "\"hi\"\n"; got != want {
		t.Errorf("echo wrote %q, want %q", got, want)
	}
}

func TestErrRaisesWithMessage(t *testing.T) {
	evalErr := runErr(t, `(err "boom")`)
	if evalErr.Message != "boom" {
		t.Errorf("Message = %q, want %q", evalErr.Message, "boom")
	}
}

func TestErrRequiresRawString(t *testing.T) {
	runErr(t, "(err foo)")
}

func TestTimeMsReturnsPositiveNumber(t *testing.T) {
	got := run(t, "(time-ms)")
	n, ok := got.Expr.(interface{ Truthy() bool })
	if !ok {
		t.Fatalf("time-ms result has no Truthy(), got %#v", got.Expr)
	}
	if !n.Truthy() {
		t.Error("time-ms should not return zero for a real wall-clock read")
	}
}

func TestReadlinesReadsFileAndTrimsTrailingBlankLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lines.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}
	want(t, `(readlines "`+path+`")`, `{"one" "two" "three"}`)
}

func TestReadlinesMissingFileErrors(t *testing.T) {
	runErr(t, `(readlines "/no/such/file")`)
}
