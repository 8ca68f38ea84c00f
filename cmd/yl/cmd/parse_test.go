package cmd

import (
	"os"
	"testing"
)

func TestParseCommandAcceptsAtMostOneFileArgument(t *testing.T) {
	if err := parseCmd.Args(parseCmd, []string{"a.yl", "b.yl"}); err == nil {
		t.Error("parse command should reject more than one file argument")
	}
}

func TestRunParseReportsMissingFile(t *testing.T) {
	if err := runParse("no-such-file.yl"); err == nil {
		t.Error("runParse() on a missing file should return an error")
	}
}

func TestRunParseReportsSyntaxError(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/broken.yl"
	if err := os.WriteFile(path, []byte("(+ 1 2"), 0o644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}
	if err := runParse(path); err == nil {
		t.Error("runParse() on an unbalanced expression should return an error")
	}
}
