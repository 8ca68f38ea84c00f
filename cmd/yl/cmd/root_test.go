package cmd

import "testing"

func TestArgOrEmptyWithNoArguments(t *testing.T) {
	if got := argOrEmpty(nil); got != "" {
		t.Errorf("argOrEmpty(nil) = %q, want \"\"", got)
	}
}

func TestArgOrEmptyReturnsFirstArgument(t *testing.T) {
	if got := argOrEmpty([]string{"script.yl", "ignored.yl"}); got != "script.yl" {
		t.Errorf("argOrEmpty() = %q, want %q", got, "script.yl")
	}
}

func TestRootCommandAcceptsAtMostOneFileArgument(t *testing.T) {
	if err := rootCmd.Args(rootCmd, []string{"one.yl", "two.yl"}); err == nil {
		t.Error("root command should reject more than one file argument")
	}
	if err := rootCmd.Args(rootCmd, []string{"one.yl"}); err != nil {
		t.Errorf("root command should accept a single file argument, got %v", err)
	}
	if err := rootCmd.Args(rootCmd, nil); err != nil {
		t.Errorf("root command should accept no arguments, got %v", err)
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"run", "parse"} {
		if !names[want] {
			t.Errorf("root command is missing the %q subcommand", want)
		}
	}
}
