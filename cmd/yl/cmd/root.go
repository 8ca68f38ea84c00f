package cmd

import (
	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "yl [file]",
	Short: "yl is a small Lisp-family interpreter",
	Long: `yl is an interactive interpreter for a small Lisp-family language:
numbers, strings, symbols, lists and maps, with macros and lexical
closures built from a handful of primitive forms.

Run with no arguments to start the REPL. Run with a file to execute it
and exit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runTarget(argOrEmpty(args))
	},
}

func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit JSON-formatted results instead of printed text")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostic output")
}
