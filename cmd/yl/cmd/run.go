package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/yl/internal/builtins"
	"github.com/cwbudde/yl/internal/diag"
	"github.com/cwbudde/yl/internal/eval"
	"github.com/cwbudde/yl/internal/jsonview"
	"github.com/cwbudde/yl/internal/parser"
	"github.com/cwbudde/yl/internal/repl"
	"github.com/cwbudde/yl/internal/value"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a file, or start the REPL if no file is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runTarget(argOrEmpty(args))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// fileHistory satisfies diag.History for a whole source file treated as a
// single flattened entry (see internal/lexer's package doc on what "line"
// means); a diagnostic against it always reprints the full file text.
type fileHistory struct{ text string }

func (h fileHistory) Entry(i int) (string, bool) {
	if i != 0 {
		return "", false
	}
	return h.text, true
}

func runTarget(filename string) error {
	if filename == "" {
		r, err := repl.New(!noColor)
		if err != nil {
			return err
		}
		return r.Run()
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("yl: %w", err)
	}
	src := string(data)
	hist := fileHistory{text: src}

	units, parseErr := parser.ParseProgram(src, 0)
	if parseErr != nil {
		fmt.Fprintln(os.Stderr, diag.Render(parseErr, hist, 0, !noColor))
		return fmt.Errorf("parsing failed")
	}

	env := builtins.Global()
	for _, u := range units {
		result, evalErr := eval.Eval(u, env)
		if evalErr != nil {
			fmt.Fprintln(os.Stderr, diag.Render(evalErr, hist, 0, !noColor))
			return fmt.Errorf("evaluation failed")
		}
		printResult(result)
	}
	return nil
}

func printResult(u *value.Unit) {
	if jsonOutput {
		dump, err := jsonview.Marshal(u)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Println(string(dump))
		return
	}
	fmt.Println(u.Expr.String())
}
