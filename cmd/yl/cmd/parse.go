package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/yl/internal/diag"
	"github.com/cwbudde/yl/internal/jsonview"
	"github.com/cwbudde/yl/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a file (or stdin) and print the resulting tree, without evaluating it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runParse(argOrEmpty(args))
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(filename string) error {
	var src string
	if filename == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("yl: reading stdin: %w", err)
		}
		src = string(data)
	} else {
		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("yl: %w", err)
		}
		src = string(data)
	}

	hist := fileHistory{text: src}
	units, parseErr := parser.ParseProgram(src, 0)
	if parseErr != nil {
		rendered := diag.Render(parseErr, hist, 0, !noColor)
		if jsonOutput {
			dump, err := jsonview.Patch([]byte("{}"), []string{parseErr.Error()})
			if err == nil {
				fmt.Println(string(dump))
			}
		}
		fmt.Fprintln(os.Stderr, rendered)
		return fmt.Errorf("parsing failed")
	}

	for _, u := range units {
		if jsonOutput {
			dump, err := jsonview.Marshal(u)
			if err != nil {
				return err
			}
			fmt.Println(string(dump))
			continue
		}
		fmt.Println(u.Expr.String())
	}
	return nil
}
