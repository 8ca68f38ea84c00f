package eval_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/yl/internal/builtins"
	"github.com/cwbudde/yl/internal/eval"
	"github.com/cwbudde/yl/internal/parser"
)

// runProgram evaluates every top-level unit in src against one shared root
// environment and returns the last result, mirroring how the file/REPL
// drivers thread state across successive entries.
func runProgram(t *testing.T, src string) string {
	t.Helper()
	units, parseErr := parser.ParseProgram(src, 0)
	if parseErr != nil {
		t.Fatalf("ParseProgram(%q) error = %v", src, parseErr)
	}
	env := builtins.Global()
	var last string
	for _, u := range units {
		result, evalErr := eval.Eval(u, env)
		if evalErr != nil {
			t.Fatalf("Eval(%q) error = %v", src, evalErr)
		}
		last = result.Expr.String()
	}
	return last
}

// TestEndToEndScenarioSnapshots pins the printed form of the end-to-end
// scenarios against recorded snapshots, the way the teacher's fixture suite
// snapshots interpreter output rather than hand-writing each expected string.
func TestEndToEndScenarioSnapshots(t *testing.T) {
	scenarios := []struct {
		name string
		src  string
	}{
		{"arithmetic", "(+ 1 2 3)"},
		{"if_truthy", "(if (== 1 1) {100} {200})"},
		{"if_falsy_no_else", "(if 0 {a})"},
		{"sorted", "(sorted {3 1 2})"},
		{"tail", "(tail {1 2 3})"},
		{"at", "(at {10 20 30} 1)"},
		{"macro_unquote", "(def {twice} (\\m {x} {+ , x , x})) (twice (+ 1 2))"},
	}
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			snaps.MatchSnapshot(t, sc.name, runProgram(t, sc.src))
		})
	}
}
