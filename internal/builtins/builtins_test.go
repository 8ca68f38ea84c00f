package builtins

import (
	"testing"

	"github.com/cwbudde/yl/internal/eval"
	"github.com/cwbudde/yl/internal/parser"
	"github.com/cwbudde/yl/internal/value"
)

// run parses and evaluates src against a fresh root environment built by
// Global(), the same entry point the REPL and the run CLI command use.
func run(t *testing.T, src string) *value.Unit {
	t.Helper()
	u, parseErr := parser.Parse(src, 0)
	if parseErr != nil {
		t.Fatalf("Parse(%q) error = %v", src, parseErr)
	}
	result, evalErr := eval.Eval(u, Global())
	if evalErr != nil {
		t.Fatalf("Eval(%q) error = %v", src, evalErr)
	}
	return result
}

func runWith(t *testing.T, env *value.Env, src string) *value.Unit {
	t.Helper()
	u, parseErr := parser.Parse(src, 0)
	if parseErr != nil {
		t.Fatalf("Parse(%q) error = %v", src, parseErr)
	}
	result, evalErr := eval.Eval(u, env)
	if evalErr != nil {
		t.Fatalf("Eval(%q) error = %v", src, evalErr)
	}
	return result
}

func runErr(t *testing.T, src string) *value.EvalError {
	t.Helper()
	u, parseErr := parser.Parse(src, 0)
	if parseErr != nil {
		t.Fatalf("Parse(%q) error = %v", src, parseErr)
	}
	_, evalErr := eval.Eval(u, Global())
	if evalErr == nil {
		t.Fatalf("Eval(%q) expected an error", src)
	}
	return evalErr
}

func want(t *testing.T, src, expected string) {
	t.Helper()
	if got := run(t, src).Expr.String(); got != expected {
		t.Errorf("Eval(%q) = %q, want %q", src, got, expected)
	}
}

func TestGlobalBindsEveryBuiltinName(t *testing.T) {
	names := map[string]bool{
		"+": true, "-": true, "*": true, "/": true, "%": true,
		"==": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true,
		"q": true, "quote": true, "eval": true,
		"head": true, "tail": true, "last": true, "init": true,
		"list": true, "join": true, "cons": true, "at": true, "len": true,
		"split": true, "sorted": true, "mk-map": true,
		"int": true, "str": true,
		"readlines": true, "echo": true, "err": true, "time-ms": true,
		"def": true, "=": true, "decomp": true,
		"\\": true, "\\m": true, "\\s": true,
		"if": true, "__while": true,
		"atom?": true, "list?": true, "numeric?": true, "map?": true,
		"function?": true, "raw?": true, "null?": true,
		"help": true,
	}
	env := Global()
	for name := range names {
		if _, ok := env.Lookup(name); !ok {
			t.Errorf("Global() has no binding for %q", name)
		}
	}
}
