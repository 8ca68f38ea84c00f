package builtins

import (
	"strconv"
	"strings"

	"github.com/cwbudde/yl/internal/eval"
	"github.com/cwbudde/yl/internal/token"
	"github.com/cwbudde/yl/internal/value"
)

// intFn implements spec §4.4.5's `int`: parses a raw string into a Number,
// or passes a Number through unchanged.
func intFn(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
	args := eval.Args(call)
	if err := checkArity(call, "int", args, 1, 1); err != nil {
		return nil, err
	}
	if n, ok := args[0].Expr.(value.Number); ok {
		return value.NewUnit(call.Pos, n), nil
	}
	s, err := asRaw(args[0])
	if err != nil {
		return nil, err
	}
	n, parseErr := strconv.ParseInt(strings.TrimSpace(s.Text), 10, 64)
	if parseErr != nil {
		return nil, value.Errf(args[0].Pos, "int: %q is not a valid integer.", s.Text)
	}
	return value.NewUnit(call.Pos, value.Number(n)), nil
}

// strFn implements spec §4.4.5's `str`: renders any value as a raw string,
// using the same textual form the REPL's printer uses. A raw string is
// returned unchanged, without the printer's surrounding quotes.
func strFn(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
	args := eval.Args(call)
	if err := checkArity(call, "str", args, 1, 1); err != nil {
		return nil, err
	}
	if s, ok := args[0].Expr.(value.Str); ok && s.Raw {
		return value.NewUnit(call.Pos, s), nil
	}
	return value.NewUnit(call.Pos, value.Str{Text: args[0].Expr.String(), Raw: true}), nil
}

func registerConvert(root *value.Frame) {
	root.Define("int", value.NewUnit(token.Position{}, value.Fn{Description: "Converts a raw string to a number.", Call: intFn}))
	root.Define("str", value.NewUnit(token.Position{}, value.Fn{Description: "Renders a value as a raw string.", Call: strFn}))
}
