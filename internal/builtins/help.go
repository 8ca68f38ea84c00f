package builtins

import (
	"fmt"
	"strings"

	"github.com/cwbudde/yl/internal/eval"
	"github.com/cwbudde/yl/internal/token"
	"github.com/cwbudde/yl/internal/value"
)

const overview = "" +
	"  This is a lisp-like interpreted language.\n" +
	"  There are a handful of types: numeric, symbol, raw string, function, list and map.\n" +
	"  Numeric type is a signed integer number such as 1, or -2444.\n" +
	"  Symbol is any named value such as 'a' or 'help'.\n" +
	"  List is a list of types. It can be evaluated such as '(+ 1 2)'\n" +
	"  or unevaluated such as '{+ 1 2}' which can be evaluated using 'eval'.\n" +
	"  An unevaluated list is also referred to as a Q expression.\n" +
	"  Function is a resolved symbol that represents a computation,\n" +
	"  it can be created using '\\', see '(help \\)'.\n" +
	"  Functions support partial evaluation.\n" +
	"\n" +
	"  Examples:\n" +
	"  (+ 1 2)\n" +
	"  (eval {+ 1 2})\n" +
	"  (def {mySymbol} 2)\n" +
	"  (+ mySymbol 4)\n" +
	"  ((\\ {x y} {+ x y}) 2 4)\n" +
	"\n" +
	"  Enter '(help symbol)' to get information about a symbol.\n" +
	"  Symbols currently available for inspection:\n"

func typeOf(e value.Expr) string {
	switch e.(type) {
	case value.Number:
		return "numeric"
	case value.Str:
		return "string"
	case value.List:
		return "list"
	case value.Fn:
		return "function"
	case value.Map:
		return "map"
	default:
		return "unknown"
	}
}

// helpFn implements spec §4.4's `help` (supplemented from the original
// source, present there but dropped from the distilled catalog): with no
// argument, prints the overview plus every name bound at the root; with
// one argument, describes that value's type and printed form. Passing a
// raw string looks the name up by text rather than describing the string
// itself, grounded on original_source/src/yl/builtins.hpp's help_m (which
// re-resolves a raw-string argument through resolve_symbol). Like `echo`,
// it prints to Stdout and returns the empty list rather than the text.
func helpFn(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
	args := eval.Args(call)
	if err := checkArity(call, "help", args, 0, 1); err != nil {
		return nil, err
	}

	var sb strings.Builder
	if len(args) == 0 {
		sb.WriteString("\n")
		sb.WriteString(overview)
		for _, name := range env.Global().Curr.Names() {
			sb.WriteString("    ")
			sb.WriteString(name)
			sb.WriteString("\n")
		}
		fmt.Fprint(Stdout, sb.String())
		return value.NewUnit(call.Pos, value.EmptyList()), nil
	}

	expr := args[0].Expr
	if s, ok := expr.(value.Str); ok && s.Raw {
		bound, found := env.Lookup(s.Text)
		if !found {
			return nil, value.LookupError(s.Text, args[0].Pos)
		}
		expr = bound.Expr
	}

	sb.WriteString(typeOf(expr))
	sb.WriteString(":\n")
	sb.WriteString(expr.String())
	sb.WriteString("\n")
	fmt.Fprint(Stdout, sb.String())
	return value.NewUnit(call.Pos, value.EmptyList()), nil
}

func registerHelp(root *value.Frame) {
	root.Define("help", value.NewUnit(token.Position{}, value.Fn{
		Description: "Outputs information about a symbol, or a general overview with no argument.",
		Call:        helpFn,
	}))
}
