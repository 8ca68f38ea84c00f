package builtins

import (
	"github.com/cwbudde/yl/internal/eval"
	"github.com/cwbudde/yl/internal/token"
	"github.com/cwbudde/yl/internal/value"
)

func boolNumber(b bool) value.Number {
	if b {
		return 1
	}
	return 0
}

func equalFn(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
	args := eval.Args(call)
	if err := checkArity(call, "==", args, 2, 2); err != nil {
		return nil, err
	}
	return value.NewUnit(call.Pos, boolNumber(value.Equal(args[0].Expr, args[1].Expr))), nil
}

func notEqualFn(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
	u, err := equalFn(call, env)
	if err != nil {
		return nil, err
	}
	eq := u.Expr.(value.Number)
	return value.NewUnit(call.Pos, boolNumber(eq == 0)), nil
}

// orderingFn implements <, >, <=, >= (spec §4.4.2): exactly two arguments,
// both Number or both raw Str, compared numerically or lexicographically.
func orderingFn(name string, numCmp func(a, b value.Number) bool, strCmp func(a, b string) bool) value.CallFunc {
	return func(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
		args := eval.Args(call)
		if err := checkArity(call, name, args, 2, 2); err != nil {
			return nil, err
		}
		an, aIsNum := args[0].Expr.(value.Number)
		bn, bIsNum := args[1].Expr.(value.Number)
		if aIsNum && bIsNum {
			return value.NewUnit(call.Pos, boolNumber(numCmp(an, bn))), nil
		}
		as, aIsStr := args[0].Expr.(value.Str)
		bs, bIsStr := args[1].Expr.(value.Str)
		if aIsStr && aIsStr == bIsStr && as.Raw && bs.Raw {
			return value.NewUnit(call.Pos, boolNumber(strCmp(as.Text, bs.Text))), nil
		}
		return nil, value.Errf(call.Pos, "%s: expected two numbers or two raw strings.", name)
	}
}

func registerComparisons(root *value.Frame) {
	root.Define("==", value.NewUnit(token.Position{}, value.Fn{Description: "Compares arguments for equality.", Call: equalFn}))
	root.Define("!=", value.NewUnit(token.Position{}, value.Fn{Description: "Compares arguments for inequality.", Call: notEqualFn}))
	root.Define("<", value.NewUnit(token.Position{}, value.Fn{
		Description: "Tests if first argument is less than second.",
		Call:        orderingFn("<", func(a, b value.Number) bool { return a < b }, func(a, b string) bool { return a < b }),
	}))
	root.Define(">", value.NewUnit(token.Position{}, value.Fn{
		Description: "Tests if first argument is greater than second.",
		Call:        orderingFn(">", func(a, b value.Number) bool { return a > b }, func(a, b string) bool { return a > b }),
	}))
	root.Define("<=", value.NewUnit(token.Position{}, value.Fn{
		Description: "Tests if first argument is less than or equal to second.",
		Call:        orderingFn("<=", func(a, b value.Number) bool { return a <= b }, func(a, b string) bool { return a <= b }),
	}))
	root.Define(">=", value.NewUnit(token.Position{}, value.Fn{
		Description: "Tests if first argument is greater than or equal to second.",
		Call:        orderingFn(">=", func(a, b value.Number) bool { return a >= b }, func(a, b string) bool { return a >= b }),
	}))
}
