package builtins

import (
	"github.com/cwbudde/yl/internal/eval"
	"github.com/cwbudde/yl/internal/token"
	"github.com/cwbudde/yl/internal/value"
)

// bindFn implements both `def` and `=` (spec §4.4.5): a quoted list of
// symbols, then one value expression per name, each evaluated in the
// caller's environment and installed — at root for `def`, in the current
// frame for `=`.
func bindFn(name string, target func(env *value.Env) *value.Frame) value.CallFunc {
	return func(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
		args := eval.Args(call)
		if err := checkArity(call, name, args, 1, -1); err != nil {
			return nil, err
		}
		names, err := asQuoted(args[0])
		if err != nil {
			return nil, err
		}
		values := args[1:]
		if len(names.Children) != len(values) {
			return nil, value.Errf(call.Pos, "%s: %d name(s) but %d value(s).", name, len(names.Children), len(values))
		}

		frame := target(env)
		var last *value.Unit
		for i, n := range names.Children {
			sym, err := asSymbol(n)
			if err != nil {
				return nil, err
			}
			v, err := eval.Eval(values[i], env)
			if err != nil {
				return nil, err
			}
			frame.Define(sym.Text, v)
			last = v
		}
		if last == nil {
			return value.NewUnit(call.Pos, value.EmptyList()), nil
		}
		return last, nil
	}
}

// decompFn implements spec §4.4.5's `decomp`: evaluate expr, then
// recursively match pattern against the result, binding symbols in the
// current frame.
func decompFn(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
	args := eval.Args(call)
	if err := checkArity(call, "decomp", args, 2, 2); err != nil {
		return nil, err
	}
	result, err := eval.Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	if err := decompose(args[0], result, env); err != nil {
		return nil, err
	}
	return result, nil
}

func decompose(pattern, value_ *value.Unit, env *value.Env) *value.EvalError {
	if sym, err := asSymbol(pattern); err == nil {
		env.Define(sym.Text, value_)
		return nil
	}
	patList, err := asQuoted(pattern)
	if err != nil {
		return value.Errf(pattern.Pos, "decomp: pattern must be a symbol or a Q expression.")
	}
	valList, ok := value_.Expr.(value.List)
	if !ok || len(valList.Children) != len(patList.Children) {
		return value.Errf(pattern.Pos, "decomp: value does not match pattern shape.")
	}
	for i, sub := range patList.Children {
		if err := decompose(sub, valList.Children[i], env); err != nil {
			return err
		}
	}
	return nil
}

func registerBind(root *value.Frame) {
	root.Define("def", value.NewUnit(token.Position{}, value.Fn{
		Description: "Binds names to values in the root environment.",
		Call: bindFn("def", func(env *value.Env) *value.Frame {
			return env.Global().Curr
		}),
		Macro: true,
	}))
	root.Define("=", value.NewUnit(token.Position{}, value.Fn{
		Description: "Binds names to values in the current environment.",
		Call: bindFn("=", func(env *value.Env) *value.Frame {
			return env.Curr
		}),
		Macro: true,
	}))
	root.Define("decomp", value.NewUnit(token.Position{}, value.Fn{
		Description: "Evaluates an expression and destructures it against a pattern.",
		Call:        decompFn,
		Macro:       true,
	}))
}
