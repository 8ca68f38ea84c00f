package builtins

import (
	"github.com/cwbudde/yl/internal/eval"
	"github.com/cwbudde/yl/internal/token"
	"github.com/cwbudde/yl/internal/value"
)

// ifFn implements spec §4.4.7's `if` (macro): evaluates cond in the
// caller's environment, then forces exactly one branch.
func ifFn(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
	args := eval.Args(call)
	if err := checkArity(call, "if", args, 2, 3); err != nil {
		return nil, err
	}
	cond, err := eval.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	n, err := asNumber(cond)
	if err != nil {
		return nil, err
	}
	if n.Truthy() {
		return eval.Force(args[1], env)
	}
	if len(args) == 3 {
		return eval.Force(args[2], env)
	}
	return value.NewUnit(call.Pos, value.EmptyList()), nil
}

// whileFn implements spec §4.4.7's `__while` (macro): repeatedly forces
// cond (until it reduces to zero), forcing body on each truthy iteration.
// Both may be given as Q expressions, e.g. `__while {< n 5} {...}`.
func whileFn(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
	args := eval.Args(call)
	if err := checkArity(call, "__while", args, 2, 2); err != nil {
		return nil, err
	}
	for {
		cond, err := eval.Force(args[0], env)
		if err != nil {
			return nil, err
		}
		n, err := asNumber(cond)
		if err != nil {
			return nil, err
		}
		if !n.Truthy() {
			break
		}
		if _, err := eval.Force(args[1], env); err != nil {
			return nil, err
		}
	}
	return value.NewUnit(call.Pos, value.EmptyList()), nil
}

func registerControl(root *value.Frame) {
	root.Define("if", value.NewUnit(token.Position{}, value.Fn{
		Description: "Evaluates a Q expression depending on the condition.",
		Call:        ifFn,
		Macro:       true,
	}))
	root.Define("__while", value.NewUnit(token.Position{}, value.Fn{
		Description: "Repeatedly evaluates a body while a condition holds. Returns the empty list.",
		Call:        whileFn,
		Macro:       true,
	}))
}
