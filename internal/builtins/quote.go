package builtins

import (
	"github.com/cwbudde/yl/internal/eval"
	"github.com/cwbudde/yl/internal/token"
	"github.com/cwbudde/yl/internal/value"
)

// quoteFn implements `q`/`quote` (spec §4.4.3): a macro that returns its
// single argument exactly as received, unevaluated. Because it is
// registered with Macro=true, the evaluator never reduces that argument
// before handing it here.
func quoteFn(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
	args := eval.Args(call)
	if err := checkArity(call, "q", args, 1, 1); err != nil {
		return nil, err
	}
	return args[0], nil
}

// evalFn implements `eval`: forces a (typically Quoted) argument to run as
// a List, via eval.Force (spec §4.4.3). Ordinary (non-macro): its argument
// already passed through the evaluator once, which is a no-op for a Quoted
// list (rule 1) and harmless for an already-reduced value.
func evalFn(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
	args := eval.Args(call)
	if err := checkArity(call, "eval", args, 1, 1); err != nil {
		return nil, err
	}
	if _, err := asQuoted(args[0]); err != nil {
		return nil, err
	}
	return eval.Force(args[0], env)
}

func registerQuote(root *value.Frame) {
	root.Define("q", value.NewUnit(token.Position{}, value.Fn{
		Description: "Returns its single argument unevaluated.",
		Call:        quoteFn,
		Macro:       true,
	}))
	root.Define("quote", value.NewUnit(token.Position{}, value.Fn{
		Description: "Returns its single argument unevaluated.",
		Call:        quoteFn,
		Macro:       true,
	}))
	root.Define("eval", value.NewUnit(token.Position{}, value.Fn{
		Description: "Evaluates a Q expression.",
		Call:        evalFn,
	}))
}
