package builtins

import (
	"github.com/cwbudde/yl/internal/eval"
	"github.com/cwbudde/yl/internal/token"
	"github.com/cwbudde/yl/internal/value"
)

// parseParams validates a quoted parameter list per spec §4.4.6: plain
// symbols, optionally ending in a trailing bare `&` (discard extras) or
// `& rest` (capture extras into rest as a quoted list).
func parseParams(lst value.List) (params []string, variadic bool, rest string, err *value.EvalError) {
	for i, c := range lst.Children {
		sym, symErr := asSymbol(c)
		if symErr != nil {
			return nil, false, "", value.Errf(c.Pos, "Expected a symbol.")
		}
		if sym.Text == "&" {
			variadic = true
			remaining := len(lst.Children) - i - 1
			if remaining > 1 {
				return nil, false, "", value.Errf(c.Pos, "Variadic sign expects either zero or one argument.")
			}
			if remaining == 1 {
				restSym, restErr := asSymbol(lst.Children[i+1])
				if restErr != nil {
					return nil, false, "", restErr
				}
				rest = restSym.Text
			}
			break
		}
		params = append(params, sym.Text)
	}
	return params, variadic, rest, nil
}

// makeUserCall builds the CallFunc for a user-defined lambda/macro/syntax
// function, closing over its fixed parameter names, variadic/rest
// configuration, body, and the environment its free names resolve
// through. Grounded on original_source/src/yl/builtins.hpp's
// create_function, generalized with real lexical closures (captured at
// definition time) instead of the original's call-site-only environment,
// per spec §4.4.6's definition-site-vs-call-site distinction.
func makeUserCall(params []string, variadic bool, rest string, body *value.Unit, closure *value.Env, macro, syntax bool) value.CallFunc {
	return func(call *value.Unit, callEnv *value.Env) (*value.Unit, *value.EvalError) {
		args := eval.Args(call)
		fixed := len(params)

		if !variadic && len(args) > fixed {
			return nil, value.Errf(call.Pos, "Excess arguments, expected %d, got %d.", fixed, len(args))
		}
		if len(args) < fixed {
			if variadic {
				return nil, value.Errf(call.Pos, "Not enough values to assign to non-variadic parameters.")
			}
			// Non-variadic, undersupplied: partial application. A new function
			// is returned, capturing the arguments bound so far and waiting on
			// the remaining parameter names.
			frame := value.NewFrame()
			for i, a := range args {
				frame.Define(params[i], a)
			}
			partialClosure := value.Push(frame, closure)
			return value.NewUnit(call.Pos, value.Fn{
				Description: "User defined partially evaluated function.",
				Macro:       macro,
				Syntax:      syntax,
				Call:        makeUserCall(params[len(args):], variadic, rest, body, partialClosure, macro, syntax),
			}), nil
		}

		frame := value.NewFrame()
		for i := 0; i < fixed; i++ {
			frame.Define(params[i], args[i])
		}
		if variadic && rest != "" {
			extras := make([]*value.Unit, 0, len(args)-fixed)
			extras = append(extras, args[fixed:]...)
			frame.Define(rest, value.NewUnit(call.Pos, quotedList(extras)))
		}

		var bodyEnv *value.Env
		if syntax {
			bodyEnv = value.Push(frame, callEnv)
		} else {
			bodyEnv = value.Push(frame, closure)
		}
		return eval.Force(body, bodyEnv)
	}
}

// lambdaConstructor implements `\`/`\m`/`\s` (spec §4.4.6): each shares the
// same (params, [docstring], body) argument contract and differs only in
// the macro/syntax bits stamped on the resulting Fn.
func lambdaConstructor(name string, macro, syntax bool, defaultDesc string) value.CallFunc {
	return func(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
		args := eval.Args(call)
		if err := checkArity(call, name, args, 2, 3); err != nil {
			return nil, err
		}
		paramList, err := asQuoted(args[0])
		if err != nil {
			return nil, err
		}
		params, variadic, rest, perr := parseParams(paramList)
		if perr != nil {
			return nil, perr
		}

		desc := defaultDesc
		var body *value.Unit
		if len(args) == 3 {
			doc, docErr := asRaw(args[1])
			if docErr != nil {
				return nil, value.Errf(args[1].Pos, "Expected a raw doc-string.")
			}
			desc = doc.Text
			if _, bodyErr := asQuoted(args[2]); bodyErr != nil {
				return nil, bodyErr
			}
			body = args[2]
		} else {
			if _, bodyErr := asQuoted(args[1]); bodyErr != nil {
				return nil, bodyErr
			}
			body = args[1]
		}

		fn := value.Fn{Description: desc, Macro: macro, Syntax: syntax}
		fn.Call = makeUserCall(params, variadic, rest, body, env, macro, syntax)
		return value.NewUnit(call.Pos, fn), nil
	}
}

func registerLambda(root *value.Frame) {
	root.Define("\\", value.NewUnit(token.Position{}, value.Fn{
		Description: "Lambda function: takes a Q expression of symbols as arguments and a Q expression as a body. Returns a callable function.",
		Call:        lambdaConstructor("\\", false, false, "User defined function."),
	}))
	root.Define("\\m", value.NewUnit(token.Position{}, value.Fn{
		Description: "Macro function: like lambda, but arguments reach the body unevaluated, subject to comma-splicing.",
		Call:        lambdaConstructor("\\m", true, false, "User defined macro."),
	}))
	root.Define("\\s", value.NewUnit(token.Position{}, value.Fn{
		Description: "Syntax function: like macro, but the body's environment parent is the caller's environment, enabling short-circuiting constructs.",
		Call:        lambdaConstructor("\\s", true, true, "User defined syntax function."),
	}))
}
