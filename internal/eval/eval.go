// Package eval implements the evaluator described in spec §4.3: dispatch on
// Expr variant, symbol resolution, and macro/syntax-aware function
// application.
package eval

import "github.com/cwbudde/yl/internal/value"

// Eval reduces u against env, per spec §4.3's numbered rules.
func Eval(u *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
	switch e := u.Expr.(type) {
	case value.Str:
		if e.Raw {
			return u, nil
		}
		return resolveSymbol(u, env)
	case value.List:
		if e.Quoted {
			return u, nil
		}
		return evalList(u, e, env)
	default:
		// Number, Map, Fn: already values.
		return u, nil
	}
}

// Force evaluates u as an application regardless of whether it is marked
// Quoted. It is used by the `eval` builtin and by lambda/macro/syntax body
// execution, both of which hold a Quoted list (so it isn't reduced merely
// by being passed around) that needs to actually run.
func Force(u *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
	lst, ok := u.Expr.(value.List)
	if !ok {
		return Eval(u, env)
	}
	forced := value.NewUnit(u.Pos, value.List{Quoted: false, Children: lst.Children})
	return Eval(forced, env)
}

// resolveSymbol implements rule 2: look up an unresolved identifier and
// return the binding's Expr wrapped with the symbol's own position. The
// bound value is returned as is, so a macro parameter named bare in the
// body yields the caller's unevaluated form.
func resolveSymbol(u *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
	s := u.Expr.(value.Str)
	bound, ok := env.Lookup(s.Text)
	if !ok {
		return nil, value.LookupError(s.Text, u.Pos)
	}
	return value.NewUnit(u.Pos, bound.Expr), nil
}

// unquote evaluates the target X of `, X`. When the value of X is itself a
// non-Quoted, non-empty application List (a macro parameter bound to its
// caller's source form), that form is evaluated too, so `, x` inside a macro
// body yields the value the caller's expression computes.
func unquote(target *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
	v, err := Eval(target, env)
	if err != nil {
		return nil, err
	}
	if lst, isList := v.Expr.(value.List); isList && !lst.Quoted && len(lst.Children) > 0 {
		return Eval(v, env)
	}
	return v, nil
}

// commaTarget reports whether u is the unquote shorthand `(, X)` — a
// two-element, non-quoted list whose head is the literal symbol ",". The
// parser builds this shape whenever it sees a bare "," token (see
// internal/parser), mirroring how quasiquote readers expand `,x` into
// `(unquote x)`.
func commaTarget(u *value.Unit) (*value.Unit, bool) {
	lst, ok := u.Expr.(value.List)
	if !ok || lst.Quoted || len(lst.Children) != 2 {
		return nil, false
	}
	head, ok := lst.Children[0].Expr.(value.Str)
	if !ok || head.Raw || head.Text != "," {
		return nil, false
	}
	return lst.Children[1], true
}

func evalList(u *value.Unit, lst value.List, env *value.Env) (*value.Unit, *value.EvalError) {
	if len(lst.Children) == 0 {
		return u, nil
	}

	// Universal unquote short-circuit (rule d's splice rule, generalized to
	// any non-quoted list position so it also fires while a macro/syntax
	// body is being force-evaluated, not only at a macro's direct call
	// site — see DESIGN.md).
	if target, ok := commaTarget(u); ok {
		return unquote(target, env)
	}

	head, err := Eval(lst.Children[0], env)
	if err != nil {
		return nil, err
	}

	fn, isFn := head.Expr.(value.Fn)

	if len(lst.Children) == 1 && !isFn {
		return head, nil
	}

	if !isFn {
		return nil, value.Errf(lst.Children[0].Pos, "Expected a builtin or user defined function.")
	}

	rest := lst.Children[1:]
	var args []*value.Unit

	if fn.Macro {
		for _, child := range rest {
			if target, ok := commaTarget(child); ok {
				v, err := unquote(target, env)
				if err != nil {
					return nil, err
				}
				args = append(args, v)
				continue
			}
			args = append(args, child)
		}
	} else {
		for _, child := range rest {
			v, err := Eval(child, env)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
		}
	}

	callChildren := make([]*value.Unit, 0, len(args)+1)
	callChildren = append(callChildren, head)
	callChildren = append(callChildren, args...)
	call := value.NewUnit(u.Pos, value.List{Quoted: false, Children: callChildren})

	return fn.Call(call, env)
}

// Args returns the non-head children of a call Unit, per spec §4.3's
// "arity checks use size-1" convention. Builtins use this instead of
// re-deriving the type switch each time.
func Args(call *value.Unit) []*value.Unit {
	lst := call.Expr.(value.List)
	if len(lst.Children) <= 1 {
		return nil
	}
	return lst.Children[1:]
}
