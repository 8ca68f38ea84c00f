package builtins

import (
	"github.com/cwbudde/yl/internal/eval"
	"github.com/cwbudde/yl/internal/token"
	"github.com/cwbudde/yl/internal/value"
)

// predicateFn implements spec §4.4.8's type predicate family: a single
// argument, a Number 0/1 result.
func predicateFn(name string, test func(e value.Expr) bool) value.CallFunc {
	return func(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
		args := eval.Args(call)
		if err := checkArity(call, name, args, 1, 1); err != nil {
			return nil, err
		}
		return value.NewUnit(call.Pos, boolNumber(test(args[0].Expr))), nil
	}
}

func registerPredicates(root *value.Frame) {
	preds := []struct {
		name, desc string
		test       func(e value.Expr) bool
	}{
		{"atom?", "True for numbers and strings.", func(e value.Expr) bool {
			switch e.(type) {
			case value.Number, value.Str:
				return true
			default:
				return false
			}
		}},
		{"list?", "True for lists, quoted or not.", func(e value.Expr) bool {
			_, ok := e.(value.List)
			return ok
		}},
		{"numeric?", "True for numbers.", func(e value.Expr) bool {
			_, ok := e.(value.Number)
			return ok
		}},
		{"map?", "True for maps.", func(e value.Expr) bool {
			_, ok := e.(value.Map)
			return ok
		}},
		{"function?", "True for functions.", func(e value.Expr) bool {
			_, ok := e.(value.Fn)
			return ok
		}},
		{"raw?", "True only for raw strings.", func(e value.Expr) bool {
			s, ok := e.(value.Str)
			return ok && s.Raw
		}},
		{"null?", "True only for the empty list.", value.IsNull},
	}
	for _, p := range preds {
		root.Define(p.name, value.NewUnit(token.Position{}, value.Fn{
			Description: p.desc,
			Call:        predicateFn(p.name, p.test),
		}))
	}
}
