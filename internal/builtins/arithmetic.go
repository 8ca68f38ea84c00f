package builtins

import (
	"github.com/cwbudde/yl/internal/eval"
	"github.com/cwbudde/yl/internal/token"
	"github.com/cwbudde/yl/internal/value"
)

// arithmeticFn folds combine over one-or-more Number arguments, left to
// right, starting from the first (spec §4.4.1). Grounded on
// original_source/src/yl/builtins.hpp's ARITHMETIC_OPERATOR macro, expressed
// as a higher-order function rather than a preprocessor macro.
func arithmeticFn(name string, combine func(acc, next value.Number, nextPos token.Position) (value.Number, *value.EvalError)) value.CallFunc {
	return func(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
		args := eval.Args(call)
		if err := checkArity(call, name, args, 1, -1); err != nil {
			return nil, err
		}
		acc, err := asNumber(args[0])
		if err != nil {
			return nil, err
		}
		for _, a := range args[1:] {
			n, err := asNumber(a)
			if err != nil {
				return nil, err
			}
			acc, err = combine(acc, n, a.Pos)
			if err != nil {
				return nil, err
			}
		}
		return value.NewUnit(call.Pos, acc), nil
	}
}

func divOrError(op string) func(acc, next value.Number, nextPos token.Position) (value.Number, *value.EvalError) {
	return func(acc, next value.Number, nextPos token.Position) (value.Number, *value.EvalError) {
		if next == 0 {
			return 0, value.Errf(nextPos, "%s by zero.", op)
		}
		if op == "Division" {
			return acc / next, nil
		}
		return acc % next, nil
	}
}

func registerArithmetic(root *value.Frame) {
	ops := []struct {
		name, desc string
		combine    func(acc, next value.Number, nextPos token.Position) (value.Number, *value.EvalError)
	}{
		{"+", "Adds numbers.", func(a, b value.Number, _ token.Position) (value.Number, *value.EvalError) { return a + b, nil }},
		{"-", "Subtracts numbers.", func(a, b value.Number, _ token.Position) (value.Number, *value.EvalError) { return a - b, nil }},
		{"*", "Multiplies numbers.", func(a, b value.Number, _ token.Position) (value.Number, *value.EvalError) { return a * b, nil }},
		{"/", "Divides numbers.", divOrError("Division")},
		{"%", "Modulo.", divOrError("Modulo")},
		{"&", "Binary and.", func(a, b value.Number, _ token.Position) (value.Number, *value.EvalError) { return a & b, nil }},
		{"|", "Binary or.", func(a, b value.Number, _ token.Position) (value.Number, *value.EvalError) { return a | b, nil }},
		{"^", "Binary xor.", func(a, b value.Number, _ token.Position) (value.Number, *value.EvalError) { return a ^ b, nil }},
		{"<<", "Shift left.", func(a, b value.Number, _ token.Position) (value.Number, *value.EvalError) { return a << uint(b), nil }},
		{">>", "Shift right.", func(a, b value.Number, _ token.Position) (value.Number, *value.EvalError) { return a >> uint(b), nil }},
	}
	for _, o := range ops {
		root.Define(o.name, value.NewUnit(token.Position{}, value.Fn{
			Description: o.desc,
			Call:        arithmeticFn(o.name, o.combine),
		}))
	}
}
