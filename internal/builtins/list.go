package builtins

import (
	"strings"

	"github.com/cwbudde/yl/internal/eval"
	"github.com/cwbudde/yl/internal/token"
	"github.com/cwbudde/yl/internal/value"
)

func listFn(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
	args := eval.Args(call)
	children := make([]*value.Unit, len(args))
	copy(children, args)
	return value.NewUnit(call.Pos, quotedList(children)), nil
}

// singleSeqFn implements the head/tail/last/init family (spec §4.4.4):
// exactly one Q-expression-or-raw-string argument, dispatched on which seq
// flavor it is. Grounded on original_source/src/yl/builtins.hpp's
// SINGLE_LIST_BUILTIN macro.
func singleSeqFn(name string, onList func(s seq) (children []*value.Unit, pos token.Position), onString func(s seq) (runes []rune, pos token.Position)) value.CallFunc {
	return func(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
		args := eval.Args(call)
		if err := checkArity(call, name, args, 1, 1); err != nil {
			return nil, err
		}
		s, err := asSeq(args[0])
		if err != nil {
			return nil, err
		}
		if s.quoted {
			children, pos := onList(s)
			return value.NewUnit(pos, quotedList(children)), nil
		}
		runes, pos := onString(s)
		return value.NewUnit(pos, value.Str{Text: string(runes), Raw: true}), nil
	}
}

func registerSingleSeq(root *value.Frame) {
	root.Define("head", value.NewUnit(token.Position{}, value.Fn{
		Description: "Returns the first element of a list or a string.",
		Call: singleSeqFn("head",
			func(s seq) ([]*value.Unit, token.Position) {
				if len(s.children) == 0 {
					return nil, token.Position{}
				}
				return s.children[:1], s.children[0].Pos
			},
			func(s seq) ([]rune, token.Position) {
				if len(s.runes) == 0 {
					return nil, token.Position{}
				}
				return s.runes[:1], token.Position{}
			}),
	}))
	root.Define("tail", value.NewUnit(token.Position{}, value.Fn{
		Description: "Returns the list/string without its first element.",
		Call: singleSeqFn("tail",
			func(s seq) ([]*value.Unit, token.Position) {
				if len(s.children) == 0 {
					return nil, token.Position{}
				}
				return s.children[1:], token.Position{}
			},
			func(s seq) ([]rune, token.Position) {
				if len(s.runes) == 0 {
					return nil, token.Position{}
				}
				return s.runes[1:], token.Position{}
			}),
	}))
	root.Define("last", value.NewUnit(token.Position{}, value.Fn{
		Description: "Returns the last element of a list/string.",
		Call: singleSeqFn("last",
			func(s seq) ([]*value.Unit, token.Position) {
				if len(s.children) == 0 {
					return nil, token.Position{}
				}
				last := s.children[len(s.children)-1]
				return []*value.Unit{last}, last.Pos
			},
			func(s seq) ([]rune, token.Position) {
				if len(s.runes) == 0 {
					return nil, token.Position{}
				}
				return s.runes[len(s.runes)-1:], token.Position{}
			}),
	}))
	root.Define("init", value.NewUnit(token.Position{}, value.Fn{
		Description: "Returns a list or a string without its last element.",
		Call: singleSeqFn("init",
			func(s seq) ([]*value.Unit, token.Position) {
				if len(s.children) == 0 {
					return nil, token.Position{}
				}
				return s.children[:len(s.children)-1], token.Position{}
			},
			func(s seq) ([]rune, token.Position) {
				if len(s.runes) == 0 {
					return nil, token.Position{}
				}
				return s.runes[:len(s.runes)-1], token.Position{}
			}),
	}))
}

func joinFn(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
	args := eval.Args(call)
	if err := checkArity(call, "join", args, 1, -1); err != nil {
		return nil, err
	}
	first, err := asSeq(args[0])
	if err != nil {
		return nil, err
	}
	if first.quoted {
		var children []*value.Unit
		for _, a := range args {
			lst, err := asQuoted(a)
			if err != nil {
				return nil, value.Errf(a.Pos, "join: expected a Q expression, like its first argument.")
			}
			children = append(children, lst.Children...)
		}
		return value.NewUnit(call.Pos, quotedList(children)), nil
	}
	var sb strings.Builder
	for _, a := range args {
		s, err := asRaw(a)
		if err != nil {
			return nil, value.Errf(a.Pos, "join: expected a raw string, like its first argument.")
		}
		sb.WriteString(s.Text)
	}
	return value.NewUnit(call.Pos, value.Str{Text: sb.String(), Raw: true}), nil
}

// consFn implements spec §4.4.4's `cons`: prepend onto a list, or, when the
// second argument is a Map and the first is a 2-element list, insert it as
// a key->value binding, returning a new Map.
func consFn(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
	args := eval.Args(call)
	if err := checkArity(call, "cons", args, 2, 2); err != nil {
		return nil, err
	}
	if m, ok := args[1].Expr.(value.Map); ok {
		pair, perr := asQuoted(args[0])
		if perr != nil || len(pair.Children) != 2 {
			return nil, value.Errf(args[0].Pos, "cons: expected a 2-element list key/value pair to insert into a map.")
		}
		return value.NewUnit(call.Pos, m.Insert(pair.Children[0], pair.Children[1])), nil
	}
	lst, err := asQuoted(args[1])
	if err != nil {
		return nil, err
	}
	children := make([]*value.Unit, 0, len(lst.Children)+1)
	children = append(children, args[0])
	children = append(children, lst.Children...)
	return value.NewUnit(call.Pos, value.List{Quoted: true, Children: children}), nil
}

// atFn implements spec §4.4.4's `at`: index into a list/string by
// non-negative integer, or a Map by key (missing key returns the empty
// list rather than erroring).
func atFn(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
	args := eval.Args(call)
	if err := checkArity(call, "at", args, 2, 2); err != nil {
		return nil, err
	}
	if m, ok := args[0].Expr.(value.Map); ok {
		if v, found := m.Get(args[1]); found {
			return value.NewUnit(call.Pos, v.Expr), nil
		}
		return value.NewUnit(call.Pos, value.EmptyList()), nil
	}
	idx, err := asNumber(args[1])
	if err != nil {
		return nil, err
	}
	s, err := asSeq(args[0])
	if err != nil {
		return nil, err
	}
	if idx < 0 || int(idx) >= s.length() {
		return nil, value.Errf(args[1].Pos, "at: index %d out of range.", int64(idx))
	}
	if s.quoted {
		return s.children[idx], nil
	}
	return value.NewUnit(call.Pos, value.Str{Text: string(s.runes[idx]), Raw: true}), nil
}

func lenFn(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
	args := eval.Args(call)
	if err := checkArity(call, "len", args, 1, 1); err != nil {
		return nil, err
	}
	if m, ok := args[0].Expr.(value.Map); ok {
		return value.NewUnit(call.Pos, value.Number(m.Len())), nil
	}
	s, err := asSeq(args[0])
	if err != nil {
		return nil, err
	}
	return value.NewUnit(call.Pos, value.Number(s.length())), nil
}

// splitFn implements spec §4.4.4's `split`: empty runs between adjacent
// delimiters are skipped and a trailing delimiter does not produce an
// empty tail element — i.e. strings.Split followed by dropping blanks.
func splitFn(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
	args := eval.Args(call)
	if err := checkArity(call, "split", args, 2, 2); err != nil {
		return nil, err
	}
	s, err := asRaw(args[0])
	if err != nil {
		return nil, err
	}
	d, err := asRaw(args[1])
	if err != nil {
		return nil, err
	}
	var parts []string
	if d.Text == "" {
		parts = []string{s.Text}
	} else {
		parts = strings.Split(s.Text, d.Text)
	}
	children := make([]*value.Unit, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		children = append(children, value.NewUnit(call.Pos, value.Str{Text: p, Raw: true}))
	}
	return value.NewUnit(call.Pos, quotedList(children)), nil
}

func defaultLess(a, b *value.Unit) (bool, *value.EvalError) {
	an, aIsNum := a.Expr.(value.Number)
	bn, bIsNum := b.Expr.(value.Number)
	if aIsNum && bIsNum {
		return an < bn, nil
	}
	as, aIsStr := a.Expr.(value.Str)
	bs, bIsStr := b.Expr.(value.Str)
	if aIsStr && bIsStr && as.Raw && bs.Raw {
		return as.Text < bs.Text, nil
	}
	return false, value.Errf(a.Pos, "sorted: elements must be comparable numbers or raw strings.")
}

// stableInsertionSort sorts children in place by less, preserving relative
// order of equal elements, aborting immediately if less reports an error.
// Grounded on spec §9's note that sort.Slice cannot propagate a comparator
// error (it panics at most, and only for inconsistent orderings, not for a
// comparator that legitimately fails) — threading a `(bool, error)` result
// through a plain insertion sort keeps the abort-mid-sort behavior explicit
// instead of relying on a library's failure mode.
func stableInsertionSort(children []*value.Unit, less func(a, b *value.Unit) (bool, *value.EvalError)) *value.EvalError {
	for i := 1; i < len(children); i++ {
		j := i
		for j > 0 {
			lt, err := less(children[j], children[j-1])
			if err != nil {
				return err
			}
			if !lt {
				break
			}
			children[j], children[j-1] = children[j-1], children[j]
			j--
		}
	}
	return nil
}

// sortedFn implements spec §4.4.4's `sorted`: a stable sort over a copy of
// the list's children, using either `<` semantics or a user-supplied
// comparator Fn returning true-ish (nonzero) for "strictly less".
func sortedFn(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
	args := eval.Args(call)
	if err := checkArity(call, "sorted", args, 1, 2); err != nil {
		return nil, err
	}
	lst, err := asQuoted(args[0])
	if err != nil {
		return nil, err
	}
	var cmp func(a, b *value.Unit) (bool, *value.EvalError)
	if len(args) == 2 {
		fn, ok := args[1].Expr.(value.Fn)
		if !ok {
			return nil, value.Errf(args[1].Pos, "sorted: comparator must be a function.")
		}
		cmp = func(a, b *value.Unit) (bool, *value.EvalError) {
			callUnit := value.NewUnit(call.Pos, value.List{Quoted: false, Children: []*value.Unit{args[1], a, b}})
			result, err := fn.Call(callUnit, env)
			if err != nil {
				return false, err
			}
			n, err := asNumber(result)
			if err != nil {
				return false, err
			}
			return n.Truthy(), nil
		}
	} else {
		cmp = defaultLess
	}

	children := make([]*value.Unit, len(lst.Children))
	copy(children, lst.Children)

	if err := stableInsertionSort(children, cmp); err != nil {
		return nil, err
	}
	return value.NewUnit(call.Pos, quotedList(children)), nil
}

// mkMapFn implements spec §4.4.4's `mk-map`: a flat k1 v1 k2 v2 ... list
// becomes a new Map.
func mkMapFn(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
	args := eval.Args(call)
	if err := checkArity(call, "mk-map", args, 1, 1); err != nil {
		return nil, err
	}
	lst, err := asQuoted(args[0])
	if err != nil {
		return nil, err
	}
	if len(lst.Children)%2 != 0 {
		return nil, value.Errf(args[0].Pos, "mk-map: expected an even number of key/value elements.")
	}
	m := value.Map{}
	for i := 0; i < len(lst.Children); i += 2 {
		m = m.Insert(lst.Children[i], lst.Children[i+1])
	}
	return value.NewUnit(call.Pos, m), nil
}

func registerListOps(root *value.Frame) {
	registerSingleSeq(root)
	root.Define("list", value.NewUnit(token.Position{}, value.Fn{Description: "Collects arguments into a Q expression.", Call: listFn}))
	root.Define("join", value.NewUnit(token.Position{}, value.Fn{Description: "Joins one or more Q expressions or raw strings.", Call: joinFn}))
	root.Define("cons", value.NewUnit(token.Position{}, value.Fn{Description: "Prepends a value onto a list, or inserts a key/value pair into a map.", Call: consFn}))
	root.Define("at", value.NewUnit(token.Position{}, value.Fn{Description: "Indexes into a list, string, or map.", Call: atFn}))
	root.Define("len", value.NewUnit(token.Position{}, value.Fn{Description: "Calculates the length of a list, string, or map.", Call: lenFn}))
	root.Define("split", value.NewUnit(token.Position{}, value.Fn{Description: "Splits a string by a delimiter string.", Call: splitFn}))
	root.Define("sorted", value.NewUnit(token.Position{}, value.Fn{Description: "Returns a new list with sorted elements. Supports a custom comparator.", Call: sortedFn}))
	root.Define("mk-map", value.NewUnit(token.Position{}, value.Fn{Description: "Builds a map from a flat k1 v1 k2 v2 ... list.", Call: mkMapFn}))
}
