// Package builtins populates the root environment with every built-in
// callable spec §4.4 describes: arithmetic, comparisons, the quote/unquote
// pair, list/string/map operations, binding forms, lambda/macro/syntax
// constructors, control flow, type predicates, and the `help` listing.
package builtins

import (
	"fmt"

	"github.com/cwbudde/yl/internal/token"
	"github.com/cwbudde/yl/internal/value"
)

// checkArity reports an error unless len(args) lies between min and max.
// max < 0 means "no upper bound".
func checkArity(call *value.Unit, name string, args []*value.Unit, min, max int) *value.EvalError {
	n := len(args)
	if n < min || (max >= 0 && n > max) {
		return value.Errf(call.Pos, "%s: expected %s argument(s), got %d.", name, arityDesc(min, max), n)
	}
	return nil
}

func arityDesc(min, max int) string {
	switch {
	case max < 0:
		return fmt.Sprintf("at least %d", min)
	case min == max:
		return fmt.Sprintf("exactly %d", min)
	default:
		return fmt.Sprintf("between %d and %d", min, max)
	}
}

func asNumber(u *value.Unit) (value.Number, *value.EvalError) {
	n, ok := u.Expr.(value.Number)
	if !ok {
		return 0, value.Errf(u.Pos, "Expected a numeric value.")
	}
	return n, nil
}

// asQuoted requires u to be a Q expression (spec's Q_OR_ERROR). The empty
// list is accepted regardless of its Quoted bit: EmptyList() (the canonical
// "no value" result, printed unquoted per scenario 5) and a literal `{}` are
// the same zero-element data to every list-consuming builtin — reduction is
// a no-op for both (see internal/eval's evalList), so only String() tells
// them apart.
func asQuoted(u *value.Unit) (value.List, *value.EvalError) {
	lst, ok := u.Expr.(value.List)
	if !ok || (!lst.Quoted && len(lst.Children) > 0) {
		return value.List{}, value.Errf(u.Pos, "Expected a Q expression.")
	}
	return lst, nil
}

// asRaw requires u to be a raw string literal (spec's RAW_OR_ERROR).
func asRaw(u *value.Unit) (value.Str, *value.EvalError) {
	s, ok := u.Expr.(value.Str)
	if !ok || !s.Raw {
		return value.Str{}, value.Errf(u.Pos, "Expected a raw string.")
	}
	return s, nil
}

// asSymbol requires u to be an unresolved identifier.
func asSymbol(u *value.Unit) (value.Str, *value.EvalError) {
	s, ok := u.Expr.(value.Str)
	if !ok || s.Raw {
		return value.Str{}, value.Errf(u.Pos, "Expected a symbol.")
	}
	return s, nil
}

// seq is either a Q-expression's children or a raw string's runes, unified
// the way spec §4.4.4 treats "seq" for head/tail/last/init/join/len/at — the
// Go analogue of original_source/src/yl/builtins.hpp's SINGLE_LIST_BUILTIN
// macro, expressed as a plain function since Go has no macro facility.
type seq struct {
	quoted   bool
	children []*value.Unit
	runes    []rune
}

func (s seq) length() int {
	if s.quoted {
		return len(s.children)
	}
	return len(s.runes)
}

func asSeq(u *value.Unit) (seq, *value.EvalError) {
	switch e := u.Expr.(type) {
	case value.List:
		return seq{quoted: true, children: e.Children}, nil
	case value.Str:
		if e.Raw {
			return seq{quoted: false, runes: []rune(e.Text)}, nil
		}
	}
	return seq{}, value.Errf(u.Pos, "Expected a Q expression or a raw string.")
}

func (s seq) toUnit(pos token.Position, children []*value.Unit, runes []rune) *value.Unit {
	if s.quoted {
		return value.NewUnit(pos, quotedList(children))
	}
	return value.NewUnit(pos, value.Str{Text: string(runes), Raw: true})
}

// quotedList builds a Q expression from children, collapsing to the
// canonical unquoted empty list (spec §6's printed grammar, scenario 5) when
// there are none — an empty result is "no value", not an empty data literal.
func quotedList(children []*value.Unit) value.List {
	if len(children) == 0 {
		return value.EmptyList()
	}
	return value.List{Quoted: true, Children: children}
}
