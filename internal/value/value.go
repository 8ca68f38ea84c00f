// Package value implements the universal value model described in spec §3:
// the Expr tagged union (represented here as a closed Go interface with five
// implementing types, List carrying a Quoted flag), the Unit position wrapper, structural equality, and
// the printed-value grammar used for REPL/echo/str output.
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/yl/internal/token"
)

// Expr is the closed sum type every value belongs to. The unexported marker
// method keeps the set of implementations fixed to the five types below, so
// a type switch over Expr is exhaustive in the same sense the original
// tagged union's discriminant was.
type Expr interface {
	exprNode()
	fmt.Stringer
}

// Unit pairs an Expr with the source position it was parsed from (or, for
// synthesized results, the position of the call site that produced it).
// Units are passed and stored by pointer — a *Unit is the cheap,
// shared-by-reference handle spec §3/§9 calls for; Go's garbage collector
// retires the reference-counting concern the original design notes raise.
type Unit struct {
	Pos  token.Position
	Expr Expr
}

// NewUnit is a small convenience constructor used throughout builtins.
func NewUnit(pos token.Position, expr Expr) *Unit {
	return &Unit{Pos: pos, Expr: expr}
}

// EvalError is raised anywhere during evaluation: argument checking, lookup
// failure, type mismatch, division by zero, file errors, or a user `err`
// call. It is the second (and last) of the two error kinds spec §7 allows.
type EvalError struct {
	Message string
	Pos     token.Position
}

func (e *EvalError) Error() string {
	return e.Message
}

// Position reports where the error occurred, for internal/diag's renderer.
func (e *EvalError) Position() token.Position {
	return e.Pos
}

// Errf builds an EvalError positioned at pos with a formatted message.
func Errf(pos token.Position, format string, args ...any) *EvalError {
	return &EvalError{Message: fmt.Sprintf(format, args...), Pos: pos}
}

// Number is the sole numeric type (spec's open question resolved in favor
// of the richest original variant): a signed 64-bit integer. Booleans are
// encoded as zero/nonzero Numbers.
type Number int64

func (Number) exprNode() {}

func (n Number) String() string {
	return strconv.FormatInt(int64(n), 10)
}

// Truthy reports whether n should be treated as a true condition by `if`
// and `__while` (spec §4.4.7): nonzero is true.
func (n Number) Truthy() bool {
	return n != 0
}

// Str covers both symbols and raw string literals (spec §3): Raw=true is a
// `"..."` literal, Raw=false is an unresolved identifier. Resolution (symbol
// lookup) only ever applies to the latter.
type Str struct {
	Text string
	Raw  bool
}

func (Str) exprNode() {}

func (s Str) String() string {
	if s.Raw {
		return `"` + s.Text + `"`
	}
	return s.Text
}

// List represents both of spec §3's ordered-sequence variants, List and
// Quoted — "Equivalent to a one-bit q on List" per spec §3's own note, so
// the two are implemented as a single Go type distinguished by Quoted. An
// evaluated application (List) and a suppressed-reduction data literal
// (Quoted) share every other behavior: indexing, length, join, sort, and so
// on all operate identically regardless of the flag.
type List struct {
	Quoted   bool
	Children []*Unit
}

func (List) exprNode() {}

func (l List) String() string {
	open, close := "(", ")"
	if l.Quoted {
		open, close = "{", "}"
	}
	parts := make([]string, len(l.Children))
	for i, c := range l.Children {
		parts[i] = c.Expr.String()
	}
	return open + strings.Join(parts, " ") + close
}

// EmptyList constructs the canonical empty data list (used as the "no
// value" result of if/__while/echo and the empty-seq result of head/tail/
// etc. on an empty sequence).
func EmptyList() List {
	return List{Quoted: false}
}

// IsNull reports whether e is the empty list, per spec §4.4.8's null?
// (resolved, per spec §9's open question, to "true only for the empty
// list" rather than the original's always-false behavior).
func IsNull(e Expr) bool {
	l, ok := e.(List)
	return ok && len(l.Children) == 0
}

// CallFunc is the signature every callable (builtin or user-defined) is
// invoked through. call is a Unit whose Expr is a List where element 0 is
// the callable itself and elements 1..N are the arguments (spec §4.3's
// argument convention); arity checks use len(children)-1.
type CallFunc func(call *Unit, env *Env) (*Unit, *EvalError)

// Fn is a callable value: a builtin or a user-defined lambda/macro/syntax
// function. macro=true means arguments reach Call unevaluated (subject to
// the `,` splice rule); syntax=true additionally means the call evaluates
// its body with the caller's environment as parent rather than the
// definition-site closure.
type Fn struct {
	Description string
	Call        CallFunc
	Macro       bool
	Syntax      bool
}

func (Fn) exprNode() {}

func (f Fn) String() string {
	return f.Description
}

// Map is a persistent (insertion-returns-new-map) mapping from Unit to
// Unit, compared and looked up by structural key equality (spec §3/§4.4.2).
// A small ordered slice of entries is sufficient: yl programs build maps a
// handful of keys at a time, and linear scan keeps Equal as the single
// source of truth for key identity instead of needing a separate hashable
// projection of Expr.
type Map struct {
	entries []mapEntry
}

type mapEntry struct {
	Key   *Unit
	Value *Unit
}

// Insert returns a new Map with key bound to val, replacing any existing
// binding for an structurally-equal key. The receiver is left untouched.
func (m Map) Insert(key, val *Unit) Map {
	next := make([]mapEntry, 0, len(m.entries)+1)
	replaced := false
	for _, e := range m.entries {
		if Equal(e.Key.Expr, key.Expr) {
			next = append(next, mapEntry{Key: key, Value: val})
			replaced = true
			continue
		}
		next = append(next, e)
	}
	if !replaced {
		next = append(next, mapEntry{Key: key, Value: val})
	}
	return Map{entries: next}
}

// Get looks up key by structural equality.
func (m Map) Get(key *Unit) (*Unit, bool) {
	for _, e := range m.entries {
		if Equal(e.Key.Expr, key.Expr) {
			return e.Value, true
		}
	}
	return nil, false
}

// Len reports the number of bindings.
func (m Map) Len() int {
	return len(m.entries)
}

// Entries exposes the bindings in insertion order, for iteration (sorted,
// mk-map round-trips, printing) and for tests.
func (m Map) Entries() []struct{ Key, Value *Unit } {
	out := make([]struct{ Key, Value *Unit }, len(m.entries))
	for i, e := range m.entries {
		out[i] = struct{ Key, Value *Unit }{e.Key, e.Value}
	}
	return out
}

func (Map) exprNode() {}

func (m Map) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for _, e := range m.entries {
		sb.WriteString(e.Key.Expr.String())
		sb.WriteString(" -> ")
		sb.WriteString(e.Value.Expr.String())
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// Equal implements spec §4.4.2's structural equality: numbers, strings,
// lists and maps compare by value/element/entry; two functions are never
// equal; values of differing underlying type are never equal.
func Equal(a, b Expr) bool {
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case Str:
		bv, ok := b.(Str)
		return ok && av.Raw == bv.Raw && av.Text == bv.Text
	case List:
		bv, ok := b.(List)
		if !ok || len(av.Children) != len(bv.Children) {
			return false
		}
		for i := range av.Children {
			if !Equal(av.Children[i].Expr, bv.Children[i].Expr) {
				return false
			}
		}
		return true
	case Map:
		bv, ok := b.(Map)
		if !ok || len(av.entries) != len(bv.entries) {
			return false
		}
		for _, e := range av.entries {
			other, found := bv.Get(e.Key)
			if !found || !Equal(e.Value.Expr, other.Expr) {
				return false
			}
		}
		return true
	case Fn:
		return false
	default:
		return false
	}
}
