package value

import (
	"testing"

	"github.com/cwbudde/yl/internal/token"
)

func unit(e Expr) *Unit {
	return NewUnit(token.Position{Line: 0, Column: 1}, e)
}

func TestNumberString(t *testing.T) {
	if got, want := Number(42).String(), "42"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := Number(-3).String(), "-3"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNumberTruthy(t *testing.T) {
	if Number(0).Truthy() {
		t.Error("0 should not be truthy")
	}
	if !Number(1).Truthy() {
		t.Error("1 should be truthy")
	}
	if !Number(-1).Truthy() {
		t.Error("-1 should be truthy")
	}
}

func TestStrString(t *testing.T) {
	if got, want := (Str{Text: "hi", Raw: true}).String(), `"hi"`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := (Str{Text: "foo", Raw: false}).String(), "foo"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestListString(t *testing.T) {
	lst := List{Quoted: false, Children: []*Unit{unit(Number(1)), unit(Number(2))}}
	if got, want := lst.String(), "(1 2)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	qlst := List{Quoted: true, Children: []*Unit{unit(Number(1))}}
	if got, want := qlst.String(), "{1}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestEmptyListIsNull(t *testing.T) {
	if !IsNull(EmptyList()) {
		t.Error("EmptyList() should be null")
	}
	if IsNull(List{Quoted: true, Children: []*Unit{unit(Number(1))}}) {
		t.Error("a non-empty list should not be null")
	}
	if IsNull(Number(0)) {
		t.Error("a non-list should never be null")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Expr
		want bool
	}{
		{"equal numbers", Number(3), Number(3), true},
		{"different numbers", Number(3), Number(4), false},
		{"equal raw strings", Str{Text: "a", Raw: true}, Str{Text: "a", Raw: true}, true},
		{"raw vs symbol differ", Str{Text: "a", Raw: true}, Str{Text: "a", Raw: false}, false},
		{"different types", Number(1), Str{Text: "1", Raw: false}, false},
		{"functions never equal", Fn{}, Fn{}, false},
		{
			"equal lists", List{Children: []*Unit{unit(Number(1))}},
			List{Children: []*Unit{unit(Number(1))}}, true,
		},
		{
			"lists differ by length", List{Children: []*Unit{unit(Number(1))}},
			List{Children: []*Unit{unit(Number(1)), unit(Number(2))}}, false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapInsertGetAndReplace(t *testing.T) {
	m := Map{}
	k1 := unit(Str{Text: "a", Raw: true})
	v1 := unit(Number(1))
	m = m.Insert(k1, v1)

	got, ok := m.Get(unit(Str{Text: "a", Raw: true}))
	if !ok || got.Expr.(Number) != 1 {
		t.Fatalf("Get() = %v, %v, want 1, true", got, ok)
	}

	v2 := unit(Number(2))
	m2 := m.Insert(unit(Str{Text: "a", Raw: true}), v2)
	if m2.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after replacing an existing key", m2.Len())
	}
	got2, _ := m2.Get(unit(Str{Text: "a", Raw: true}))
	if got2.Expr.(Number) != 2 {
		t.Errorf("Get() after replace = %v, want 2", got2.Expr)
	}

	// The receiver must be untouched by Insert.
	original, _ := m.Get(unit(Str{Text: "a", Raw: true}))
	if original.Expr.(Number) != 1 {
		t.Errorf("Insert mutated the receiver: Get() = %v, want 1", original.Expr)
	}
}

func TestMapEntriesPreserveInsertionOrder(t *testing.T) {
	m := Map{}
	m = m.Insert(unit(Str{Text: "b", Raw: true}), unit(Number(2)))
	m = m.Insert(unit(Str{Text: "a", Raw: true}), unit(Number(1)))

	entries := m.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries() len = %d, want 2", len(entries))
	}
	if entries[0].Key.Expr.(Str).Text != "b" || entries[1].Key.Expr.(Str).Text != "a" {
		t.Errorf("Entries() order = %v, want insertion order b, a", entries)
	}
}

func TestEnvLookupWalksChain(t *testing.T) {
	root := NewFrame()
	root.Define("x", unit(Number(1)))
	global := Push(root, nil)

	child := NewChild(global)
	child.Define("y", unit(Number(2)))

	if u, ok := child.Lookup("y"); !ok || u.Expr.(Number) != 2 {
		t.Errorf("Lookup(y) = %v, %v, want 2, true", u, ok)
	}
	if u, ok := child.Lookup("x"); !ok || u.Expr.(Number) != 1 {
		t.Errorf("Lookup(x) = %v, %v, want 1, true", u, ok)
	}
	if _, ok := child.Lookup("z"); ok {
		t.Error("Lookup(z) should fail: never defined anywhere in the chain")
	}
}

func TestEnvGlobalWalksToRoot(t *testing.T) {
	global := Push(NewFrame(), nil)
	mid := NewChild(global)
	leaf := NewChild(mid)

	if leaf.Global() != global {
		t.Error("Global() should walk all the way to the root Env node")
	}
}

func TestFrameNamesInsertionOrder(t *testing.T) {
	f := NewFrame()
	f.Define("b", unit(Number(1)))
	f.Define("a", unit(Number(2)))
	f.Define("b", unit(Number(3))) // redefine, shouldn't duplicate the name

	names := f.Names()
	want := []string{"b", "a"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
