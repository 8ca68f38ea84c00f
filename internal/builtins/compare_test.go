package builtins

import "testing"

func TestEqualityOps(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(== 1 1)", "1"},
		{"(== 1 2)", "0"},
		{`(== "a" "a")`, "1"},
		{"(!= 1 1)", "0"},
		{"(!= 1 2)", "1"},
		{"(== {1 2} {1 2})", "1"},
		{"(== {1 2} {1 3})", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) { want(t, tt.src, tt.want) })
	}
}

func TestOrderingOpsNumeric(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(< 1 2)", "1"},
		{"(< 2 1)", "0"},
		{"(> 2 1)", "1"},
		{"(<= 1 1)", "1"},
		{"(>= 1 2)", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) { want(t, tt.src, tt.want) })
	}
}

func TestOrderingOpsLexicographic(t *testing.T) {
	want(t, `(< "a" "b")`, "1")
	want(t, `(> "a" "b")`, "0")
}

func TestOrderingRejectsMixedTypes(t *testing.T) {
	runErr(t, `(< 1 "a")`)
}

func TestOrderingRejectsSymbols(t *testing.T) {
	runErr(t, "(< (q a) (q b))")
}
