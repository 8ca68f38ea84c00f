package lexer

import "testing"

func TestNextTokenTypes(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		literal string
		typ     Type
	}{
		{"lparen", "(", "(", LPAREN},
		{"rparen", ")", ")", RPAREN},
		{"lbrace", "{", "{", LBRACE},
		{"rbrace", "}", "}", RBRACE},
		{"number", "42", "42", NUMBER},
		{"negative number", "-7", "-7", NUMBER},
		{"symbol", "foo?", "foo?", SYMBOL},
		{"lone minus is a symbol", "-", "-", SYMBOL},
		{"string", `"hi"`, "hi", STRING},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.src, 0)
			tok, err := l.Next()
			if err != nil {
				t.Fatalf("Next() error = %v", err)
			}
			if tok.Type != tt.typ {
				t.Errorf("Type = %v, want %v", tok.Type, tt.typ)
			}
			if tok.Literal != tt.literal {
				t.Errorf("Literal = %q, want %q", tok.Literal, tt.literal)
			}
		})
	}
}

func TestLexStringEscapes(t *testing.T) {
	l := New(`"a\nb\tc\\d\qend"`, 0)
	tok, err := l.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	want := "a\nb\tc\\dqend"
	if tok.Literal != want {
		t.Errorf("Literal = %q, want %q", tok.Literal, want)
	}
}

func TestLexStringUnterminated(t *testing.T) {
	l := New(`"unterminated`, 0)
	if _, err := l.Next(); err == nil {
		t.Fatal("expected a ParseError for an unterminated string literal")
	}
}

func TestLexNumberOverflow(t *testing.T) {
	l := New("99999999999999999999", 0)
	if _, err := l.Next(); err == nil {
		t.Fatal("expected a ParseError for a numeric token that overflows int64")
	}
}

func TestNextSequence(t *testing.T) {
	l := New(`(def x "hi")`, 3)
	var got []Type
	for {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		got = append(got, tok.Type)
		if tok.Type == EOF {
			break
		}
	}
	want := []Type{LPAREN, SYMBOL, SYMBOL, STRING, RPAREN, EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v tokens, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPositionStampsHistoryLine(t *testing.T) {
	l := New("foo", 5)
	tok, err := l.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if tok.Pos.Line != 5 {
		t.Errorf("Pos.Line = %d, want 5", tok.Pos.Line)
	}
	if tok.Pos.Column != 1 {
		t.Errorf("Pos.Column = %d, want 1", tok.Pos.Column)
	}
}

func TestParenBalance(t *testing.T) {
	tests := []struct {
		name string
		line string
		want int
	}{
		{"balanced", "(foo (bar))", 0},
		{"one open", "(foo (bar)", 1},
		{"paren inside string ignored", `(foo "(" )`, 0},
		{"unterminated string stops counting", `(foo "(`, 1},
		{"braces count too", "{a (b)", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParenBalance(tt.line); got != tt.want {
				t.Errorf("ParenBalance(%q) = %d, want %d", tt.line, got, tt.want)
			}
		})
	}
}
