// Package token defines the source-position type shared by the lexer,
// parser, and evaluator.
package token

import "fmt"

// Position identifies where a token or Unit originated in source text.
// Line is the 0-based history entry index (see internal/lexer's package
// doc); Column is 1-indexed.
type Position struct {
	Line   int
	Column int
}

// String renders the position as "line:column", used in diagnostics that
// don't go through the full caret-and-source-line renderer.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
