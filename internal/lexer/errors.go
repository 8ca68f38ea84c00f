package lexer

import (
	"fmt"

	"github.com/cwbudde/yl/internal/token"
)

// ParseError is raised by the lexer or the parser before evaluation ever
// starts: unexpected EOF inside a string or list, unbalanced or mismatched
// closers, and malformed numeric tokens all surface as one of these.
type ParseError struct {
	Message string
	Pos     token.Position
}

func (e *ParseError) Error() string {
	return e.Message
}

// Position reports where the error occurred, for internal/diag's renderer.
func (e *ParseError) Position() token.Position {
	return e.Pos
}

func newParseError(pos token.Position, format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...), Pos: pos}
}
