// Package diag renders a ParseError/EvalError as a source-line-plus-caret
// diagnostic, shared by internal/repl and the run/parse CLI commands so
// both entry points never drift in format (spec §7).
package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/cwbudde/yl/internal/token"
)

// History supplies the source text of a prior entry by index, so a
// diagnostic can reprint the line an error occurred on even when that line
// is no longer the one currently being entered.
type History interface {
	// Entry returns the flattened source text of the line at index i and
	// reports whether that index exists.
	Entry(i int) (string, bool)
}

// Error is the minimal shape diag needs from ParseError/EvalError.
type Error interface {
	error
	Position() token.Position
}

// Render formats err against history into a multi-line diagnostic: an
// "N entries ago:" prefix (omitted for the current entry), the offending
// source line, a caret under the error column, and the message. Colored
// with fatih/color unless colorEnabled is false.
func Render(err Error, history History, currentEntry int, colorEnabled bool) string {
	pos := err.Position()
	var sb strings.Builder

	line, found := history.Entry(pos.Line)
	if found {
		if ago := currentEntry - pos.Line; ago > 0 {
			fmt.Fprintf(&sb, "%d entries ago:\n", ago)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(caret(line, pos.Column, colorEnabled))
		sb.WriteString("\n")
	}

	msg := err.Error()
	if colorEnabled {
		msg = color.New(color.FgRed, color.Bold).Sprint(msg)
	}
	sb.WriteString(msg)
	return sb.String()
}

// caret builds the "^" padding line underneath column (1-indexed, counted
// in runes to match token.Position's own rune-offset convention).
func caret(line string, column int, colorEnabled bool) string {
	runes := []rune(line)
	pad := column - 1
	if pad < 0 {
		pad = 0
	}
	if pad > len(runes) {
		pad = len(runes)
	}
	var sb strings.Builder
	for i := 0; i < pad; i++ {
		if runes[i] == '\t' {
			sb.WriteRune('\t')
		} else {
			sb.WriteRune(' ')
		}
	}
	mark := "^"
	if colorEnabled {
		mark = color.New(color.FgYellow, color.Bold).Sprint(mark)
	}
	sb.WriteString(mark)
	return sb.String()
}
