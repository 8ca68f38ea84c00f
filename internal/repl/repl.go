// Package repl implements the interactive line driver summarized in spec
// §4.5 / §6: read a (possibly multi-line) logical entry, strip `;`
// comments, parse, evaluate, print the result or a formatted diagnostic.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"

	"github.com/cwbudde/yl/internal/builtins"
	"github.com/cwbudde/yl/internal/diag"
	"github.com/cwbudde/yl/internal/eval"
	"github.com/cwbudde/yl/internal/jsonview"
	"github.com/cwbudde/yl/internal/lexer"
	"github.com/cwbudde/yl/internal/parser"
	"github.com/cwbudde/yl/internal/value"
)

// REPL drives the interactive loop. Prior entries are kept (flattened,
// continuation-joined text) so a diagnostic raised against an older entry
// can be reprinted verbatim, and the position model's Line field (see
// internal/lexer's package doc) is exactly an index into this slice.
type REPL struct {
	rl       *readline.Instance
	env      *value.Env
	entries  []string
	lastUnit *value.Unit
	lastDump []byte
	color    bool
	out      io.Writer
}

// New constructs a REPL, loading .predef.yl silently if present (spec §6).
// colorEnabled is forced off automatically when stdout isn't a terminal.
func New(colorEnabled bool) (*REPL, error) {
	rl, err := readline.New("yl> ")
	if err != nil {
		return nil, err
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		colorEnabled = false
	}
	r := &REPL{rl: rl, env: builtins.Global(), color: colorEnabled, out: os.Stdout}
	r.loadPredef()
	return r, nil
}

// loadPredef evaluates .predef.yl into the root environment without
// printing prompts, results, or diagnostics — spec §6 calls for silent
// auto-load; a malformed predef file is reported to stderr but does not
// stop the REPL from starting, since a broken predef shouldn't brick the
// interactive session.
func (r *REPL) loadPredef() {
	data, err := os.ReadFile(".predef.yl")
	if err != nil {
		return
	}
	units, parseErr := parser.ParseProgram(string(data), 0)
	if parseErr != nil {
		fmt.Fprintf(os.Stderr, "yl: .predef.yl: %v\n", parseErr)
		return
	}
	for _, u := range units {
		if _, evalErr := eval.Eval(u, r.env); evalErr != nil {
			fmt.Fprintf(os.Stderr, "yl: .predef.yl: %v\n", evalErr)
			return
		}
	}
}

type historyAdapter struct{ entries []string }

func (h historyAdapter) Entry(i int) (string, bool) {
	if i < 0 || i >= len(h.entries) {
		return "", false
	}
	return h.entries[i], true
}

// Run executes the read-eval-print loop until EOF or interrupt.
func (r *REPL) Run() error {
	defer r.rl.Close()

	var buf strings.Builder
	continuing := false

	for {
		if continuing {
			r.rl.SetPrompt("... ")
		} else {
			r.rl.SetPrompt("yl> ")
		}

		line, err := r.rl.Readline()
		if err == readline.ErrInterrupt {
			if continuing {
				buf.Reset()
				continuing = false
				continue
			}
			return nil
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		stripped := stripComment(line)

		if !continuing {
			if cmd, ok := inspectCommand(stripped); ok {
				r.handleInspect(cmd)
				continue
			}
			if strings.TrimSpace(stripped) == "" {
				continue
			}
		}

		if buf.Len() > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(stripped)

		if lexer.ParenBalance(buf.String()) > 0 {
			continuing = true
			continue
		}
		continuing = false

		entry := buf.String()
		buf.Reset()
		if strings.TrimSpace(entry) == "" {
			continue
		}

		r.evalEntry(entry)
	}
}

// stripComment removes a `;`-to-EOL comment, leaving semicolons inside raw
// string literals untouched (spec §4.5). Mirrors lexer.ParenBalance's own
// string-aware scan.
func stripComment(line string) string {
	inString := false
	escaped := false
	for i, r := range line {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case ';':
			return line[:i]
		}
	}
	return line
}

func inspectCommand(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, ":inspect") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(trimmed, ":inspect")), true
}

// handleInspect implements the `:inspect <path>` meta-command (SPEC_FULL.md
// §4.5): queries the last successfully evaluated result's JSON dump by
// JSON path, for ad-hoc debugging.
func (r *REPL) handleInspect(path string) {
	if r.lastDump == nil {
		fmt.Fprintln(r.out, "No result to inspect yet.")
		return
	}
	if path == "" {
		fmt.Fprintln(r.out, string(r.lastDump))
		return
	}
	match, found := jsonview.Query(r.lastDump, path)
	if !found {
		fmt.Fprintf(r.out, "No match for path %q.\n", path)
		return
	}
	fmt.Fprintln(r.out, match)
}

func (r *REPL) evalEntry(entry string) {
	historyLine := len(r.entries)
	r.entries = append(r.entries, entry)
	hist := historyAdapter{entries: r.entries}

	unit, parseErr := parser.Parse(entry, historyLine)
	if parseErr != nil {
		fmt.Fprintln(r.out, diag.Render(parseErr, hist, historyLine, r.color))
		return
	}

	result, evalErr := eval.Eval(unit, r.env)
	if evalErr != nil {
		fmt.Fprintln(r.out, diag.Render(evalErr, hist, historyLine, r.color))
		return
	}

	r.lastUnit = result
	if dump, err := jsonview.Marshal(result); err == nil {
		r.lastDump = dump
	}
	fmt.Fprintln(r.out, result.Expr.String())
}
