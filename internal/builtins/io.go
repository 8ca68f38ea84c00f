package builtins

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cwbudde/yl/internal/eval"
	"github.com/cwbudde/yl/internal/token"
	"github.com/cwbudde/yl/internal/value"
)

// Stdout is where `echo` writes. Tests substitute a buffer; the REPL and
// `run`/`parse` subcommands leave it at the default os.Stdout.
var Stdout io.Writer = os.Stdout

// readlinesFn implements spec §4.4.4's `readlines`: opens, reads to EOF,
// and closes within the call (spec §5's resource-model note), trimming a
// single trailing empty line. Grounded on
// original_source/src/yl/builtins.hpp's readlines_m.
func readlinesFn(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
	args := eval.Args(call)
	if err := checkArity(call, "readlines", args, 1, 1); err != nil {
		return nil, err
	}
	path, err := asRaw(args[0])
	if err != nil {
		return nil, err
	}
	f, openErr := os.Open(path.Text)
	if openErr != nil {
		return nil, value.Errf(args[0].Pos, "readlines: unable to open %q.", path.Text)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, value.Errf(args[0].Pos, "readlines: error reading %q: %v.", path.Text, scanErr)
	}
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	children := make([]*value.Unit, len(lines))
	for i, l := range lines {
		children[i] = value.NewUnit(args[0].Pos, value.Str{Text: l, Raw: true})
	}
	return value.NewUnit(args[0].Pos, quotedList(children)), nil
}

// echoFn implements spec §4.4.4's `echo`: print the printed form followed
// by a newline, return the empty list.
func echoFn(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
	args := eval.Args(call)
	if err := checkArity(call, "echo", args, 1, 1); err != nil {
		return nil, err
	}
	fmt.Fprintln(Stdout, args[0].Expr.String())
	return value.NewUnit(call.Pos, value.EmptyList()), nil
}

// errFn implements spec §4.4.4's `err`: raise an EvalError whose message is
// the argument's raw-string text, positioned at that argument.
func errFn(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
	args := eval.Args(call)
	if checkErr := checkArity(call, "err", args, 1, 1); checkErr != nil {
		return nil, checkErr
	}
	s, asErr := asRaw(args[0])
	if asErr != nil {
		return nil, asErr
	}
	return nil, value.Errf(args[0].Pos, "%s", s.Text)
}

// timeMsFn implements spec §4.4.4's `time-ms`: milliseconds since epoch.
// Monotonic-per-process is explicitly accepted, so wall-clock time.Now is
// sufficient.
func timeMsFn(call *value.Unit, env *value.Env) (*value.Unit, *value.EvalError) {
	args := eval.Args(call)
	if err := checkArity(call, "time-ms", args, 0, 0); err != nil {
		return nil, err
	}
	return value.NewUnit(call.Pos, value.Number(time.Now().UnixMilli())), nil
}

func registerIO(root *value.Frame) {
	root.Define("readlines", value.NewUnit(token.Position{}, value.Fn{Description: "Reads a file into a quoted list of raw-string lines.", Call: readlinesFn}))
	root.Define("echo", value.NewUnit(token.Position{}, value.Fn{Description: "Prints a value's printed form followed by a newline.", Call: echoFn}))
	root.Define("err", value.NewUnit(token.Position{}, value.Fn{Description: "Raises an error with the given raw-string message.", Call: errFn}))
	root.Define("time-ms", value.NewUnit(token.Position{}, value.Fn{Description: "Milliseconds since epoch.", Call: timeMsFn}))
}
