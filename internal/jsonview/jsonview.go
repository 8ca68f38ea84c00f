// Package jsonview converts a *value.Unit tree into a JSON-marshalable
// shape (spec §2's "Persistent map backing" addition), for the `parse
// --json` CLI subcommand and the REPL's `:inspect` debug command.
package jsonview

import (
	"encoding/json"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/cwbudde/yl/internal/value"
)

// Tree converts u into nested map[string]any/[]any values suitable for
// encoding/json, one node shape per value.Expr variant.
func Tree(u *value.Unit) map[string]any {
	return build(u.Expr)
}

func build(e value.Expr) map[string]any {
	switch v := e.(type) {
	case value.Number:
		return map[string]any{"type": "number", "value": int64(v)}
	case value.Str:
		kind := "symbol"
		if v.Raw {
			kind = "string"
		}
		return map[string]any{"type": kind, "text": v.Text}
	case value.List:
		kind := "list"
		if v.Quoted {
			kind = "quoted"
		}
		children := make([]any, len(v.Children))
		for i, c := range v.Children {
			children[i] = build(c.Expr)
		}
		return map[string]any{"type": kind, "children": children}
	case value.Fn:
		return map[string]any{
			"type":        "function",
			"description": v.Description,
			"macro":       v.Macro,
			"syntax":      v.Syntax,
		}
	case value.Map:
		entries := v.Entries()
		out := make([]any, len(entries))
		for i, en := range entries {
			out[i] = map[string]any{"key": build(en.Key.Expr), "value": build(en.Value.Expr)}
		}
		return map[string]any{"type": "map", "entries": out}
	default:
		return map[string]any{"type": "unknown"}
	}
}

// Marshal renders u's Tree as indented JSON.
func Marshal(u *value.Unit) ([]byte, error) {
	return json.MarshalIndent(Tree(u), "", "  ")
}

// Patch merges a "diagnostics" array into an already-marshaled plain dump,
// using sjson so the caller never hand-builds the envelope string. Used by
// `yl parse --json` to print a parse error as a `{"diagnostics": [...]}`
// document.
func Patch(dump []byte, diagnostics []string) ([]byte, error) {
	out := string(dump)
	for i, d := range diagnostics {
		patched, err := sjson.Set(out, "diagnostics."+strconv.Itoa(i), d)
		if err != nil {
			return nil, err
		}
		out = patched
	}
	return []byte(out), nil
}

// Query looks up path in a marshaled tree by JSON path, for the REPL's
// `:inspect <path>` meta-command. Returns the matched text and whether the
// path existed.
func Query(dump []byte, path string) (string, bool) {
	result := gjson.GetBytes(dump, path)
	if !result.Exists() {
		return "", false
	}
	return result.String(), true
}
