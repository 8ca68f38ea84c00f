// Package parser builds a *value.Unit tree from a token stream (spec §4.1).
package parser

import (
	"strconv"

	"github.com/cwbudde/yl/internal/lexer"
	"github.com/cwbudde/yl/internal/value"
)

// Parser consumes a lexer.Lexer one token at a time.
type Parser struct {
	lex *lexer.Lexer
	tok lexer.Token
}

// New creates a Parser over src, stamping historyLine into every position
// it produces (see internal/lexer's package doc for what "line" means here).
func New(src string, historyLine int) *Parser {
	return &Parser{lex: lexer.New(src, historyLine)}
}

func (p *Parser) advance() *lexer.ParseError {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// Parse reads exactly one top-level expression from src, per spec §4.1's
// parse(source, line_number) -> Unit or ParseError contract.
func Parse(src string, historyLine int) (*value.Unit, *lexer.ParseError) {
	p := New(src, historyLine)
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok.Type == lexer.EOF {
		return nil, &lexer.ParseError{Message: "Expression expected.", Pos: p.tok.Pos}
	}

	unit, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.tok.Type == lexer.RPAREN || p.tok.Type == lexer.RBRACE {
		return nil, &lexer.ParseError{Message: "Unmatched parenthesis.", Pos: p.tok.Pos}
	}

	return unit, nil
}

// ParseProgram reads every top-level expression in src (spec §6's "one or
// more expressions per file"), used by `yl run <file>` and `.predef.yl`
// auto-load — unlike Parse, which stops after the first expression and is
// what the REPL uses for its one-expression-per-entry contract.
func ParseProgram(src string, historyLine int) ([]*value.Unit, *lexer.ParseError) {
	p := New(src, historyLine)
	if err := p.advance(); err != nil {
		return nil, err
	}

	var units []*value.Unit
	for p.tok.Type != lexer.EOF {
		if p.tok.Type == lexer.RPAREN || p.tok.Type == lexer.RBRACE {
			return nil, &lexer.ParseError{Message: "Unmatched parenthesis.", Pos: p.tok.Pos}
		}
		unit, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}
	return units, nil
}

func (p *Parser) parseExpr() (*value.Unit, *lexer.ParseError) {
	switch p.tok.Type {
	case lexer.NUMBER:
		return p.parseNumber()
	case lexer.STRING:
		return p.parseString()
	case lexer.SYMBOL:
		if p.tok.Literal == "," {
			return p.parseUnquote()
		}
		return p.parseSymbol()
	case lexer.LPAREN:
		return p.parseList(lexer.RPAREN, '(', ')', false)
	case lexer.LBRACE:
		return p.parseList(lexer.RBRACE, '{', '}', true)
	case lexer.RPAREN, lexer.RBRACE:
		return nil, &lexer.ParseError{Message: "Unmatched parenthesis.", Pos: p.tok.Pos}
	default:
		return nil, &lexer.ParseError{Message: "Expression expected.", Pos: p.tok.Pos}
	}
}

func (p *Parser) parseNumber() (*value.Unit, *lexer.ParseError) {
	// The lexer only emits NUMBER once the literal has already been
	// confirmed to fit a signed 64-bit integer, so this never fails.
	n, _ := strconv.ParseInt(p.tok.Literal, 10, 64)
	u := value.NewUnit(p.tok.Pos, value.Number(n))
	if err := p.advance(); err != nil {
		return nil, err
	}
	return u, nil
}

func (p *Parser) parseString() (*value.Unit, *lexer.ParseError) {
	u := value.NewUnit(p.tok.Pos, value.Str{Text: p.tok.Literal, Raw: true})
	if err := p.advance(); err != nil {
		return nil, err
	}
	return u, nil
}

func (p *Parser) parseSymbol() (*value.Unit, *lexer.ParseError) {
	u := value.NewUnit(p.tok.Pos, value.Str{Text: p.tok.Literal, Raw: false})
	if err := p.advance(); err != nil {
		return nil, err
	}
	return u, nil
}

// parseUnquote expands a bare "," into the two-element application
// `(, X)` the evaluator recognizes as the unquote-splice marker (spec
// §4.3 rule d / glossary "Unquote"), the same way a quasiquote reader
// expands `,x` into `(unquote x)` without requiring the caller to write
// the parentheses themselves.
func (p *Parser) parseUnquote() (*value.Unit, *lexer.ParseError) {
	commaUnit := value.NewUnit(p.tok.Pos, value.Str{Text: ",", Raw: false})
	startPos := p.tok.Pos
	if err := p.advance(); err != nil { // consume ","
		return nil, err
	}
	target, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return value.NewUnit(startPos, value.List{Quoted: false, Children: []*value.Unit{commaUnit, target}}), nil
}

func (p *Parser) parseList(closer lexer.Type, openCh, closeCh rune, quoted bool) (*value.Unit, *lexer.ParseError) {
	startPos := p.tok.Pos
	if err := p.advance(); err != nil { // consume opener
		return nil, err
	}

	var children []*value.Unit
	for p.tok.Type != closer {
		if p.tok.Type == lexer.EOF {
			return nil, &lexer.ParseError{Message: "Expected closing parenthesis.", Pos: p.tok.Pos}
		}
		if p.tok.Type == lexer.RPAREN || p.tok.Type == lexer.RBRACE {
			got := ')'
			if p.tok.Type == lexer.RBRACE {
				got = '}'
			}
			return nil, &lexer.ParseError{
				Message: "Differing parenthesis, expected " + string(closeCh) + " got " + string(got) + ".",
				Pos:     p.tok.Pos,
			}
		}
		child, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	if err := p.advance(); err != nil { // consume closer
		return nil, err
	}

	return value.NewUnit(startPos, value.List{Quoted: quoted, Children: children}), nil
}
