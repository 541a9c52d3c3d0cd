// Package parser builds an *ast.Game from cardlang source text. The
// grammar implemented here targets the constructs exercised by the
// distillation's own test fixtures (declarations, stages, moves,
// conditionals, scoring) rather than the full expressiveness the AST
// package can represent; see DESIGN.md for the scope this implies and
// for why no .pest grammar was available to derive from directly.
package parser

import (
	"fmt"
	"unicode/utf8"

	"github.com/cardlang/analysis/internal/ast"
	"github.com/cardlang/analysis/internal/diagnostics"
	"github.com/cardlang/analysis/internal/lexer"
)

type parser struct {
	l         *lexer.Lexer
	cur, peek lexer.Token
	errs      []*diagnostics.Error
}

func newParser(text string) *parser {
	p := &parser{l: lexer.New(text)}
	p.next()
	p.next()
	return p
}

func (p *parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *parser) errorf(format string, args ...any) {
	p.codeErrorf(diagnostics.CodeParseGeneric, format, args...)
}

func (p *parser) codeErrorf(code diagnostics.Code, format string, args ...any) {
	p.errs = append(p.errs, diagnostics.New(code, diagnostics.Span{
		Line: p.cur.Line, Column: p.cur.Column,
	}, format, args...))
}

func (p *parser) curIsKeyword(kw string) bool {
	return p.cur.Kind == lexer.KEYWORD && p.cur.Lexeme == kw
}

func (p *parser) peekIsKeyword(kw string) bool {
	return p.peek.Kind == lexer.KEYWORD && p.peek.Lexeme == kw
}

// expectKeyword consumes the current token if it is kw, else records a
// diagnostic and leaves the cursor in place so the caller can attempt
// recovery at the next statement boundary.
func (p *parser) expectKeyword(kw string) bool {
	if p.curIsKeyword(kw) {
		p.next()
		return true
	}
	p.errorf("expected keyword %q, found %q", kw, p.cur.Lexeme)
	return false
}

func (p *parser) expect(k lexer.Kind, what string) bool {
	if p.cur.Kind == k {
		p.next()
		return true
	}
	p.errorf("expected %s, found %q", what, p.cur.Lexeme)
	return false
}

// ident consumes an IDENT token and wraps it with its span. A token that
// lexically matches a reserved keyword is rejected without being
// consumed, so the caller's recovery point still sees it; an identifier
// that parses but doesn't start with an uppercase letter is consumed and
// returned (so the rest of the declaration can still be parsed) but
// flagged with a non-fatal casing diagnostic.
func (p *parser) ident() ast.Ident {
	tok := p.cur
	switch tok.Kind {
	case lexer.KEYWORD:
		p.codeErrorf(diagnostics.CodeReservedKeyword, "%q is a reserved keyword, not a valid identifier", tok.Lexeme)
		return ast.Ident{Node: tok.Lexeme, Span: spanOf(tok)}
	case lexer.IDENT:
		if r, _ := utf8.DecodeRuneInString(tok.Lexeme); !isUpperStart(r) {
			p.codeErrorf(diagnostics.CodeIdentifierCasing, "identifier %q must start with an uppercase letter", tok.Lexeme)
		}
		p.next()
	default:
		p.errorf("expected identifier, found %q", tok.Lexeme)
	}
	return ast.Ident{Node: tok.Lexeme, Span: spanOf(tok)}
}

func isUpperStart(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func spanOf(t lexer.Token) ast.Span {
	return ast.Span{Line: t.Line, Column: t.Column}
}

func (p *parser) identList() []ast.Ident {
	var out []ast.Ident
	out = append(out, p.ident())
	for p.cur.Kind == lexer.COMMA {
		p.next()
		out = append(out, p.ident())
	}
	return out
}

// skipToRecoveryPoint advances past tokens until a likely statement
// boundary, so one malformed line doesn't cascade into the rest of the
// file failing to parse.
func (p *parser) skipToRecoveryPoint() {
	for p.cur.Kind != lexer.EOF && p.cur.Kind != lexer.RBRACE {
		if p.cur.Kind == lexer.KEYWORD {
			switch p.cur.Lexeme {
			case "player", "team", "turnorder", "location", "card", "token",
				"combo", "memory", "precedence", "points", "pointmap", "stage",
				"if", "choose", "optional", "score", "winner", "end":
				return
			}
		}
		p.next()
	}
}

// Parse lexes and parses text into a Game. Parse errors are collected
// and returned alongside whatever Game the parser managed to recover;
// Game may still be usable for partial analysis even when errs is
// non-empty, matching the teacher's recover-and-continue discipline.
func Parse(text string) (*ast.Game, []*diagnostics.Error) {
	p := newParser(text)
	var flows []ast.FlowComponent
	for p.cur.Kind != lexer.EOF {
		fc, ok := p.parseFlowComponent()
		if !ok {
			p.skipToRecoveryPoint()
			continue
		}
		flows = append(flows, fc)
	}
	if len(p.errs) > 0 {
		return &ast.Game{Flows: flows}, p.errs
	}
	return &ast.Game{Flows: flows}, nil
}

func (p *parser) unexpected(where string) {
	p.errorf("unexpected token %q in %s", p.cur.Lexeme, where)
}

var _ = fmt.Sprintf
