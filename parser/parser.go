/*
File   : parser/parser.go
Package parser implements a Pratt (precedence-climbing) parser over the
token stream produced by package lexer, with one-token lookahead.

Instead of per-token parselet closures captured from the Parser instance,
dispatch is a Go switch / map lookup on token.Kind at each dispatch
site in parseExpression's prefix and infix steps — the idiomatic Go
rendering of the same "match on token kind" approach the reference
design calls for.
*/
package parser

import (
	"fmt"

	"github.com/xunicatt/eta/ast"
	"github.com/xunicatt/eta/lexer"
	"github.com/xunicatt/eta/token"
)

// Precedence levels, lowest to highest.
type precedence int

const (
	_ precedence = iota
	LOWEST
	ASSIGNMENT
	EQUALS
	LESSGREATER
	SUM
	PRODUCT
	PREFIX
	CALL
	INDEX
)

var precedences = map[token.Kind]precedence{
	token.ASSIGN:   ASSIGNMENT,
	token.PLUS_EQ:  ASSIGNMENT,
	token.MINUS_EQ: ASSIGNMENT,
	token.STAR_EQ:  ASSIGNMENT,
	token.SLASH_EQ: ASSIGNMENT,
	token.EQ:       EQUALS,
	token.NEQ:      EQUALS,
	token.LT:       LESSGREATER,
	token.LE:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.GE:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.STAR:     PRODUCT,
	token.SLASH:    PRODUCT,
	token.LPAREN:   CALL,
	token.LBRACKET: INDEX,
}

// Parser consumes tokens from a Lexer and builds an ast.Program.
type Parser struct {
	lex *lexer.Lexer

	curTok  token.Token
	peekTok token.Token

	errors []string
}

// New constructs a Parser over lex and primes curTok and its one-token
// lookahead, peekTok.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{lex: lex}
	p.advance()
	p.advance()
	return p
}

// Errors returns the accumulated diagnostic strings.
func (p *Parser) Errors() []string { return p.errors }

// HasErrors reports whether any parse errors were accumulated.
func (p *Parser) HasErrors() bool { return len(p.errors) > 0 }

// Lexer exposes the underlying Lexer, used by the evaluator to re-scan
// for diagnostic formatting.
func (p *Parser) Lexer() *lexer.Lexer { return p.lex }

func (p *Parser) advance() {
	p.curTok = p.peekTok
	p.peekTok = p.lex.Next()
}

func (p *Parser) curIs(k token.Kind) bool  { return p.curTok.Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peekTok.Kind == k }

func (p *Parser) expectPeek(k token.Kind) bool {
	if p.peekIs(k) {
		p.advance()
		return true
	}
	p.errorf("expected %s, got %s", k, p.peekTok.Kind)
	return false
}

func (p *Parser) errorf(format string, a ...interface{}) {
	msg := fmt.Sprintf("[%s] parser error: %s", p.curTok.Pos, fmt.Sprintf(format, a...))
	p.errors = append(p.errors, msg)
}

func (p *Parser) peekPrecedence() precedence {
	if pr, ok := precedences[p.peekTok.Kind]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() precedence {
	if pr, ok := precedences[p.curTok.Kind]; ok {
		return pr
	}
	return LOWEST
}

// Parse consumes tokens until EOF, returning the root Program. Check
// Errors() before evaluating the result.
func (p *Parser) Parse() *ast.Program {
	program := &ast.Program{}

	for !p.curIs(token.EOF) {
		if p.curIs(token.ILLEGAL) {
			p.errorf("%s", p.curTok.Literal)
			p.advance()
			continue
		}
		if stmt := p.parseStatement(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.advance()
	}

	return program
}
