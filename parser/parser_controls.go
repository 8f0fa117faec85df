package parser

import (
	"github.com/xunicatt/eta/ast"
	"github.com/xunicatt/eta/token"
)

// parseIf parses `if ( EXPR ) { STMT* } (else { STMT* })?`. Parentheses
// around the condition and braces around both bodies are required.
func (p *Parser) parseIf() ast.Expression {
	expr := &ast.If{Pos: p.curTok.Pos}

	if !p.expectPeek(token.LPAREN) {
		p.errorf("expected (")
		return nil
	}
	p.advance()
	expr.Cond = p.parseExpression(LOWEST)

	if !p.expectPeek(token.RPAREN) {
		p.errorf("expected )")
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		p.errorf("expected {")
		return nil
	}
	expr.Then = p.parseBlock()

	if p.peekIs(token.ELSE) {
		p.advance()
		if !p.expectPeek(token.LBRACE) {
			p.errorf("expected {")
			return nil
		}
		expr.Else = p.parseBlock()
	}

	return expr
}

// parseFor parses `for ( INIT? ; COND? ; UPDATE? ) { STMT* }`. Each of
// the three clauses is independently optional; the two separating
// semicolons are not. INIT, when present, is a `let` statement; COND
// and UPDATE are plain expressions.
func (p *Parser) parseFor() ast.Expression {
	expr := &ast.For{Pos: p.curTok.Pos}

	if !p.expectPeek(token.LPAREN) {
		p.errorf("expected (")
		return nil
	}

	if p.peekIs(token.SEMICOLON) {
		p.advance() // on first ;
	} else {
		p.advance() // on let
		expr.Init = p.parseLet()
		// parseLet leaves curTok on the last token of the init clause
		// (or the consumed trailing `;`); make sure we land on `;`.
		if !p.curIs(token.SEMICOLON) {
			if !p.expectPeek(token.SEMICOLON) {
				p.errorf("expected ;")
				return nil
			}
		}
	}

	if p.peekIs(token.SEMICOLON) {
		p.advance() // on second ;
	} else {
		p.advance()
		expr.Cond = p.parseExpression(LOWEST)
		if !p.expectPeek(token.SEMICOLON) {
			p.errorf("expected ;")
			return nil
		}
	}

	if p.peekIs(token.RPAREN) {
		p.advance()
	} else {
		p.advance()
		expr.Update = p.parseExpression(LOWEST)
		if !p.expectPeek(token.RPAREN) {
			p.errorf("expected )")
			return nil
		}
	}

	if !p.expectPeek(token.LBRACE) {
		p.errorf("expected {")
		return nil
	}
	expr.Body = p.parseBlock()

	return expr
}
