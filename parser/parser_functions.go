package parser

import (
	"github.com/xunicatt/eta/ast"
	"github.com/xunicatt/eta/token"
)

// parseFunctionLit parses `fn ( PARAMS ) { STMT* }`. Parameters are
// comma-separated identifiers; a trailing comma is not accepted.
func (p *Parser) parseFunctionLit() ast.Expression {
	lit := &ast.FunctionLit{Pos: p.curTok.Pos}

	if !p.expectPeek(token.LPAREN) {
		p.errorf("expected (")
		return nil
	}
	lit.Params = p.parseFunctionParameters()

	if !p.expectPeek(token.LBRACE) {
		p.errorf("expected {")
		return nil
	}
	lit.Body = p.parseBlock()

	return lit
}

func (p *Parser) parseFunctionParameters() []*ast.Identifier {
	var params []*ast.Identifier

	if p.peekIs(token.RPAREN) {
		p.advance()
		return params
	}

	if !p.expectPeek(token.IDENT) {
		p.errorf("expected an identifier")
		return nil
	}
	params = append(params, &ast.Identifier{Pos: p.curTok.Pos, Name: p.curTok.Literal})

	for p.peekIs(token.COMMA) {
		p.advance()
		if !p.expectPeek(token.IDENT) {
			p.errorf("expected an identifier")
			return nil
		}
		params = append(params, &ast.Identifier{Pos: p.curTok.Pos, Name: p.curTok.Literal})
	}

	if !p.expectPeek(token.RPAREN) {
		p.errorf("expected ,")
		return nil
	}
	return params
}

func (p *Parser) parseCall(callee ast.Expression) ast.Expression {
	expr := &ast.Call{Pos: p.curTok.Pos, Callee: callee}
	expr.Args = p.parseExpressionList(token.RPAREN)
	return expr
}
