package parser

import (
	"github.com/xunicatt/eta/ast"
	"github.com/xunicatt/eta/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curTok.Kind {
	case token.SEMICOLON:
		return nil
	case token.LET:
		return p.parseLet()
	case token.RETURN:
		return p.parseReturn()
	case token.LBRACE:
		return p.parseBlock()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLet parses `let NAME = EXPR` without consuming a trailing `;`;
// the caller's statement loop advances past it. The `=` is mandatory.
func (p *Parser) parseLet() *ast.Let {
	stmt := &ast.Let{Pos: p.curTok.Pos}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Pos: p.curTok.Pos, Name: p.curTok.Literal}

	if !p.expectPeek(token.ASSIGN) {
		p.errorf("a variable must be initialized with a value")
		return nil
	}
	p.advance()

	stmt.Value = p.parseExpression(LOWEST)
	if p.peekIs(token.SEMICOLON) {
		p.advance()
	}
	return stmt
}

func (p *Parser) parseReturn() *ast.Return {
	stmt := &ast.Return{Pos: p.curTok.Pos}

	if p.peekIs(token.SEMICOLON) {
		p.advance()
		return stmt
	}

	p.advance()
	stmt.Value = p.parseExpression(LOWEST)
	if p.peekIs(token.SEMICOLON) {
		p.advance()
	}
	return stmt
}

func (p *Parser) parseBlock() *ast.Block {
	block := &ast.Block{Pos: p.curTok.Pos}
	p.advance() // consume {

	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.advance()
	}
	return block
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	stmt := &ast.ExpressionStatement{Pos: p.curTok.Pos}
	stmt.Expr = p.parseExpression(LOWEST)
	if p.peekIs(token.SEMICOLON) {
		p.advance()
	}
	return stmt
}
