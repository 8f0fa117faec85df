package parser

import (
	"github.com/xunicatt/eta/ast"
	"github.com/xunicatt/eta/lexer"
	"github.com/xunicatt/eta/token"
)

var infixOperators = map[token.Kind]bool{
	token.PLUS: true, token.MINUS: true, token.STAR: true, token.SLASH: true,
	token.EQ: true, token.NEQ: true, token.LT: true, token.LE: true,
	token.GT: true, token.GE: true,
}

var compoundBase = map[token.Kind]string{
	token.PLUS_EQ:  "+",
	token.MINUS_EQ: "-",
	token.STAR_EQ:  "*",
	token.SLASH_EQ: "/",
}

// parseExpression is the Pratt loop: a prefix parselet produces the left
// operand, then while the peek token binds an infix operator tighter
// than prec, an infix parselet folds it in. Left-associative.
func (p *Parser) parseExpression(prec precedence) ast.Expression {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}

	for !p.peekIs(token.SEMICOLON) && prec < p.peekPrecedence() {
		p.advance()
		left = p.parseInfix(left)
		if left == nil {
			return nil
		}
	}
	return left
}

func (p *Parser) parsePrefix() ast.Expression {
	switch p.curTok.Kind {
	case token.IDENT:
		return &ast.Identifier{Pos: p.curTok.Pos, Name: p.curTok.Literal}
	case token.INT:
		return p.parseIntegerLit()
	case token.FLOAT:
		return p.parseFloatLit()
	case token.TRUE, token.FALSE:
		return &ast.BoolLit{Pos: p.curTok.Pos, Value: p.curTok.Kind == token.TRUE}
	case token.STRING:
		return &ast.StringLit{Pos: p.curTok.Pos, Value: p.curTok.Literal}
	case token.BANG, token.MINUS:
		return p.parsePrefixExpression()
	case token.LPAREN:
		return p.parseGroupedExpression()
	case token.IF:
		return p.parseIf()
	case token.FOR:
		return p.parseFor()
	case token.FN:
		return p.parseFunctionLit()
	case token.LBRACKET:
		return p.parseArrayLit()
	case token.ILLEGAL:
		p.errorf("%s", p.curTok.Literal)
		return nil
	default:
		p.errorf("no prefix parse function for %s found", p.curTok.Kind)
		return nil
	}
}

func (p *Parser) parseInfix(left ast.Expression) ast.Expression {
	switch p.curTok.Kind {
	case token.LPAREN:
		return p.parseCall(left)
	case token.LBRACKET:
		return p.parseIndex(left)
	case token.ASSIGN:
		return p.parseAssign(left)
	case token.PLUS_EQ, token.MINUS_EQ, token.STAR_EQ, token.SLASH_EQ:
		return p.parseOpAssign(left)
	default:
		if infixOperators[p.curTok.Kind] {
			return p.parseInfixExpression(left)
		}
		p.errorf("no infix parse function for %s found", p.curTok.Kind)
		return nil
	}
}

func (p *Parser) parseIntegerLit() ast.Expression {
	v, err := lexer.ParseInt(p.curTok.Literal)
	if err != nil {
		p.errorf("could not parse %q as integer", p.curTok.Literal)
		return nil
	}
	return &ast.IntegerLit{Pos: p.curTok.Pos, Value: v}
}

func (p *Parser) parseFloatLit() ast.Expression {
	v, err := lexer.ParseFloat(p.curTok.Literal)
	if err != nil {
		p.errorf("could not parse %q as float", p.curTok.Literal)
		return nil
	}
	return &ast.FloatLit{Pos: p.curTok.Pos, Value: v}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.Prefix{Pos: p.curTok.Pos, Op: string(p.curTok.Kind)}
	p.advance()
	expr.Right = p.parseExpression(PREFIX)
	return expr
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.Infix{Pos: p.curTok.Pos, Op: string(p.curTok.Kind), Left: left}
	prec := p.curPrecedence()
	p.advance()
	expr.Right = p.parseExpression(prec)
	return expr
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.advance()
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseArrayLit() ast.Expression {
	lit := &ast.ArrayLit{Pos: p.curTok.Pos}
	lit.Elements = p.parseExpressionList(token.RBRACKET)
	return lit
}

// parseExpressionList parses a comma-separated expression list ending in
// end, leaving curTok on end.
func (p *Parser) parseExpressionList(end token.Kind) []ast.Expression {
	var list []ast.Expression

	if p.peekIs(end) {
		p.advance()
		return list
	}

	p.advance()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekIs(token.COMMA) {
		p.advance()
		p.advance()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		return nil
	}
	return list
}

// parseAssign anchors the node at the target's position, not the `=`
// token's, so a reassignment diagnostic points at the variable itself.
func (p *Parser) parseAssign(left ast.Expression) ast.Expression {
	expr := &ast.Assign{Pos: left.Position()}

	switch t := left.(type) {
	case *ast.Identifier:
		expr.Target = t
	case *ast.Index:
		if _, ok := t.Left.(*ast.Identifier); !ok {
			p.errorf("index assignment target must be an identifier")
			return nil
		}
		expr.Target = t
	default:
		p.errorf("invalid assignment target")
		return nil
	}

	p.advance()
	expr.Value = p.parseExpression(LOWEST)
	return expr
}

func (p *Parser) parseOpAssign(left ast.Expression) ast.Expression {
	ident, ok := left.(*ast.Identifier)
	if !ok {
		p.errorf("expected a variable")
		return nil
	}
	expr := &ast.OpAssign{Pos: ident.Pos, Op: compoundBase[p.curTok.Kind], Target: ident}
	p.advance()
	expr.Value = p.parseExpression(LOWEST)
	return expr
}

func (p *Parser) parseIndex(left ast.Expression) ast.Expression {
	expr := &ast.Index{Pos: p.curTok.Pos, Left: left}
	p.advance()
	expr.Index = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return expr
}
