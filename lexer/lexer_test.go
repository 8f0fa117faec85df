package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xunicatt/eta/lexer"
	"github.com/xunicatt/eta/token"
)

func kinds(src string) []token.Kind {
	l := lexer.New("test.eta", src)
	var out []token.Kind
	for {
		tok := l.Next()
		out = append(out, tok.Kind)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func TestNextTokenBasics(t *testing.T) {
	got := kinds(`let x = 1 + 2.5 * (y - "hi");`)
	want := []token.Kind{
		token.LET, token.IDENT, token.ASSIGN, token.INT, token.PLUS, token.FLOAT,
		token.STAR, token.LPAREN, token.IDENT, token.MINUS, token.STRING,
		token.RPAREN, token.SEMICOLON, token.EOF,
	}
	assert.Equal(t, want, got)
}

func TestCombinedOperators(t *testing.T) {
	got := kinds("a == b != c <= d >= e += f -= g *= h /= i")
	want := []token.Kind{
		token.IDENT, token.EQ, token.IDENT, token.NEQ, token.IDENT, token.LE,
		token.IDENT, token.GE, token.IDENT, token.PLUS_EQ, token.IDENT,
		token.MINUS_EQ, token.IDENT, token.STAR_EQ, token.IDENT, token.SLASH_EQ,
		token.IDENT, token.EOF,
	}
	assert.Equal(t, want, got)
}

func TestLogicalOperators(t *testing.T) {
	got := kinds("a || b && c | d & e")
	want := []token.Kind{
		token.IDENT, token.OR, token.IDENT, token.AND, token.IDENT,
		token.PIPE, token.IDENT, token.AMP, token.IDENT, token.EOF,
	}
	assert.Equal(t, want, got)
}

func TestKeywordsAndBooleans(t *testing.T) {
	got := kinds("let fn if else for return true false")
	want := []token.Kind{
		token.LET, token.FN, token.IF, token.ELSE, token.FOR, token.RETURN,
		token.TRUE, token.FALSE, token.EOF,
	}
	assert.Equal(t, want, got)
}

func TestLineComment(t *testing.T) {
	got := kinds("let x = 1; # rest of line is a comment\nlet y = 2;")
	assert.NotContains(t, got, token.ILLEGAL)
	assert.Equal(t, 11, len(got)) // two full statements (5 tokens each) + EOF
}

func TestNumberLiteralsStopAtSecondDot(t *testing.T) {
	l := lexer.New("test.eta", "1.2.3")
	first := l.Next()
	assert.Equal(t, token.FLOAT, first.Kind)
	assert.Equal(t, "1.2", first.Literal)
	second := l.Next()
	assert.Equal(t, token.ILLEGAL, second.Kind, "the leftover dot is not an operator character, so it lexes as ILLEGAL")
}

func TestStringEscapes(t *testing.T) {
	l := lexer.New("test.eta", `"a\"b\\c" 'x\'y'`)
	first := l.Next()
	assert.Equal(t, token.STRING, first.Kind)
	assert.Equal(t, `a"b\c`, first.Literal)

	second := l.Next()
	assert.Equal(t, token.STRING, second.Kind)
	assert.Equal(t, `x'y`, second.Literal)
}

func TestUnterminatedString(t *testing.T) {
	l := lexer.New("test.eta", `"abc`)
	tok := l.Next()
	assert.Equal(t, token.ILLEGAL, tok.Kind)
	assert.Equal(t, "unterminated string literal", tok.Literal)
}

func TestPeekDoesNotConsume(t *testing.T) {
	l := lexer.New("test.eta", "let x")
	first := l.Next()
	peeked := l.Peek()
	assert.Equal(t, token.IDENT, peeked.Kind)
	assert.Equal(t, first, l.Last(), "Peek must not disturb Last")
	assert.Equal(t, token.IDENT, l.Next().Kind)
	assert.Equal(t, token.EOF, l.Next().Kind)
}

func TestRelexingIsDeterministic(t *testing.T) {
	src := `let f = fn(n) { if (n < 2) { return n; } return f(n-1); }; # tail`
	first := kinds(src)
	second := kinds(src)
	assert.Equal(t, first, second)
}

func TestSetPositionRewinds(t *testing.T) {
	l := lexer.New("test.eta", "let x = 1;")
	tok := l.Next()
	l.Next()
	l.SetPosition(tok.Pos)
	again := l.Next()
	assert.Equal(t, tok, again)
}

func TestPositionTracking(t *testing.T) {
	l := lexer.New("test.eta", "let x\nlet y")
	l.Next() // let
	l.Next() // x
	tok := l.Next() // second let, on row 1
	assert.Equal(t, 1, tok.Pos.Row)
	assert.Equal(t, 0, tok.Pos.Column())
}
