package diag_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xunicatt/eta/diag"
	"github.com/xunicatt/eta/lexer"
)

func TestFormatStructure(t *testing.T) {
	src := "let x = 1;\nlet y = x + z;\n"
	l := lexer.New("prog.eta", src)

	// Position of `z` on the second line.
	l.Next() // let
	l.Next() // x
	l.Next() // =
	l.Next() // 1
	l.Next() // ;
	l.Next() // let
	l.Next() // y
	l.Next() // =
	l.Next() // x
	l.Next() // +
	zTok := l.Next()
	assert.Equal(t, "z", zTok.Literal)

	out := diag.Format(l, zTok.Pos, "undefined identifier", false)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Equal(t, "eta: error in file: prog.eta:2:13", lines[0])
	assert.Equal(t, "2 | let y = x + z;", lines[1])
	assert.Contains(t, lines[2], "^")
	assert.Contains(t, lines[3], "undefined identifier")
}

func TestFormatWithoutColorHasNoEscapes(t *testing.T) {
	src := "x;"
	l := lexer.New("prog.eta", src)
	tok := l.Next()
	out := diag.Format(l, tok.Pos, "boom", false)
	assert.NotContains(t, out, "\x1b[")
}
