// Package diag renders a (source position, message) pair into the
// caret-underlined banner eta prints for a DetailedError.
//
// Format renders the banner by re-driving a Lexer: it seeks the lexer
// to the node's position, scans one token to recover the position
// immediately after it, and reads the enclosing source line. This
// keeps the Lexer the single owner of position bookkeeping, instead of
// caching line spans on every Position at lex time.
package diag

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/xunicatt/eta/lexer"
	"github.com/xunicatt/eta/token"
)

var (
	redBold = color.New(color.FgRed, color.Bold)
	red     = color.New(color.FgRed)
)

// Format reproduces the reference diagnostic banner:
//
//	eta: error in file: <file>:<row+1>:<col+1>
//	<row+1> | <source line>
//	           ^^^^^
//	           <message>
//
// When color is false, no ANSI escapes are emitted, so tests can assert
// on the structural content directly.
func Format(lex *lexer.Lexer, pos token.Position, message string, colorEnabled bool) string {
	lex.SetPosition(pos)
	lex.Next()

	after := lex.Position()
	last := lex.LastPosition()
	line := lex.Line()

	lineNo := last.Row + 1
	col := last.Cursor - last.LineStart + 1
	width := digitWidth(lineNo)
	indent := strings.Repeat(" ", last.Cursor-last.LineStart)
	carets := strings.Repeat("^", max(1, after.Cursor-last.Cursor))

	var b strings.Builder
	header := fmt.Sprintf("eta: error in file: %s:%d:%d", lex.Filename(), lineNo, col)
	fmt.Fprintln(&b, colorize(colorEnabled, redBold, header))
	fmt.Fprintf(&b, "%d | %s\n", lineNo, line)
	fmt.Fprintf(&b, "%s%s   %s\n", strings.Repeat(" ", width), indent, colorize(colorEnabled, red, carets))
	fmt.Fprintf(&b, "%s%s   %s\n", strings.Repeat(" ", width), indent, colorize(colorEnabled, red, message))

	return b.String()
}

func colorize(enabled bool, c *color.Color, s string) string {
	if !enabled {
		return s
	}
	return c.Sprint(s)
}

func digitWidth(n int) int {
	if n <= 0 {
		return 1
	}
	return int(math.Floor(math.Log10(float64(n)))) + 1
}
