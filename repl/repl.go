// Package repl implements eta's interactive Read-Eval-Print Loop: a
// persistent Environment shared across turns, line editing and
// history via chzyer/readline, colored output via fatih/color, and
// the dot-commands `.help`, `.clear`, `.ver`, `.exit`.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/xunicatt/eta/eval"
	"github.com/xunicatt/eta/internal/elog"
	"github.com/xunicatt/eta/lexer"
	"github.com/xunicatt/eta/object"
	"github.com/xunicatt/eta/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the display configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
	Color   bool

	Log elog.Logger
}

// NewRepl constructs a Repl with the given display fields. Color
// defaults to true; callers needing `--no-color` flip it after
// construction.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{
		Banner:  banner,
		Version: version,
		Author:  author,
		Line:    line,
		License: license,
		Prompt:  prompt,
		Color:   true,
		Log:     elog.Noop{},
	}
}

func (r *Repl) colorize(c *color.Color, format string, a ...interface{}) string {
	s := fmt.Sprintf(format, a...)
	if !r.Color {
		return s
	}
	return c.Sprint(s)
}

// PrintBanner writes the startup banner, version line, and usage hints.
func (r *Repl) PrintBanner(w io.Writer) {
	fmt.Fprintln(w, r.colorize(blueColor, "%s", r.Line))
	fmt.Fprintln(w, r.colorize(greenColor, "%s", r.Banner))
	fmt.Fprintln(w, r.colorize(blueColor, "%s", r.Line))
	fmt.Fprintln(w, r.colorize(yellowColor, "Version: %s | Author: %s | License: %s", r.Version, r.Author, r.License))
	fmt.Fprintln(w, r.colorize(blueColor, "%s", r.Line))
	r.printHelp(w)
	fmt.Fprintln(w, r.colorize(blueColor, "%s", r.Line))
}

func (r *Repl) printHelp(w io.Writer) {
	fmt.Fprintln(w, r.colorize(cyanColor, "Welcome to eta!"))
	fmt.Fprintln(w, r.colorize(cyanColor, "Type eta source and press enter to evaluate it."))
	fmt.Fprintln(w, r.colorize(cyanColor, ".help   show this message"))
	fmt.Fprintln(w, r.colorize(cyanColor, ".clear  clear the screen"))
	fmt.Fprintln(w, r.colorize(cyanColor, ".ver    print the version banner"))
	fmt.Fprintln(w, r.colorize(cyanColor, ".exit   quit the REPL"))
}

// Start runs the REPL loop against reader/writer until `.exit`, EOF, or
// a readline error. Each line is lexed, parsed, and evaluated against a
// single Environment that persists across turns.
func (r *Repl) Start(reader io.Reader, writer io.Writer) error {
	r.PrintBanner(writer)

	// readline owns stdin/stdout directly (it needs raw terminal mode
	// for history and line editing), so `reader` is accepted for
	// interface symmetry with a plain io.Reader-driven loop but is not
	// threaded through readline itself.
	_ = reader
	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	env := object.NewEnvironment()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			fmt.Fprintln(writer, "Good Bye!")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		if r.handleDotCommand(line, writer) {
			if line == ".exit" {
				return nil
			}
			continue
		}

		r.evalLine(line, env, writer)
	}
}

func (r *Repl) handleDotCommand(line string, w io.Writer) bool {
	switch line {
	case ".help":
		r.printHelp(w)
	case ".clear":
		fmt.Fprint(w, "\x1bc") // ESC c: terminal reset, clears the screen
	case ".ver":
		fmt.Fprintln(w, r.colorize(cyanColor, "eta %s (%s)", r.Version, r.License))
	case ".exit":
		fmt.Fprintln(w, "Good Bye!")
	default:
		return false
	}
	return true
}

// evalLine lexes, parses, and evaluates a single line of input against
// env, printing the result or any diagnostic to writer. A panic during
// evaluation is recovered and reported like any other runtime error so
// one bad line never kills the session.
func (r *Repl) evalLine(line string, env *object.Environment, writer io.Writer) {
	defer func() {
		if rec := recover(); rec != nil {
			fmt.Fprintln(writer, r.colorize(redColor, "[runtime error] %v", rec))
		}
	}()

	lex := lexer.New("<repl>", line)
	p := parser.New(lex)
	program := p.Parse()

	if p.HasErrors() {
		for _, msg := range p.Errors() {
			fmt.Fprintln(writer, r.colorize(redColor, "%s", msg))
		}
		return
	}

	ev := eval.New(lex)
	ev.SetWriter(writer)
	ev.Color = r.Color
	r.Log.Debug("evaluating %d statement(s)", len(program.Statements))

	result := ev.Eval(program, env)
	if result == nil {
		return
	}
	if object.IsError(result) {
		fmt.Fprintln(writer, r.colorize(redColor, "%s", result.Inspect()))
		return
	}
	fmt.Fprintln(writer, r.colorize(yellowColor, "%s", result.Inspect()))
}
