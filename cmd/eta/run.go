package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/xunicatt/eta/eval"
	"github.com/xunicatt/eta/lexer"
	"github.com/xunicatt/eta/object"
	"github.com/xunicatt/eta/parser"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Execute an eta source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFile(args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runFile reads, parses, and evaluates an eta source file, returning
// a non-nil error on read, parse, or evaluation failure.
func runFile(filename string) error {
	log := newLogger()
	defer log.Sync()

	source, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("could not read file %q: %w", filename, err)
	}
	log.Debug("read source file %s (%d bytes)", filename, len(source))

	lex := lexer.New(filename, string(source))
	p := parser.New(lex)
	program := p.Parse()
	log.Debug("parse completed with %d error(s)", len(p.Errors()))

	if p.HasErrors() {
		for _, msg := range p.Errors() {
			printError(msg)
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
	}

	if dumpAST {
		fmt.Println(dumpASTTree(program))
	}

	ev := eval.New(lex)
	ev.Color = !noColor
	env := object.NewEnvironment()

	result := ev.Eval(program, env)
	if object.IsError(result) {
		printError(result.Inspect())
		return fmt.Errorf("evaluation failed")
	}
	return nil
}

func printError(msg string) {
	if noColor {
		fmt.Fprintln(os.Stderr, msg)
		return
	}
	color.New(color.FgRed).Fprintln(os.Stderr, msg)
}
