package main

import (
	"github.com/spf13/cobra"
	"github.com/xunicatt/eta/internal/elog"
)

const (
	version = "0.1.0"
	author  = "eta contributors"
	license = "MIT"
)

var banner = `
  ________ _____ _____
 |  ____| __|_   _|  _ \  /\
 | |__  |  __| | | | |_) |/  \
 |  __| | |____| | |  __// /\ \
 | |____| |____|_| |_|  / ____ \
 |______|______________/_/    \_\
`

var (
	noColor bool
	verbose bool
	dumpAST bool
)

var rootCmd = &cobra.Command{
	Use:   "eta [file]",
	Short: "eta is a small imperative scripting language",
	Long: `eta is a tree-walking interpreter for a small imperative scripting
language: let-bindings, first-class functions with lexical closures,
numeric/boolean/string/array values, and C-style control flow.

With no arguments, eta starts the interactive REPL. With one argument,
it runs that file, matching "eta run <file>".`,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	Version:       version,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runFile(args[0])
		}
		return startRepl()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI color in the REPL and diagnostic banners")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "raise internal structured logging to debug level")
	rootCmd.PersistentFlags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST via go-spew before evaluating")
}

func newLogger() elog.Logger {
	log, err := elog.New(verbose)
	if err != nil {
		return elog.Noop{}
	}
	return log
}
