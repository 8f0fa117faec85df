// Command eta is the CLI entry point for the eta scripting language:
// `eta run <file>` (or a bare `eta <file>`) executes a source file,
// `eta repl` (or bare `eta`) starts the interactive loop, and
// `eta version` prints the version banner.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
