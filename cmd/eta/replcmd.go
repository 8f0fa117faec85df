package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/xunicatt/eta/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive eta REPL",
	RunE: func(cmd *cobra.Command, args []string) error {
		return startRepl()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// startRepl wires a Repl up with the default banner/prompt, then
// overlays any .etarc.yaml found in the working directory or $HOME.
func startRepl() error {
	r := repl.NewRepl(banner, version, author, "----------------------------------------------------------------", license, ">> ")
	r.Color = !noColor
	r.Log = newLogger()
	defer r.Log.Sync()

	cwd, err := os.Getwd()
	if err == nil {
		if cfg, err := repl.LoadConfig(cwd); err == nil {
			cfg.Apply(r)
		}
	}

	return r.Start(os.Stdin, os.Stdout)
}
