package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("eta %s\n", version)
		fmt.Printf("License: %s\n", license)
		fmt.Printf("Author:  %s\n", author)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
