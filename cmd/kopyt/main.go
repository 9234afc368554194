// Command kopyt lexes, parses and pretty-prints Kotlin source files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kopyt",
		Short: "Kotlin lexer and parser toolkit",
		Long:  "kopyt tokenizes and parses Kotlin source, exposing the token stream, AST and round-trip pretty-printer from the command line.",
	}

	rootCmd.AddCommand(lexCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(fmtCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
