package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvisat/kopyt"
)

var lexRetainComments bool

func init() {
	lexCmd.Flags().BoolVar(&lexRetainComments, "comments", false, "include comment tokens in the output")
}

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a Kotlin source file and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		tokens, err := kopyt.Lex(string(src), lexRetainComments)
		if err != nil {
			return err
		}

		for _, tok := range tokens {
			fmt.Printf("%-24s %-6s %q\n", tok.Typ, tok.Pos, tok.Val)
		}
		return nil
	},
}
