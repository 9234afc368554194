package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvisat/kopyt"
)

var parseAsScript bool

func init() {
	parseCmd.Flags().BoolVar(&parseAsScript, "script", false, "parse as a Kotlin script (top-level statements) instead of a compilation unit")
}

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a Kotlin source file and print the reconstructed tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		p, err := kopyt.NewParser(string(src))
		if err != nil {
			return err
		}

		if parseAsScript {
			script, err := p.ParseScript()
			if err != nil {
				return err
			}
			fmt.Println(script.String())
			return nil
		}

		file, err := p.Parse()
		if err != nil {
			return err
		}
		fmt.Println(file.String())
		return nil
	},
}
