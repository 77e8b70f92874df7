package main

import (
	"github.com/katalvlaran/demes/cmd/demes/internal"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Resolve a graph file and report whether it is valid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(args[0])
		if err != nil {
			internal.PrintFailure("invalid: %v\n", err)
			return err
		}
		internal.PrintSuccess("valid: %d demes, %d migrations, %d pulses\n",
			g.NumDemes(), len(g.Migrations()), len(g.Pulses()))
		return nil
	},
}
