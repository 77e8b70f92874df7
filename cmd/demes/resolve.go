package main

import (
	"fmt"

	"github.com/katalvlaran/demes/yamlio"
	"github.com/spf13/cobra"
)

var resolveAsJSON bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <file>",
	Short: "Resolve a graph file and print the fully explicit result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(args[0])
		if err != nil {
			return err
		}
		if resolveAsJSON {
			out, err := yamlio.AsJSONString(g)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		}
		out, err := yamlio.AsYAMLString(g)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveAsJSON, "json", false, "print the resolved graph as JSON instead of YAML")
}
