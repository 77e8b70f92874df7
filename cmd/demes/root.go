package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/demes/cmd/demes/internal"
	"github.com/katalvlaran/demes/demesgraph"
	"github.com/katalvlaran/demes/yamlio"
	"github.com/spf13/cobra"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "demes",
	Short: "Resolve and traverse demes-style population graphs",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.InitColor(!noColor)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.AddCommand(validateCmd, resolveCmd, forwardCmd, exampleCmd)
}

// loadGraph picks the YAML or JSON loader by file extension.
func loadGraph(path string) (*demesgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return yamlio.LoadJSON(f)
	}
	return yamlio.Load(f)
}
