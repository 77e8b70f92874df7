package main

import (
	"fmt"

	"github.com/katalvlaran/demes/cmd/demes/internal"
	"github.com/katalvlaran/demes/demesgraph"
	"github.com/katalvlaran/demes/internal/testfixtures"
	"github.com/katalvlaran/demes/yamlio"
	"github.com/spf13/cobra"
)

// exampleCmd walks the built-in Jouganous-style worked example through
// the resolved-graph API: description, DOI, time units, demes and
// epochs, migrations, and pulses.
var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print the built-in worked example graph through the resolved-graph API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := yamlio.Loads(testfixtures.JouganousOutOfAfrica)
		if err != nil {
			return err
		}

		out, err := yamlio.AsYAMLString(g)
		if err != nil {
			return err
		}
		internal.PrintInfo("resolved graph as YAML:\n")
		fmt.Println(out)

		graphAPIExamples(g)
		iterateDemesAndEpochs(g)
		iterateMigrations(g)
		iteratePulses(g)
		return nil
	},
}

func graphAPIExamples(g *demesgraph.Graph) {
	fmt.Println("graph API examples:")
	description, _ := g.Description()
	fmt.Printf("  description: %s\n", description)
	if doi := g.DOI(); len(doi) == 0 {
		fmt.Println("  there is no DOI information for this graph")
	} else {
		fmt.Println("  DOI:")
		for _, d := range doi {
			fmt.Printf("    %s\n", d)
		}
	}
	fmt.Printf("  time units: %s\n", g.TimeUnits())
	fmt.Printf("  generation time: %s\n", g.GenerationTime())
}

func iterateDemesAndEpochs(g *demesgraph.Graph) {
	fmt.Println("demes and epochs:")
	for _, d := range g.Demes() {
		fmt.Printf("  deme %s: %s\n", d.Name(), d.Description())
		fmt.Printf("    start_time: %s\n", d.StartTime())
		fmt.Printf("    end_time: %s\n", d.EndTime())
		fmt.Printf("    time_interval: %s\n", d.TimeInterval())
		fmt.Printf("    start_size: %s\n", d.StartSize())
		fmt.Printf("    end_size: %s\n", d.EndSize())
		for i, e := range d.Epochs() {
			fmt.Printf("    epoch %d:\n", i)
			fmt.Printf("      start_time: %s\n", e.StartTime())
			fmt.Printf("      end_time: %s\n", e.EndTime())
			fmt.Printf("      size_function: %s\n", e.SizeFunction())
		}
	}
}

func iterateMigrations(g *demesgraph.Graph) {
	fmt.Println("asymmetric migrations:")
	for i, m := range g.Migrations() {
		fmt.Printf("  migration %d: %s -> %s, rate %s, %s\n",
			i, m.Source(), m.Dest(), m.Rate(), m.TimeInterval())
	}
}

func iteratePulses(g *demesgraph.Graph) {
	if len(g.Pulses()) == 0 {
		fmt.Println("no pulses in this graph")
		return
	}
	fmt.Println("pulses:")
	for i, p := range g.Pulses() {
		fmt.Printf("  pulse %d at %s: sources=%v dest=%s proportions=%v\n",
			i, p.Time(), p.Sources(), p.Dest(), p.Proportions())
	}
}
