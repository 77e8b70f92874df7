package main

import (
	"fmt"

	"github.com/katalvlaran/demes/cmd/demes/internal"
	"github.com/katalvlaran/demes/forward"
	"github.com/spf13/cobra"
)

var (
	burninFlag int
	quietFlag  bool
)

var forwardCmd = &cobra.Command{
	Use:   "forward <file>",
	Short: "Walk a resolved graph generation by generation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph(args[0])
		if err != nil {
			return err
		}

		burnin, err := forward.NewForwardTime(float64(burninFlag))
		if err != nil {
			return err
		}
		engine, err := forward.NewEngine(g, burnin)
		if err != nil {
			return err
		}

		total := int64(engine.Mapper().BurninGeneration() + engine.Mapper().ModelDuration())
		bar := internal.NewProgressBar(total, "forward", quietFlag)

		names := make([]string, g.NumDemes())
		for i, d := range g.Demes() {
			names[i] = d.Name()
		}

		it := engine.Mapper().TimeIterator(nil)
		for {
			ft, ok := it.Next()
			if !ok {
				break
			}
			if err := engine.UpdateState(ft); err != nil {
				bar.Finish()
				return err
			}
			sizes, err := engine.ParentalDemeSizes()
			if err != nil {
				bar.Finish()
				return err
			}
			if !quietFlag {
				fmt.Printf("generation %s:", ft)
				for i, sz := range sizes {
					fmt.Printf(" %s=%s", names[i], sz)
				}
				fmt.Println()
			}
			bar.Add(1)
		}
		bar.Finish()
		internal.PrintSuccess("traversal complete\n")
		return nil
	},
}

func init() {
	forwardCmd.Flags().IntVar(&burninFlag, "burnin", 0, "burn-in length in generations")
	forwardCmd.Flags().BoolVar(&quietFlag, "quiet", false, "suppress per-generation output and the progress bar")
}
