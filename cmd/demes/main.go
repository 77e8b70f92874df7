// Command demes is a thin CLI over the demes graph resolver and
// forward-time traversal engine: validate/resolve a demographic model
// file, or walk it generation by generation.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
