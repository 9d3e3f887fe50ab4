// Command tw-heuristic reads a graph from stdin and writes the best
// heuristic decomposition found, skipping the exact SAT pipeline.
package main

import (
	"os"

	"github.com/katalvlaran/treewidth/internal/clirun"
)

func main() {
	os.Exit(clirun.Run(os.Args, os.Stdin, os.Stdout, os.Stderr, clirun.Defaults{ForceHeuristic: true}))
}
