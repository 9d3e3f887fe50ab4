// Command tw-exact reads a graph from stdin (PACE .gr / DIMACS .dgf) and
// writes a provably optimal tree decomposition to stdout.
package main

import (
	"os"

	"github.com/katalvlaran/treewidth/internal/clirun"
)

func main() {
	os.Exit(clirun.Run(os.Args, os.Stdin, os.Stdout, os.Stderr, clirun.Defaults{}))
}
