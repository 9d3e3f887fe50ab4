// Command tw-heuristic-parallel is tw-heuristic with the N-worker
// parallel heuristic portfolio forced on regardless of flags.
package main

import (
	"os"

	"github.com/katalvlaran/treewidth/internal/clirun"
)

func main() {
	os.Exit(clirun.Run(os.Args, os.Stdin, os.Stdout, os.Stderr, clirun.Defaults{ForceHeuristic: true, ForceParallel: true}))
}
