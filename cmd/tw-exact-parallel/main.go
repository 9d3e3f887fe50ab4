// Command tw-exact-parallel is tw-exact with the parallel lb∥ub
// computation and heuristic portfolio forced on regardless of flags.
package main

import (
	"os"

	"github.com/katalvlaran/treewidth/internal/clirun"
)

func main() {
	os.Exit(clirun.Run(os.Args, os.Stdin, os.Stdout, os.Stderr, clirun.Defaults{ForceParallel: true}))
}
