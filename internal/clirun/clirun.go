// Package clirun is the shared CLI front end behind all four cmd/tw-*
// binaries (spec §6): flag parsing, seed handling, and the stdout
// writer are explicitly out of the core's scope, so they live here once
// rather than four times. Built on the standard flag package — the one
// ambient concern in this module resting on the standard library
// outright (see DESIGN.md).
package clirun

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/treewidth/config"
	"github.com/katalvlaran/treewidth/orchestrator"
	"github.com/katalvlaran/treewidth/pace"
)

// Defaults pins the mode a cmd/tw-* binary hard-codes before handing
// off to Run: which of -heuristic/-parallel it forces on regardless of
// what the caller additionally passes.
type Defaults struct {
	ForceHeuristic bool
	ForceParallel  bool
}

// Run parses args (args[0] is the program name, matching os.Args),
// reads a graph from stdin, runs the orchestrator, and writes the
// resulting decomposition (PACE text, or TikZ if -tikz) to stdout.
// Returns the process exit code: 0 on success, non-zero on I/O or flag
// failure (spec §6: "Exit code").
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer, def Defaults) int {
	fs := flag.NewFlagSet(progName(args), flag.ContinueOnError)
	fs.SetOutput(stderr)

	seed := fs.Int64("s", 0, "RNG seed")
	logEnabled := fs.Bool("log", false, "enable comment-log output on stderr")
	tikz := fs.Bool("tikz", false, "render as TikZ instead of PACE text")
	parallel := fs.Bool("parallel", false, "enable parallel heuristic/lb-ub computation")
	heuristicOnly := fs.Bool("heuristic", false, "skip the exact SAT pipeline")
	encoding := fs.String("e", "improved", "SAT encoding: base|improved|ladder|embedding")

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	enc, err := parseEncoding(*encoding)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	g, err := pace.ReadGraph(stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	cfg := config.Default()
	cfg.Seed = *seed
	cfg.Encoding = enc
	cfg.Heuristic = def.ForceHeuristic || *heuristicOnly
	cfg.Parallel = def.ForceParallel || *parallel
	if *logEnabled {
		cfg.Log = stderr
	}

	res, err := orchestrator.Decompose(context.Background(), g, cfg)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if *tikz {
		err = writeTikZ(stdout, res.Decomposition)
	} else {
		err = res.Decomposition.WriteTo(stdout)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func progName(args []string) string {
	if len(args) == 0 {
		return "tw"
	}
	return args[0]
}

func parseEncoding(s string) (config.Encoding, error) {
	switch s {
	case "base":
		return config.EncodingBase, nil
	case "improved", "":
		return config.EncodingImproved, nil
	case "ladder":
		return config.EncodingLadder, nil
	case "embedding":
		return config.EncodingEmbedding, nil
	default:
		return 0, fmt.Errorf("clirun: unknown encoding %q (want base|improved|ladder|embedding)", s)
	}
}
