package cardinality

// commanderFanIn is the group size Commander folds leaves through at
// each level (spec §4.8: "Commander", Θ(n) per k with recursion — a
// fixed fan-in keeps each level's work linear in the leaf count).
const commanderFanIn = 4

// CommanderStrategy is a shallow, non-incremental unary counter: leaves
// are folded left to right through fixed-size groups (buildFlatTotalizer)
// rather than the balanced tree BinaryStrategy uses, trading clause
// count for a simpler, flatter recursion.
//
// Non-incremental per spec's table: Step throws away the prior tree and
// rebuilds it from scratch at the new bound, costing fresh auxiliary
// variables every time rather than reusing the previous ones.
type CommanderStrategy struct {
	vars []int
	k    int
}

func (c *CommanderStrategy) Init(sink ClauseSink, vars []int, k int) error {
	if k < 0 {
		return errNegativeBound
	}
	c.vars = vars
	c.k = k
	if len(vars) == 0 {
		return nil
	}
	root := buildFlatTotalizer(sink, vars, commanderFanIn)
	addTopCutoff(sink, root, k)
	return nil
}

func (c *CommanderStrategy) Step(sink ClauseSink, k int) error {
	if k >= c.k {
		return ErrNotATightening
	}
	return c.Init(sink, c.vars, k)
}
