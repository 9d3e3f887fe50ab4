package cardinality

// BinaryStrategy is the Bailleux-Boufkhad totalizer encoding (spec
// §4.8: "Binary"): a balanced merge tree of unary counting registers,
// Θ(n log n) auxiliary variables and Θ(n log^2 n) clauses.
//
// Incremental: the merge tree only needs to be built once. Step merely
// adds a new top-level cutoff clause against the already-built root
// register, reusing every clause the solver learned over it.
type BinaryStrategy struct {
	vars []int
	root *totalizerNode
	k    int
}

func (b *BinaryStrategy) Init(sink ClauseSink, vars []int, k int) error {
	if k < 0 {
		return errNegativeBound
	}
	b.vars = vars
	b.k = k
	if len(vars) == 0 {
		return nil
	}
	b.root = buildBalancedTotalizer(sink, vars)
	addTopCutoff(sink, b.root, k)
	return nil
}

func (b *BinaryStrategy) Step(sink ClauseSink, k int) error {
	if k >= b.k {
		return ErrNotATightening
	}
	if k < 0 {
		return errNegativeBound
	}
	b.k = k
	if b.root == nil {
		return nil
	}
	addTopCutoff(sink, b.root, k)
	return nil
}
