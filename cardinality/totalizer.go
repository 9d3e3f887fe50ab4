package cardinality

// totalizerNode is a unary counting register: vars[i-1] ("at least i of
// the leaves beneath this node are true") for i in 1..len(vars). A
// single leaf's node is the leaf literal itself — "at least 1" is just
// the leaf being true.
type totalizerNode struct {
	vars []int
}

// mergeUnary builds the totalizer merge network combining two unary
// registers into their sum register (Bailleux-Boufkhad / Asín et al.):
// for every i <= len(left), j <= len(right) with i+j > 0, "left has at
// least i AND right has at least j" implies "merged has at least i+j".
// This one-directional implication is exactly what an at-most-k
// constraint needs: forbidding the top register's (k+1)-th bit forbids
// more than k leaves being true.
func mergeUnary(sink ClauseSink, left, right *totalizerNode) *totalizerNode {
	p, q := len(left.vars), len(right.vars)
	m := p + q
	out := make([]int, m)
	for i := range out {
		out[i] = sink.NewVar()
	}

	at := func(regs []int, i int) (int, bool) {
		if i <= 0 {
			return 0, false // "at least 0" holds unconditionally, no antecedent needed
		}
		return regs[i-1], true
	}

	for i := 0; i <= p; i++ {
		for j := 0; j <= q; j++ {
			s := i + j
			if s == 0 {
				continue
			}
			lits := make([]int, 0, 3)
			if lv, ok := at(left.vars, i); ok {
				lits = append(lits, -lv)
			}
			if rv, ok := at(right.vars, j); ok {
				lits = append(lits, -rv)
			}
			cv, _ := at(out, s)
			lits = append(lits, cv)
			sink.AddClause(lits...)
		}
	}

	return &totalizerNode{vars: out}
}

// buildBalancedTotalizer merges leaves into one register via a balanced
// binary recursion, giving Θ(n log n) auxiliary variables and Θ(n log^2
// n) clauses.
func buildBalancedTotalizer(sink ClauseSink, leaves []int) *totalizerNode {
	if len(leaves) == 1 {
		return &totalizerNode{vars: []int{leaves[0]}}
	}
	mid := len(leaves) / 2
	left := buildBalancedTotalizer(sink, leaves[:mid])
	right := buildBalancedTotalizer(sink, leaves[mid:])
	return mergeUnary(sink, left, right)
}

// buildFlatTotalizer folds leaves left to right in fixed-size groups of
// fanIn, giving a shallower, unbalanced tree than
// buildBalancedTotalizer — the shape Commander uses.
func buildFlatTotalizer(sink ClauseSink, leaves []int, fanIn int) *totalizerNode {
	if fanIn < 2 {
		fanIn = 2
	}
	nodes := make([]*totalizerNode, len(leaves))
	for i, v := range leaves {
		nodes[i] = &totalizerNode{vars: []int{v}}
	}
	for len(nodes) > 1 {
		next := make([]*totalizerNode, 0, (len(nodes)+fanIn-1)/fanIn)
		for i := 0; i < len(nodes); i += fanIn {
			end := i + fanIn
			if end > len(nodes) {
				end = len(nodes)
			}
			group := nodes[i:end]
			acc := group[0]
			for _, n := range group[1:] {
				acc = mergeUnary(sink, acc, n)
			}
			next = append(next, acc)
		}
		nodes = next
	}
	return nodes[0]
}

// addTopCutoff forbids the node's "at least k+1" bit, realizing an
// at-most-k constraint over the totalizer's full leaf set.
func addTopCutoff(sink ClauseSink, node *totalizerNode, k int) {
	if k+1 <= len(node.vars) {
		sink.AddClause(-node.vars[k])
	}
}
