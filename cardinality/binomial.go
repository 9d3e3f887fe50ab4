package cardinality

// BinomialStrategy is the direct encoding: for every (k+1)-subset of
// vars, forbid all k+1 being true simultaneously. Θ(n^(k+1)) clauses, no
// auxiliary variables — cheap to read, only usable when k is small.
//
// Non-incremental: Step discards nothing (there is no state to discard)
// and simply re-runs Init at the new bound, per spec §4.8's table.
type BinomialStrategy struct {
	vars []int
}

func (b *BinomialStrategy) Init(sink ClauseSink, vars []int, k int) error {
	b.vars = vars
	if k < 0 {
		return errNegativeBound
	}
	if k+1 > len(vars) {
		return nil // constraint is vacuously true
	}
	forEachCombination(vars, k+1, func(combo []int) {
		clause := make([]int, len(combo))
		for i, v := range combo {
			clause[i] = -v
		}
		sink.AddClause(clause...)
	})
	return nil
}

func (b *BinomialStrategy) Step(sink ClauseSink, k int) error {
	return b.Init(sink, b.vars, k)
}

// forEachCombination calls f once per r-element combination of items,
// in lexicographic index order, without allocating the full power set.
func forEachCombination(items []int, r int, f func(combo []int)) {
	n := len(items)
	if r <= 0 || r > n {
		return
	}
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	combo := make([]int, r)
	emit := func() {
		for i, j := range idx {
			combo[i] = items[j]
		}
		f(combo)
	}
	emit()
	for {
		i := r - 1
		for i >= 0 && idx[i] == i+n-r {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
		emit()
	}
}
