package cardinality

// SequentialStrategy is Sinz's sequential-counter at-most-k encoding
// (spec §4.8: "Sequential counter"). A register reg[i][j] means "at
// least j of vars[0..i] are true"; Θ(n·k) clauses and auxiliary
// variables for the initial bound.
//
// Incremental: Step(k') with k' < the bound Init built registers for
// only needs the cutoff clauses at level k' — those registers already
// exist — so tightening costs O(n) new clauses and zero new variables,
// reusing every clause already learned over the untouched registers.
type SequentialStrategy struct {
	vars []int
	k    int          // current bound; -1 means "not yet initialized"
	reg  [][]int      // reg[i][j], i in 1..n-1, j in 1..initialK
	kMax int          // the bound registers were built for
}

func (s *SequentialStrategy) Init(sink ClauseSink, vars []int, k int) error {
	if k < 0 {
		return errNegativeBound
	}
	s.vars = vars
	s.k = k
	s.kMax = k
	n := len(vars)
	if k == 0 {
		for _, v := range vars {
			sink.AddClause(-v)
		}
		return nil
	}
	if k >= n {
		return nil // vacuously true, nothing to encode
	}

	s.reg = make([][]int, n)
	for i := 1; i < n; i++ {
		row := make([]int, k+1)
		for j := 1; j <= k; j++ {
			row[j] = sink.NewVar()
		}
		s.reg[i] = row
	}

	x := func(i int) int { return vars[i-1] }

	sink.AddClause(-x(1), s.reg[1][1])
	for j := 2; j <= k; j++ {
		sink.AddClause(-s.reg[1][j])
	}

	for i := 2; i <= n-1; i++ {
		sink.AddClause(-x(i), s.reg[i][1])
		sink.AddClause(-s.reg[i-1][1], s.reg[i][1])
		for j := 2; j <= k; j++ {
			sink.AddClause(-x(i), -s.reg[i-1][j-1], s.reg[i][j])
			sink.AddClause(-s.reg[i-1][j], s.reg[i][j])
		}
		sink.AddClause(-x(i), -s.reg[i-1][k])
	}
	sink.AddClause(-x(n), -s.reg[n-1][k])

	return nil
}

func (s *SequentialStrategy) Step(sink ClauseSink, k int) error {
	if k >= s.k {
		return ErrNotATightening
	}
	n := len(s.vars)
	x := func(i int) int { return s.vars[i-1] }

	if k < 0 {
		return errNegativeBound
	}
	if k == 0 {
		for _, v := range s.vars {
			sink.AddClause(-v)
		}
		s.k = 0
		return nil
	}
	if s.reg == nil || k >= s.kMax {
		// registers were never built (prior bound was vacuous) or don't
		// reach this bound; rebuild fully.
		s.k = -1
		return s.Init(sink, s.vars, k)
	}

	for i := 2; i <= n-1; i++ {
		sink.AddClause(-x(i), -s.reg[i-1][k])
	}
	sink.AddClause(-x(n), -s.reg[n-1][k])
	s.k = k

	return nil
}
