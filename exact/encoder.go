package exact

import (
	"github.com/katalvlaran/treewidth/cardinality"
	"github.com/katalvlaran/treewidth/config"
	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/sat"
)

// varTable allocates and indexes the ord/arc variable family over a
// fixed position indexing of g's vertices (verts[i] is position i).
type varTable struct {
	verts []int
	idx   map[int]int
	n     int

	// ord[i][j] is only populated for i<j; query via ordLit.
	ord [][]int
	// arc[i][j] is populated for every i != j.
	arc [][]int
}

func newVarTable(g *graph.Graph, sink cardinality.ClauseSink) *varTable {
	verts := g.Vertices()
	n := len(verts)
	idx := make(map[int]int, n)
	for i, v := range verts {
		idx[v] = i
	}

	ord := make([][]int, n)
	for i := range ord {
		ord[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ord[i][j] = sink.NewVar()
		}
	}

	arc := make([][]int, n)
	for i := range arc {
		arc[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				arc[i][j] = sink.NewVar()
			}
		}
	}

	return &varTable{verts: verts, idx: idx, n: n, ord: ord, arc: arc}
}

// ordLit returns the literal meaning "position i is eliminated before
// position j", for any distinct i, j.
func (t *varTable) ordLit(i, j int) int {
	if i < j {
		return t.ord[i][j]
	}
	return -t.ord[j][i]
}

// encoderKind picks the closure-axiom family and the cardinality
// strategy override (Ladder forces Sequential regardless of cfg).
type encoderKind int

const (
	kindBase encoderKind = iota
	kindImproved
	kindLadder
)

func kindFor(e config.Encoding) encoderKind {
	switch e {
	case config.EncodingBase:
		return kindBase
	case config.EncodingLadder:
		return kindLadder
	default:
		return kindImproved
	}
}

// encoder builds the ord/arc closure axioms and the per-vertex width
// constraint for one exact-decomposition run.
type encoder struct {
	g    *graph.Graph
	sink sat.Solver
	vt   *varTable
	kind encoderKind

	rowVars  [][]int // rowVars[i] = arc[i][*] for * != i, stable order
	rowStrat []cardinality.Strategy
}

func newEncoder(g *graph.Graph, s sat.Solver, enc config.Encoding) *encoder {
	vt := newVarTable(g, s)
	n := vt.n
	rowVars := make([][]int, n)
	for i := 0; i < n; i++ {
		row := make([]int, 0, n-1)
		for j := 0; j < n; j++ {
			if j != i {
				row = append(row, vt.arc[i][j])
			}
		}
		rowVars[i] = row
	}
	return &encoder{
		g:        g,
		sink:     s,
		vt:       vt,
		kind:     kindFor(enc),
		rowVars:  rowVars,
		rowStrat: make([]cardinality.Strategy, n),
	}
}

// buildClosure emits the shared ord-transitivity and edge-induction
// axioms, plus the family-specific elimination-closure axioms.
func (e *encoder) buildClosure() {
	n := e.vt.n
	g := e.g

	// ord is a strict total order: for every index-sorted triple i<j<l,
	// forbid the two cyclic assignments.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for l := j + 1; l < n; l++ {
				oij, ojl, oil := e.vt.ord[i][j], e.vt.ord[j][l], e.vt.ord[i][l]
				e.sink.AddClause(-oij, -ojl, oil)
				e.sink.AddClause(oij, ojl, -oil)
			}
		}
	}

	// Every graph edge induces an arc oriented by ord.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !g.IsAdjacent(e.vt.verts[i], e.vt.verts[j]) {
				continue
			}
			e.sink.AddClause(-e.vt.ordLit(i, j), e.vt.arc[i][j])
			e.sink.AddClause(e.vt.ordLit(i, j), e.vt.arc[j][i])
		}
	}

	switch e.kind {
	case kindBase:
		e.buildBaseClosure()
	default: // Improved and Ladder share the same closure axioms.
		e.buildImprovedClosure()
	}
}

// buildBaseClosure is the Samer-Veith elimination-closure axiom: if i
// eliminates while adjacent to both j and l, and j precedes l, then i's
// elimination also makes l adjacent to j (arc[j][l]).
func (e *encoder) buildBaseClosure() {
	n := e.vt.n
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			for l := 0; l < n; l++ {
				if l == i || l == j {
					continue
				}
				e.sink.AddClause(-e.vt.arc[i][j], -e.vt.arc[i][l], -e.vt.ordLit(j, l), e.vt.arc[j][l])
			}
		}
	}
}

// buildImprovedClosure drops the ord term from elimination closure:
// a common predecessor i of both j and l forces j and l adjacent in the
// fill graph, in whichever direction the (separately asserted) arc/ord
// consistency axioms resolve.
func (e *encoder) buildImprovedClosure() {
	n := e.vt.n
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			for l := j + 1; l < n; l++ {
				if l == i {
					continue
				}
				e.sink.AddClause(-e.vt.arc[i][j], -e.vt.arc[i][l], e.vt.arc[j][l], e.vt.arc[l][j])
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			e.sink.AddClause(-e.vt.arc[i][j], e.vt.ordLit(i, j))
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			e.sink.AddClause(-e.vt.arc[i][j], -e.vt.arc[j][i])
		}
	}
}

// breakCliqueSymmetry forces every non-clique vertex before every clique
// vertex, and fixes the clique's own internal order lexicographically by
// id (spec §4.6: "fix the relative order of a maximum clique").
func (e *encoder) breakCliqueSymmetry(clique []int) {
	if len(clique) < 2 {
		return
	}
	inClique := make(map[int]bool, len(clique))
	for _, v := range clique {
		inClique[v] = true
	}
	for _, v := range e.vt.verts {
		if inClique[v] {
			continue
		}
		vi := e.vt.idx[v]
		for _, c := range clique {
			e.sink.AddClause(e.vt.ordLit(vi, e.vt.idx[c]))
		}
	}
	for i := 0; i+1 < len(clique); i++ {
		e.sink.AddClause(e.vt.ordLit(e.vt.idx[clique[i]], e.vt.idx[clique[i+1]]))
	}
}

// breakTwinSymmetry fixes one twin-equivalence class's internal order
// lexicographically by id (spec §4.6: "fix the relative order within
// each twin equivalence class").
func (e *encoder) breakTwinSymmetry(class []int) {
	for i := 0; i+1 < len(class); i++ {
		e.sink.AddClause(e.vt.ordLit(e.vt.idx[class[i]], e.vt.idx[class[i+1]]))
	}
}

// initWidthConstraint emits "every vertex's arc-out-degree <= k" via
// strat, one Strategy instance per vertex row so each can later be
// re-tightened independently via Step.
func (e *encoder) initWidthConstraint(strat config.CardinalityStrategy, k int) error {
	if e.kind == kindLadder {
		strat = config.Sequential
	}
	for i, row := range e.rowVars {
		s, err := cardinality.New(strat)
		if err != nil {
			return err
		}
		if err := s.Init(e.sink, row, k); err != nil {
			return err
		}
		e.rowStrat[i] = s
	}
	return nil
}

// tightenWidthConstraint re-tightens every row's strategy to the new,
// strictly smaller bound k.
func (e *encoder) tightenWidthConstraint(k int) error {
	for _, s := range e.rowStrat {
		if err := s.Step(e.sink, k); err != nil {
			return err
		}
	}
	return nil
}
