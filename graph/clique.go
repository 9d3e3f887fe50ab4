package graph

import (
	"sort"
	"time"
)

// MaximumClique returns a maximum clique of g when the search finishes
// within limit (wall-clock budget). If the budget runs out first it
// returns the largest clique found so far, which is not guaranteed
// maximum, or nil if no clique has been found yet.
//
// Implementation: Bron-Kerbosch with pivoting over a dense bitset
// adjacency. The pivot is the vertex of P ∪ X with the most neighbours
// in P, and the remaining candidates are branched on in ascending
// position order, so the search is deterministic. The time budget is polled every 4096 node expansions
// — grounded on the same "check a deadline every N node/step events to
// keep overhead negligible" idiom used for branch-and-bound search
// elsewhere in this module's lineage (the teacher's TSP branch-and-bound
// checks every 4096 node events for the identical reason).
//
// Complexity: worst case exponential; practical speed depends on g's
// density and the deterministic branch order.
func (g *Graph) MaximumClique(limit time.Duration) []int {
	g.mu.RLock()
	verts := g.verticesLocked()
	n := len(verts)
	if n == 0 {
		g.mu.RUnlock()
		return nil
	}
	idx := make(map[int]int, n)
	for i, v := range verts {
		idx[v] = i
	}
	rows := make([]bitset, n)
	for i := range rows {
		rows[i] = newBitset(n)
	}
	for i, v := range verts {
		for u := range g.adj[v] {
			rows[i].set(idx[u])
		}
	}
	g.mu.RUnlock()

	var deadline time.Time
	useDeadline := limit > 0
	if useDeadline {
		deadline = time.Now().Add(limit)
	}
	steps := 0
	exhausted := false
	checkBudget := func() bool {
		steps++
		if !useDeadline || steps&4095 != 0 {
			return false
		}
		if time.Now().After(deadline) {
			exhausted = true
			return true
		}
		return false
	}

	all := newBitset(n)
	for i := 0; i < n; i++ {
		all.set(i)
	}

	var best []int
	var cur []int

	var bk func(p, x bitset)
	bk = func(p, x bitset) {
		if exhausted {
			return
		}
		if checkBudget() {
			return
		}
		if p.popcount() == 0 && x.popcount() == 0 {
			if len(cur) > len(best) {
				best = append([]int(nil), cur...)
			}
			return
		}
		// Pivot: choose u in p∪x maximizing |p ∩ N(u)| to minimize branches.
		union := p.and(p) // copy
		for i := x.nextSet(0); i != -1; i = x.nextSet(i + 1) {
			union.set(i)
		}
		pivot := -1
		bestCount := -1
		for i := union.nextSet(0); i != -1; i = union.nextSet(i + 1) {
			c := p.and(rows[i]).popcount()
			if c > bestCount {
				bestCount = c
				pivot = i
			}
		}
		candidates := p
		if pivot != -1 {
			candidates = p.andNot(rows[pivot])
		}

		for v := candidates.nextSet(0); v != -1; v = candidates.nextSet(v + 1) {
			if exhausted {
				return
			}
			cur = append(cur, verts[v])
			np := p.and(rows[v])
			nx := x.and(rows[v])
			bk(np, nx)
			cur = cur[:len(cur)-1]
			p.clear(v)
			x.set(v)
			if exhausted {
				return
			}
		}
	}

	bk(all, newBitset(n))

	if exhausted && best == nil {
		return nil
	}
	sort.Ints(best)
	return best
}

// clear unsets bit i.
func (b bitset) clear(i int) { b[i/64] &^= 1 << uint(i%64) }
