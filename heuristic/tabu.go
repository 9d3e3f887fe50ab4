package heuristic

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/treewidth/config"
	"github.com/katalvlaran/treewidth/elimination"
	"github.com/katalvlaran/treewidth/graph"
)

// TabuLocalSearch improves a seed permutation by local moves (spec
// §4.5: "Local search (tabu)").
//
// A vertex's "bag neighbors" are every other vertex that ever shares a
// bag with it in the permutation's decomposition — i.e. its neighbors
// in the chordal completion the permutation induces, not just its
// immediate predecessor/successor in π. minSucc is the closest such
// neighbor that comes later in π; maxPred the closest one that comes
// earlier. The two candidate moves relocate v to minSucc's position or
// to maxPred's position; both are evaluated and the cheaper one is
// kept, the way a vertex "wants" to move to shrink the bags straddling it.
type TabuLocalSearch struct {
	cfg *config.Config
}

// NewTabuLocalSearch builds a search driven by cfg's TabuRounds,
// TabuSteps, and TabuQueueLen.
func NewTabuLocalSearch(cfg *config.Config) *TabuLocalSearch {
	return &TabuLocalSearch{cfg: cfg}
}

func (*TabuLocalSearch) Name() string { return "tabu" }

// Run starts from seed and returns the best permutation found. onImprove,
// if non-nil, is called once up front with the seed and its width, and
// then every time a strictly better width is reached
// (spec: "emit an anytime report").
func (t *TabuLocalSearch) Run(g *graph.Graph, seed []int, r *rand.Rand, onImprove func(perm []int, width int)) []int {
	perm := append([]int(nil), seed...)
	if len(perm) == 0 {
		return perm
	}

	curCost, curWidth := costOf(g, perm)
	bestPerm := append([]int(nil), perm...)
	bestWidth := curWidth
	if onImprove != nil {
		onImprove(append([]int(nil), perm...), curWidth)
	}

	tabu := newTabuQueue(t.cfg.TabuQueueLen)

	for round := 0; round < t.cfg.TabuRounds; round++ {
		for step := 0; step < t.cfg.TabuSteps; step++ {
			pos := indexOf(perm)
			neigh := bagNeighbors(g, perm)

			bestCandCost := curCost
			var bestCandPerm []int
			movedVertex := -1

			for _, v := range perm {
				if tabu.contains(v) {
					continue
				}
				p := pos[v]
				minSuccPos, maxPredPos := -1, -1
				for u := range neigh[v] {
					up := pos[u]
					if up > p && (minSuccPos == -1 || up < minSuccPos) {
						minSuccPos = up
					}
					if up < p && (maxPredPos == -1 || up > maxPredPos) {
						maxPredPos = up
					}
				}

				for _, target := range []int{minSuccPos, maxPredPos} {
					if target == -1 {
						continue
					}
					cand := movePerm(perm, p, target)
					cost, _ := costOf(g, cand)
					if cost < bestCandCost {
						bestCandCost = cost
						bestCandPerm = cand
						movedVertex = v
					}
				}
			}

			if bestCandPerm != nil {
				perm = bestCandPerm
				curCost = bestCandCost
				_, curWidth = costOf(g, perm)
				tabu.push(movedVertex)
			} else {
				// local optimum: restart kick.
				var free []int
				for _, v := range perm {
					if !tabu.contains(v) {
						free = append(free, v)
					}
				}
				if len(free) > 0 {
					v := free[r.Intn(len(free))]
					p := indexOf(perm)[v]
					target := r.Intn(len(perm))
					perm = movePerm(perm, p, target)
					curCost, curWidth = costOf(g, perm)
					tabu.push(v)
				}
			}

			if curWidth < bestWidth {
				bestWidth = curWidth
				bestPerm = append([]int(nil), perm...)
				if onImprove != nil {
					onImprove(append([]int(nil), perm...), bestWidth)
				}
			}
		}
	}

	return bestPerm
}

func indexOf(perm []int) map[int]int {
	pos := make(map[int]int, len(perm))
	for i, v := range perm {
		pos[v] = i
	}
	return pos
}

// bagNeighbors maps every vertex to the set of vertices it shares some
// bag with, derived from the permutation's elimination decomposition.
func bagNeighbors(g *graph.Graph, perm []int) map[int]map[int]bool {
	td, err := elimination.Decompose(g, perm, config.Heuristic)
	if err != nil {
		return map[int]map[int]bool{}
	}
	neigh := make(map[int]map[int]bool, len(perm))
	for _, b := range td.Bags {
		for _, u := range b.Vertices {
			if neigh[u] == nil {
				neigh[u] = make(map[int]bool)
			}
			for _, w := range b.Vertices {
				if w != u {
					neigh[u][w] = true
				}
			}
		}
	}
	return neigh
}

// movePerm removes the element at index from and reinserts it at the
// slot the element originally at index to occupied.
func movePerm(perm []int, from, to int) []int {
	v := perm[from]
	without := make([]int, 0, len(perm)-1)
	without = append(without, perm[:from]...)
	without = append(without, perm[from+1:]...)

	insertAt := to
	if to > from {
		insertAt = to - 1
	}
	if insertAt > len(without) {
		insertAt = len(without)
	}
	if insertAt < 0 {
		insertAt = 0
	}

	out := make([]int, 0, len(perm))
	out = append(out, without[:insertAt]...)
	out = append(out, v)
	out = append(out, without[insertAt:]...)
	return out
}

// costOf evaluates the spec's lexicographic cost function: width
// dominates via the (maxBag*n)^2 penalty term, ties broken by the sum
// of squared bag sizes.
func costOf(g *graph.Graph, perm []int) (cost int, width int) {
	td, err := elimination.Decompose(g, perm, config.Heuristic)
	if err != nil {
		return math.MaxInt, math.MaxInt
	}
	n := len(perm)
	maxBag := 0
	sumSq := 0
	for _, b := range td.Bags {
		sz := b.Size()
		sumSq += sz * sz
		if sz > maxBag {
			maxBag = sz
		}
	}
	penalty := maxBag * n
	return sumSq + penalty*penalty, maxBag - 1
}

type tabuQueue struct {
	order []int
	set   map[int]bool
	limit int
}

func newTabuQueue(limit int) *tabuQueue {
	if limit < 1 {
		limit = 1
	}
	return &tabuQueue{set: make(map[int]bool), limit: limit}
}

func (q *tabuQueue) contains(v int) bool { return q.set[v] }

func (q *tabuQueue) push(v int) {
	if v == -1 || q.set[v] {
		return
	}
	q.order = append(q.order, v)
	q.set[v] = true
	if len(q.order) > q.limit {
		oldest := q.order[0]
		q.order = q.order[1:]
		delete(q.set, oldest)
	}
}
