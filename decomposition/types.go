package decomposition

import (
	"sort"

	"github.com/katalvlaran/treewidth/graph"
)

// Bag is one node of a tree decomposition: an immutable-after-creation
// vertex subset plus a stable index into its owning TreeDecomposition's
// bag arena.
type Bag struct {
	// Index is this bag's position in TreeDecomposition.Bags; stable for
	// the decomposition's lifetime.
	Index int
	// Vertices holds the bag's vertex set, sorted ascending.
	Vertices []int
}

// Size returns |Vertices|.
func (b *Bag) Size() int { return len(b.Vertices) }

// Contains reports whether v is in the bag.
func (b *Bag) Contains(v int) bool {
	i := sort.SearchInts(b.Vertices, v)
	return i < len(b.Vertices) && b.Vertices[i] == v
}

// TreeDecomposition is an ordered arena of bags plus an undirected tree
// over their indices, weakly (lookup-only) referencing the graph it
// decomposes.
type TreeDecomposition struct {
	Bags []*Bag

	// treeAdj[i] lists the bag indices adjacent to bag i in the
	// decomposition tree.
	treeAdj [][]int

	// underlying is the graph this decomposition covers. It is never
	// mutated here; decomposition holds it only to validate edge/vertex
	// coverage on demand.
	underlying *graph.Graph

	// fromPermutation records whether this decomposition was produced by
	// the elimination-order engine (as opposed to, e.g., the embedding
	// SAT encoder building bags directly).
	fromPermutation bool

	// n caches the vertex count of underlying at creation time.
	n int
}

// New creates an empty TreeDecomposition over g.
func New(g *graph.Graph, fromPermutation bool) *TreeDecomposition {
	return &TreeDecomposition{
		underlying:      g,
		fromPermutation: fromPermutation,
		n:               g.NumVertices(),
	}
}

// FromPermutation reports whether this decomposition was derived from an
// elimination-order permutation.
func (t *TreeDecomposition) FromPermutation() bool { return t.fromPermutation }

// N returns the cached vertex count of the underlying graph.
func (t *TreeDecomposition) N() int { return t.n }

// CreateBag appends a new bag containing S (deduplicated, sorted) and
// returns it. The bag's Index is its position in t.Bags.
//
// Complexity: O(|S| log |S|).
func (t *TreeDecomposition) CreateBag(s []int) *Bag {
	vs := append([]int(nil), s...)
	sort.Ints(vs)
	vs = dedupe(vs)

	b := &Bag{Index: len(t.Bags), Vertices: vs}
	t.Bags = append(t.Bags, b)
	t.treeAdj = append(t.treeAdj, nil)
	return b
}

func dedupe(sorted []int) []int {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// AddTreeEdge connects bags a and b by an (undirected) tree edge.
// Panics if either index is out of range.
func (t *TreeDecomposition) AddTreeEdge(a, b int) {
	if a < 0 || a >= len(t.Bags) || b < 0 || b >= len(t.Bags) {
		panic("decomposition: AddTreeEdge: bag index out of range")
	}
	t.treeAdj[a] = append(t.treeAdj[a], b)
	t.treeAdj[b] = append(t.treeAdj[b], a)
}

// TreeEdges returns every tree edge as a canonical (i,j) bag-index pair
// with i < j, in ascending order.
func (t *TreeDecomposition) TreeEdges() [][2]int {
	out := make([][2]int, 0, len(t.Bags))
	for i, nbrs := range t.treeAdj {
		for _, j := range nbrs {
			if j > i {
				out = append(out, [2]int{i, j})
			}
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a][0] != out[b][0] {
			return out[a][0] < out[b][0]
		}
		return out[a][1] < out[b][1]
	})
	return out
}

// Width returns max(|bag|) - 1, or -1 for an empty decomposition.
func (t *TreeDecomposition) Width() int {
	max := 0
	for _, b := range t.Bags {
		if b.Size() > max {
			max = b.Size()
		}
	}
	return max - 1
}
