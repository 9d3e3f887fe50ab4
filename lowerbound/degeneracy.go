package lowerbound

import (
	"errors"

	"github.com/katalvlaran/treewidth/graph"
)

// ErrEmptyGraph is returned by Degeneracy, MinorMinWidth and
// CliqueLowerBoundSAT when called on a graph with no vertices
// (CliqueLowerBound reports that case as ErrCliqueBudgetExhausted);
// callers treat it the same as a -1 result.
var ErrEmptyGraph = errors.New("lowerbound: empty graph")

// Degeneracy computes g's degeneracy: the smallest k such that every
// subgraph of g has a vertex of degree ≤ k. Degeneracy is always a valid
// treewidth lower bound (spec §4.4).
//
// Implementation is the Matula–Beck repeated-minimum-degree-removal
// algorithm, using degree buckets (a slice of vertex lists indexed by
// current degree) so the next minimum-degree vertex is found in O(1)
// amortized rather than by scanning every surviving vertex.
//
// Complexity: O(n + m).
func Degeneracy(g *graph.Graph) (int, error) {
	verts := g.Vertices()
	n := len(verts)
	if n == 0 {
		return -1, ErrEmptyGraph
	}

	adj := make(map[int]map[int]struct{}, n)
	degree := make(map[int]int, n)
	for _, v := range verts {
		nbrs := g.Neighbors(v)
		set := make(map[int]struct{}, len(nbrs))
		for _, u := range nbrs {
			set[u] = struct{}{}
		}
		adj[v] = set
		degree[v] = len(nbrs)
	}

	maxDegree := n - 1
	buckets := make([][]int, maxDegree+1)
	pos := make(map[int]int, n)
	bucketOf := make(map[int]int, n)
	for _, v := range verts {
		d := degree[v]
		bucketOf[v] = d
		pos[v] = len(buckets[d])
		buckets[d] = append(buckets[d], v)
	}
	removed := make(map[int]bool, n)

	removeFromBucket := func(v int) {
		d := bucketOf[v]
		b := buckets[d]
		i := pos[v]
		last := len(b) - 1
		lastV := b[last]
		b[i] = lastV
		pos[lastV] = i
		buckets[d] = b[:last]
	}

	bumpDown := func(v int) {
		if removed[v] {
			return
		}
		removeFromBucket(v)
		degree[v]--
		d := degree[v]
		bucketOf[v] = d
		pos[v] = len(buckets[d])
		buckets[d] = append(buckets[d], v)
	}

	best := 0
	d := 0
	for processed := 0; processed < n; processed++ {
		// Removing one vertex lowers any surviving degree by at most one,
		// so the new minimum is at least d-1: resume the scan there.
		if d > 0 {
			d--
		}
		for d <= maxDegree && len(buckets[d]) == 0 {
			d++
		}
		if d > maxDegree {
			break
		}
		v := buckets[d][len(buckets[d])-1]
		removeFromBucket(v)
		removed[v] = true
		if d > best {
			best = d
		}
		for u := range adj[v] {
			if removed[u] {
				continue
			}
			delete(adj[u], v)
			bumpDown(u)
		}
	}

	return best, nil
}
