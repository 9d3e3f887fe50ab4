package graph

import "sort"

// TwinDecomposition partitions V into twin equivalence classes: u ~ v
// iff N(u) \ {v} = N(v) \ {u}. Only classes of size >= 2 are reported
// (singletons have no twin to exploit for symmetry breaking).
//
// Two distinct signatures classify every pair:
//   - open signature sort(N(v)): equal open signatures for u,v imply
//     v ∉ N(u) (else v would be in its own open signature), i.e. u,v are
//     non-adjacent twins with identical open neighborhoods.
//   - closed signature sort(N(v) ∪ {v}): equal closed signatures imply
//     mutual adjacency, i.e. u,v are adjacent ("true") twins with
//     N(u)\{v} = N(v)\{u}.
//
// Bucketing by a radix signature (varint-encoded sorted id list) avoids
// an O(V^2) pairwise comparison.
//
// Complexity: O((V+E) log V).
func (g *Graph) TwinDecomposition() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	verts := g.verticesLocked()
	openBuckets := make(map[string][]int)
	closedBuckets := make(map[string][]int)

	for _, v := range verts {
		nbrs := g.neighborsLocked(v)
		openBuckets[signature(nbrs)] = append(openBuckets[signature(nbrs)], v)

		closed := make([]int, len(nbrs)+1)
		copy(closed, nbrs)
		closed[len(nbrs)] = v
		sort.Ints(closed)
		closedBuckets[signature(closed)] = append(closedBuckets[signature(closed)], v)
	}

	var classes [][]int
	for _, bucket := range openBuckets {
		if len(bucket) >= 2 {
			cp := append([]int(nil), bucket...)
			sort.Ints(cp)
			classes = append(classes, cp)
		}
	}
	for _, bucket := range closedBuckets {
		if len(bucket) >= 2 {
			cp := append([]int(nil), bucket...)
			sort.Ints(cp)
			classes = append(classes, cp)
		}
	}

	sort.Slice(classes, func(i, j int) bool {
		if classes[i][0] != classes[j][0] {
			return classes[i][0] < classes[j][0]
		}
		return len(classes[i]) < len(classes[j])
	})
	return classes
}

// signature builds a stable string key from a sorted int slice, cheap
// enough to use directly as a map key without a custom hash.
func signature(xs []int) string {
	buf := make([]byte, 0, len(xs)*2)
	for _, x := range xs {
		buf = appendVarint(buf, x)
	}
	return string(buf)
}

func appendVarint(buf []byte, x int) []byte {
	u := uint64(x)
	for u >= 0x80 {
		buf = append(buf, byte(u)|0x80)
		u >>= 7
	}
	return append(buf, byte(u), '|')
}
