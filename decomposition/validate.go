package decomposition

import "fmt"

// IsValid checks every structural invariant from spec §3/§8:
//  1. Vertex cover — every vertex of the underlying graph is in some bag.
//  2. Edge cover — every edge's endpoints share some bag.
//  3. Connectedness — for each vertex, the bags containing it induce a
//     connected subtree.
//  4. Tree-ness — the bag graph is acyclic and connected.
//
// Returns nil if all hold, else a descriptive error naming the first
// violation found.
//
// Complexity: O(V + E + B^2) in the worst case for the connectedness
// check (B bags), dominated in practice by small bag counts relative to
// V.
func (t *TreeDecomposition) IsValid() error {
	if len(t.Bags) == 0 {
		if t.n == 0 {
			return nil
		}
		return fmt.Errorf("decomposition: empty decomposition but underlying graph has %d vertices", t.n)
	}

	if err := t.checkTreeness(); err != nil {
		return err
	}
	if err := t.checkVertexCover(); err != nil {
		return err
	}
	if err := t.checkEdgeCover(); err != nil {
		return err
	}
	if err := t.checkConnectedness(); err != nil {
		return err
	}
	return nil
}

func (t *TreeDecomposition) checkTreeness() error {
	uf := newUnionFind(len(t.Bags))
	edgeCount := 0
	for i, nbrs := range t.treeAdj {
		for _, j := range nbrs {
			if j > i { // count each undirected edge once
				edgeCount++
			}
			uf.union(i, j)
		}
	}
	if edgeCount != len(t.Bags)-1 {
		return fmt.Errorf("decomposition: bag graph is not a tree: %d bags, %d tree edges", len(t.Bags), edgeCount)
	}
	root := uf.find(0)
	for i := range t.Bags {
		if uf.find(i) != root {
			return fmt.Errorf("decomposition: bag graph is disconnected (bag %d unreachable from bag 0)", i)
		}
	}
	return nil
}

func (t *TreeDecomposition) checkVertexCover() error {
	covered := make(map[int]bool)
	for _, b := range t.Bags {
		for _, v := range b.Vertices {
			covered[v] = true
		}
	}
	for _, v := range t.underlying.Vertices() {
		if !covered[v] {
			return fmt.Errorf("decomposition: vertex %d is not covered by any bag", v)
		}
	}
	return nil
}

func (t *TreeDecomposition) checkEdgeCover() error {
	bagSet := make([]map[int]bool, len(t.Bags))
	for i, b := range t.Bags {
		m := make(map[int]bool, len(b.Vertices))
		for _, v := range b.Vertices {
			m[v] = true
		}
		bagSet[i] = m
	}
	for _, e := range t.underlying.Edges() {
		found := false
		for _, m := range bagSet {
			if m[e[0]] && m[e[1]] {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("decomposition: edge (%d,%d) is not covered by any bag", e[0], e[1])
		}
	}
	return nil
}

func (t *TreeDecomposition) checkConnectedness() error {
	// For every vertex, the bags containing it must induce a connected
	// subgraph of the tree. Since the whole bag graph is already known
	// to be a tree, it suffices to check that the bags containing v form
	// a connected subtree: walk the tree from any bag containing v and
	// verify every other bag containing v is reached without leaving
	// the "contains v" set.
	occurrences := make(map[int][]int) // vertex -> bag indices containing it
	for i, b := range t.Bags {
		for _, v := range b.Vertices {
			occurrences[v] = append(occurrences[v], i)
		}
	}

	for v, bags := range occurrences {
		if len(bags) <= 1 {
			continue
		}
		contains := make(map[int]bool, len(bags))
		for _, i := range bags {
			contains[i] = true
		}
		start := bags[0]
		seen := map[int]bool{start: true}
		stack := []int{start}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, nb := range t.treeAdj[cur] {
				if contains[nb] && !seen[nb] {
					seen[nb] = true
					stack = append(stack, nb)
				}
			}
		}
		for _, i := range bags {
			if !seen[i] {
				return fmt.Errorf("decomposition: vertex %d's bags do not form a connected subtree", v)
			}
		}
	}
	return nil
}
