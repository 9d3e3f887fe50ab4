package decomposition

import "sort"

// ConnectComponents stitches a possibly-disconnected bag graph into a
// single tree. This arises when the elimination-order engine walks a
// permutation spanning multiple connected components of the underlying
// graph (spec design notes: Open Question 1).
//
// Tie-break (resolved): the "main" component is the one containing bag
// index 0 (the first bag ever created). For every other component, the
// bag with the smallest Index within that component is attached, by a
// single tree edge, to bag 0. This is deterministic and independent of
// map iteration order.
//
// Complexity: O(B α(B)) for the union-find pass + O(B log B) to sort
// component roots.
func (t *TreeDecomposition) ConnectComponents() {
	if len(t.Bags) <= 1 {
		return
	}

	uf := newUnionFind(len(t.Bags))
	for i, nbrs := range t.treeAdj {
		for _, j := range nbrs {
			uf.union(i, j)
		}
	}

	mainRoot := uf.find(0)

	// For each component other than the main one, find its smallest
	// bag index ("smallest-id root").
	minInComponent := make(map[int]int)
	for i := range t.Bags {
		r := uf.find(i)
		if r == mainRoot {
			continue
		}
		if cur, ok := minInComponent[r]; !ok || i < cur {
			minInComponent[r] = i
		}
	}

	// Deterministic attach order: sort by the extra component's smallest
	// bag index ascending.
	extraRoots := make([]int, 0, len(minInComponent))
	for _, smallest := range minInComponent {
		extraRoots = append(extraRoots, smallest)
	}
	sort.Ints(extraRoots)

	for _, smallest := range extraRoots {
		t.AddTreeEdge(0, smallest)
		uf.union(0, smallest)
	}
}
