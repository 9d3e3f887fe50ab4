package graph

import "sort"

// ConnectedComponents partitions V into connected components, each
// returned as an ascending-sorted vertex slice. Components are ordered
// by their minimum vertex id ascending, so callers that need a
// deterministic "first" component (e.g. decomposition.ConnectComponents)
// can simply take index 0.
//
// Complexity: O(V + E).
func (g *Graph) ConnectedComponents() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[int]bool, len(g.adj))
	verts := g.verticesLocked()
	var comps [][]int

	for _, root := range verts {
		if seen[root] {
			continue
		}
		var comp []int
		stack := []int{root}
		seen[root] = true
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, v)
			for u := range g.adj[v] {
				if !seen[u] {
					seen[u] = true
					stack = append(stack, u)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })
	return comps
}
