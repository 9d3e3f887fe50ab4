package fixtures

import "github.com/katalvlaran/treewidth/graph"

// Complete returns K_n: vertices 0..n-1, all pairs adjacent.
func Complete(n int) *graph.Graph {
	g := graph.New()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(i, j)
		}
	}
	if n == 1 {
		g.AddVertex(0)
	}
	return g
}

// Path returns P_n: vertices 0..n-1 connected in a line.
func Path(n int) *graph.Graph {
	g := graph.New()
	if n == 1 {
		g.AddVertex(0)
		return g
	}
	for i := 0; i+1 < n; i++ {
		g.AddEdge(i, i+1)
	}
	return g
}

// Cycle returns C_n: vertices 0..n-1 connected in a ring, n >= 3.
func Cycle(n int) *graph.Graph {
	g := graph.New()
	for i := 0; i < n; i++ {
		g.AddEdge(i, (i+1)%n)
	}
	return g
}

// K4, P5, C5 are the three small named scenarios from spec §8 built from
// the closed-form families above.
func K4() *graph.Graph { return Complete(4) }
func P5() *graph.Graph { return Path(5) }
func C5() *graph.Graph { return Cycle(5) }

// Petersen returns the Petersen graph: 10 vertices, 15 edges, 3-regular,
// treewidth 4. Vertices 0-4 are the outer 5-cycle, 5-9 the inner
// pentagram, with spoke i-(i+5).
func Petersen() *graph.Graph {
	g := graph.New()
	for i := 0; i < 5; i++ {
		g.AddEdge(i, (i+1)%5)
		g.AddEdge(i, i+5)
	}
	inner := []int{5, 7, 9, 6, 8}
	for i := 0; i < 5; i++ {
		g.AddEdge(inner[i], inner[(i+1)%5])
	}
	return g
}

// Clebsch returns the Clebsch graph: 16 vertices (identified with
// 4-bit strings 0..15), 40 edges, 5-regular. Two vertices are adjacent
// iff their bitwise XOR has Hamming weight 1 or 4 — the standard
// "folded 5-cube" construction.
func Clebsch() *graph.Graph {
	g := graph.New()
	for u := 0; u < 16; u++ {
		for v := u + 1; v < 16; v++ {
			w := popcount(u ^ v)
			if w == 1 || w == 4 {
				g.AddEdge(u, v)
			}
		}
	}
	return g
}

func popcount(x int) int {
	n := 0
	for x != 0 {
		n += x & 1
		x >>= 1
	}
	return n
}

// Nauru returns the Nauru graph: the generalized Petersen graph GP(12,5)
// — 24 vertices, 36 edges, 3-regular. Vertices 0-11 are the outer
// 12-cycle, 12-23 the inner vertices, with inner step 5 and spoke i-(12+i).
func Nauru() *graph.Graph {
	g := graph.New()
	const n = 12
	for i := 0; i < n; i++ {
		g.AddEdge(i, (i+1)%n)
		g.AddEdge(i, n+i)
		g.AddEdge(n+i, n+(i+5)%n)
	}
	return g
}
