package graph

import "math/bits"

// bitset is a fixed-width row of adjacency bits indexed by a dense
// 0..n-1 position, used by MaximumClique to do set intersection with
// word-parallel AND instead of map lookups.
//
// Grounded on the dense-adjacency-matrix technique (VertexIndex map +
// row-major storage, deterministic iteration) used elsewhere in this
// module's ancestry for matrix-backed graph views; here the matrix cell
// is a single bit rather than a float64 weight, since clique search only
// needs adjacency, not weight.
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) set(i int)      { b[i/64] |= 1 << uint(i%64) }
func (b bitset) has(i int) bool { return b[i/64]&(1<<uint(i%64)) != 0 }

// and returns b & other, allocating a fresh bitset.
func (b bitset) and(other bitset) bitset {
	out := make(bitset, len(b))
	for i := range b {
		out[i] = b[i] & other[i]
	}
	return out
}

// andNot returns b &^ other, allocating a fresh bitset.
func (b bitset) andNot(other bitset) bitset {
	out := make(bitset, len(b))
	for i := range b {
		out[i] = b[i] &^ other[i]
	}
	return out
}

// popcount returns the number of set bits.
func (b bitset) popcount() int {
	total := 0
	for _, w := range b {
		total += bits.OnesCount64(w)
	}
	return total
}

// nextSet returns the smallest index >= from that is set, or -1.
func (b bitset) nextSet(from int) int {
	wi := from / 64
	if wi >= len(b) {
		return -1
	}
	w := b[wi] &^ ((uint64(1) << uint(from%64)) - 1)
	for {
		if w != 0 {
			return wi*64 + bits.TrailingZeros64(w)
		}
		wi++
		if wi >= len(b) {
			return -1
		}
		w = b[wi]
	}
}

// indices returns all set bit positions ascending.
func (b bitset) indices() []int {
	var out []int
	for i := b.nextSet(0); i != -1; i = b.nextSet(i + 1) {
		out = append(out, i)
	}
	return out
}
