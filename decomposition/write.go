package decomposition

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteTo serializes the decomposition in the PACE text format (spec
// §4.2, §6):
//
//	s td <numBags> <maxBagSize> <n>
//	b <i> <v1> <v2> ...      (one line per bag, i 1-indexed)
//	<i> <j>                  (one line per tree edge, 1-indexed)
//
// Bag and vertex ids are written exactly as stored (bags 1-indexed per
// the PACE convention; underlying vertex ids passed through unchanged).
func (t *TreeDecomposition) WriteTo(w io.Writer) error {
	bw := bufio.NewWriter(w)

	maxBagSize := 0
	for _, b := range t.Bags {
		if b.Size() > maxBagSize {
			maxBagSize = b.Size()
		}
	}

	if _, err := fmt.Fprintf(bw, "s td %d %d %d\n", len(t.Bags), maxBagSize, t.n); err != nil {
		return err
	}

	for _, b := range t.Bags {
		if _, err := bw.WriteString("b "); err != nil {
			return err
		}
		if _, err := bw.WriteString(strconv.Itoa(b.Index + 1)); err != nil {
			return err
		}
		for _, v := range b.Vertices {
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
			if _, err := bw.WriteString(strconv.Itoa(v)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	for i, nbrs := range t.treeAdj {
		for _, j := range nbrs {
			if j <= i {
				continue // emit each undirected tree edge once
			}
			if _, err := fmt.Fprintf(bw, "%d %d\n", i+1, j+1); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
