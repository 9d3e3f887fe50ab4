// Package pace reads the PACE `.gr` and DIMACS `.dgf` graph text formats
// (spec §6; the decomposition-side writer lives in
// decomposition.TreeDecomposition.WriteTo). Both formats share the same
// shape: comment lines starting with `c`, one problem-line header, then
// one edge per line.
//
//	.gr:  p tw <n> <m>    followed by "<u> <v>" edge lines
//	.dgf: p edge <n> <m>  followed by "e <u> <v>" edge lines
//
// Vertex ids in both formats are 1-indexed; ReadGraph passes them through
// unchanged rather than renumbering, so a decomposition written back out
// via WriteTo round-trips the same ids.
//
// Lines starting with n, d, v, x, b, or l are tolerated and ignored
// (DIMACS compatibility).
package pace
