package cardinality

import "errors"

// ErrNoNativeSupport is returned when sink does not implement PBSink —
// ExternalStrategy has no clausal fallback of its own by design; callers
// should select a different Strategy for sinks without native PB
// support.
var ErrNoNativeSupport = errors.New("cardinality: sink has no native at-most-k support")

// ExternalStrategy delegates entirely to the solver backend's own
// pseudo-boolean constraint builder (spec §4.8: "Incremental external
// (PBLib-style)"), e.g. gophersat's own AtMost constraint type. Clause
// count and auxiliary-variable count are whatever the backend uses
// internally.
type ExternalStrategy struct {
	vars []int
	k    int
}

func (e *ExternalStrategy) Init(sink ClauseSink, vars []int, k int) error {
	if k < 0 {
		return errNegativeBound
	}
	pb, ok := sink.(PBSink)
	if !ok {
		return ErrNoNativeSupport
	}
	e.vars = vars
	e.k = k
	if !pb.AddAtMostKNative(vars, k) {
		return ErrNoNativeSupport
	}
	return nil
}

func (e *ExternalStrategy) Step(sink ClauseSink, k int) error {
	if k >= e.k {
		return ErrNotATightening
	}
	pb, ok := sink.(PBSink)
	if !ok {
		return ErrNoNativeSupport
	}
	e.k = k
	if !pb.AddAtMostKNative(e.vars, k) {
		return ErrNoNativeSupport
	}
	return nil
}
