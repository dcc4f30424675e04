// File: paramset.go
// Role: ParameterSet record and deep-copy semantics.
// Determinism:
//   - New and Clone always copy the backing slice; no two ParameterSets
//     ever share storage, so cross-goroutine hand-off needs no locks.

package core

import "errors"

// Sentinel errors for core sampling primitives.
var (
	// ErrEmptyValues indicates that a zero-length parameter vector was supplied.
	ErrEmptyValues = errors.New("core: parameter vector is empty")

	// ErrDimensionMismatch indicates two parameter vectors of different lengths
	// were combined in a single operation.
	ErrDimensionMismatch = errors.New("core: dimension mismatch")
)

// ParameterSet couples a point in parameter space with the target log-density
// evaluated there. Values has fixed length for the duration of a sampling run.
//
// ParameterSets are treated as immutable once recorded in a chain history:
// every transformation allocates a new instance.
type ParameterSet struct {
	// Values holds the parameter vector. Length equals the run's dimensionality.
	Values []float64

	// Fitness is the log-likelihood / log-posterior at Values.
	// May be -Inf for points outside the target's support.
	Fitness float64
}

// New builds a ParameterSet from values and fitness, copying values so the
// caller's slice stays independent. Returns ErrEmptyValues on a zero-length
// vector.
func New(values []float64, fitness float64) (ParameterSet, error) {
	if len(values) == 0 {
		return ParameterSet{}, ErrEmptyValues
	}
	v := make([]float64, len(values))
	copy(v, values)

	return ParameterSet{Values: v, Fitness: fitness}, nil
}

// Dim reports the dimensionality of the parameter vector.
func (p ParameterSet) Dim() int { return len(p.Values) }

// Clone returns a deep copy: value-equal, reference-distinct. Mutating the
// clone's Values never affects the original.
//
// Complexity: O(P).
func (p ParameterSet) Clone() ParameterSet {
	v := make([]float64, len(p.Values))
	copy(v, p.Values)

	return ParameterSet{Values: v, Fitness: p.Fitness}
}

// Equal reports whether q has the same dimensionality, identical parameter
// values, and identical fitness. NaN compares equal to NaN, in Values and
// Fitness alike, so that round-tripped records remain comparable.
func (p ParameterSet) Equal(q ParameterSet) bool {
	if len(p.Values) != len(q.Values) {
		return false
	}
	if !sameFloat(p.Fitness, q.Fitness) {
		return false
	}
	for i := range p.Values {
		if !sameFloat(p.Values[i], q.Values[i]) {
			return false
		}
	}

	return true
}

// sameFloat is float equality with NaN == NaN.
func sameFloat(a, b float64) bool {
	return a == b || (a != a && b != b)
}

// CloneHistory deep-copies a slice of ParameterSets. Used when a chain's
// history crosses a concurrency boundary (chain → aggregator → results).
//
// Complexity: O(N·P).
func CloneHistory(h []ParameterSet) []ParameterSet {
	if h == nil {
		return nil
	}
	out := make([]ParameterSet, len(h))
	for i := range h {
		out[i] = h[i].Clone()
	}

	return out
}
