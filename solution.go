package milp

import "math"

// Solution carries the optimal primal vector, objective value,
// unboundedness flag, and Phase-I/Phase-II iteration counters (spec
// section 3). X always reports only the structural components of the
// original (root) problem, in the order they were registered: slack,
// surplus, and artificial values are never user-visible.
type Solution struct {
	X          []float64
	Z          float64
	Unbounded  bool
	PIIter     uint32
	PIIIter    uint32
}

// newSolution allocates a Solution with m structural components.
func newSolution(m int, unbounded bool) *Solution {
	return &Solution{
		X:         make([]float64, m),
		Unbounded: unbounded,
	}
}

// VarIsInteger reports whether component i of X is within tol of an integer.
func (s *Solution) VarIsInteger(i int) bool {
	v := s.X[i]
	return math.Abs(v-math.Round(v)) < tol
}

// IsIntegral is the conjunction of VarIsInteger over every structural
// component that reg marks as requiring integrality.
func (s *Solution) IsIntegral(reg *VarRegistry) bool {
	for i := range s.X {
		if reg.IsInteger(i) && !s.VarIsInteger(i) {
			return false
		}
	}
	return true
}

// FirstFractionalInteger returns the lowest index i such that reg marks i as
// integer-typed and X[i] is not (within tol) an integer, or -1 if none
// qualifies. This is the fixed branching-variable rule from spec section
// 4.9 / Open Question Q2: a candidate must be both integer-typed AND
// currently fractional.
func (s *Solution) FirstFractionalInteger(reg *VarRegistry) int {
	for i := range s.X {
		if reg.IsInteger(i) && !s.VarIsInteger(i) {
			return i
		}
	}
	return -1
}
