package milp

import "gonum.org/v1/gonum/mat"

// Default worst-case dimensions from spec section 1 (N_MAX, M_MAX): at most
// this many equality constraints / structural variables in a single
// instance. The arena is sized to these so a Branch-and-Bound run never
// reallocates its tableau.
const (
	MaxN = 500
	MaxM = 500
)

// Arena is the contiguous backing store for a Branch-and-Bound run's
// tableau (c, A, b, B), sized once for the worst-case augmented instance
// (spec section 4.6). Every node in the search tree is a cursor into this
// single buffer; branching grows a node's logical (n, m) by appending a row
// and column, never by copying the tableau.
type Arena struct {
	maxN, maxM int

	cData []float64  // length maxM+maxN
	aFull *mat.Dense  // maxN x (maxM+maxN), physical stride fixed at maxM+maxN
	bData []float64  // length maxN
	basis []int32    // length maxN
}

// NewArena allocates an arena sized for at most maxN constraints and maxM
// structural variables.
func NewArena(maxN, maxM int) *Arena {
	width := maxM + maxN
	return &Arena{
		maxN:  maxN,
		maxM:  maxM,
		cData: make([]float64, width),
		aFull: mat.NewDense(maxN, width, make([]float64, maxN*width)),
		bData: make([]float64, maxN),
		basis: make([]int32, maxN),
	}
}

// CopyProblem seeds the arena's top-left submatrices from p's tableau. It is
// called exactly once, at the start of a Branch-and-Bound run, on the
// already Phase-I-feasible root problem.
func (a *Arena) CopyProblem(p *Problem) {
	width := p.M + p.N
	copy(a.cData[:width], p.C[:width])

	dst := a.aFull.Slice(0, p.N, 0, width).(*mat.Dense)
	src := p.A.Slice(0, p.N, 0, width).(*mat.Dense)
	dst.Copy(src)

	copy(a.bData[:p.N], p.B)
	for i, idx := range p.Basis {
		a.basis[i] = int32(idx)
	}
}

// ViewC returns the logical c-vector of length m+n for a node with the
// given dimensions.
func (a *Arena) ViewC(n, m int) []float64 {
	return a.cData[:m+n]
}

// ViewA returns the logical n x (m+n) constraint matrix for a node with the
// given dimensions. The returned matrix shares the arena's fixed physical
// stride (maxM+maxN), so widening m or n for a child node is purely a
// bookkeeping change — no data below or to the right of the view moves.
func (a *Arena) ViewA(n, m int) *mat.Dense {
	return a.aFull.Slice(0, n, 0, m+n).(*mat.Dense)
}

// ViewB returns the logical RHS vector of length n for a node.
func (a *Arena) ViewB(n int) []float64 {
	return a.bData[:n]
}

// ViewBasis returns the logical basic-index array of length n for a node.
// Because branching always appends at index n (never inserts), every node's
// basis view is a simple prefix slice of the same backing array.
func (a *Arena) ViewBasis(n int) []int32 {
	return a.basis[:n]
}
