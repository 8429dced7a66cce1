package milp

import "gonum.org/v1/gonum/mat"

// Sense selects whether the problem's objective is maximized or minimized.
type Sense int

const (
	Minimize Sense = iota
	Maximize
)

// Problem is the canonical LP/MILP instance (spec section 3): dimensions,
// cost vector, constraint matrix, RHS, basis/non-basis index arrays, and
// variable registry. C and A are always allocated at the full (M+N) width
// so Phase-I can write artificial-variable columns into reserved space
// without reallocating.
type Problem struct {
	N, M  int
	Sense Sense

	C     []float64 // length M+N
	A     *mat.Dense // N x (M+N)
	B     []float64  // length N (RHS)
	Basis []int32    // length N
	NonBasis []int32 // length M

	Vars *VarRegistry

	piIter uint32 // Phase-I iterations spent finding the initial basis, if any
}

// NewProblem allocates a problem of n constraints and m structural
// variables, with storage reserved for up to n Phase-I artificial columns.
func NewProblem(n, m int, sense Sense) *Problem {
	width := m + n
	return &Problem{
		N:        n,
		M:        m,
		Sense:    sense,
		C:        make([]float64, width),
		A:        mat.NewDense(n, width, make([]float64, n*width)),
		B:        make([]float64, n),
		Basis:    make([]int32, n),
		NonBasis: make([]int32, width-n),
		Vars:     NewVarRegistry(MaxM + MaxN),
	}
}

// Width is the current total column count (m+n): the number of variables
// the tableau has room to reference, structural plus reserved artificials.
func (p *Problem) Width() int {
	return p.M + p.N
}

// IsMILP reports whether any registered variable carries an integrality
// constraint (spec section 4.4).
func (p *Problem) IsMILP() bool {
	for i := 0; i < p.Vars.Len(); i++ {
		if p.Vars.Get(i).requiresIntegrality() {
			return true
		}
	}
	return false
}

// normalizeRHS enforces invariant I2 (b >= 0): any row with a negative RHS
// is negated elementwise, row and RHS together, which changes no feasible
// point (spec law L2).
func (p *Problem) normalizeRHS() {
	width := p.Width()
	for i := 0; i < p.N; i++ {
		if p.B[i] < 0 {
			p.B[i] = -p.B[i]
			for j := 0; j < width; j++ {
				p.A.Set(i, j, -p.A.At(i, j))
			}
		}
	}
}

// findInitialBasis scans A for a ready-made unit-identity basis: for each
// column j, if exactly one row i has A[i,j]=1 and every other entry in that
// column is 0, and row i is not yet assigned, set Basis[i]=j. Returns true
// and a fully populated Basis/NonBasis if every row found an assignment,
// false otherwise (the caller must fall back to Phase-I).
func (p *Problem) findInitialBasis() bool {
	assigned := make([]bool, p.N)
	basis := make([]int32, p.N)
	width := p.Width()

	for j := 0; j < width; j++ {
		row := -1
		ok := true
		for i := 0; i < p.N; i++ {
			v := p.A.At(i, j)
			switch {
			case v == 1 && row == -1:
				row = i
			case v == 1 && row != -1:
				ok = false
			case v != 0:
				ok = false
			}
			if !ok {
				break
			}
		}
		if ok && row != -1 && !assigned[row] {
			assigned[row] = true
			basis[row] = int32(j)
		}
	}

	for i := 0; i < p.N; i++ {
		if !assigned[i] {
			return false
		}
	}

	p.Basis = basis
	p.NonBasis = complementOf(basis, width)
	return true
}

// complementOf returns, in ascending order, every index in [0, width) not
// present in basis.
func complementOf(basis []int32, width int) []int32 {
	in := make([]bool, width)
	for _, b := range basis {
		in[int(b)] = true
	}
	out := make([]int32, 0, width-len(basis))
	for j := 0; j < width; j++ {
		if !in[j] {
			out = append(out, int32(j))
		}
	}
	return out
}

// Solve dispatches to Branch-and-Bound if the problem is a MILP, otherwise
// runs a single primal Simplex pass on the continuous relaxation (spec
// section 4.4).
func (p *Problem) Solve() (*Solution, error) {
	if err := p.ensureInitialBasis(); err != nil {
		return nil, err
	}

	if p.IsMILP() {
		return BranchAndBound(p, nil)
	}

	isMax := p.Sense == Maximize
	// [p.M, p.Width()) is the reserved Phase-I artificial block (spec
	// section 4.5.3): never eligible to enter once a basis is in hand,
	// whether or not Phase-I actually ran to produce it.
	t, err := simplexPrimal(p.N, p.M, isMax, p.C, p.A, p.B, p.Basis, p.NonBasis, p.M, p.Width())
	if err != nil {
		return nil, err
	}

	sol := newSolution(p.M, t.unbounded)
	sol.PIIter = p.piIter
	if !t.unbounded {
		copy(sol.X, t.x[:p.M])
		sol.Z = t.z
		sol.PIIIter = t.iters
	}
	return sol, nil
}

// ensureInitialBasis finds a ready-made basis or falls back to Phase-I,
// recording the number of Phase-I iterations spent. It is idempotent: a
// problem that already has a valid basis (Basis/NonBasis already
// partition the column space) is left untouched.
func (p *Problem) ensureInitialBasis() error {
	width := p.Width()
	if len(p.Basis) == p.N && len(p.NonBasis) == width-p.N {
		seen := make([]bool, width)
		partition := true
		for _, j := range append(append([]int32(nil), p.Basis...), p.NonBasis...) {
			if j < 0 || int(j) >= width || seen[j] {
				partition = false
				break
			}
			seen[j] = true
		}
		if partition {
			return nil
		}
	}
	if p.findInitialBasis() {
		return nil
	}
	return p.phaseI()
}
