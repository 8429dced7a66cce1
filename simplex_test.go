package milp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// buildS1 constructs the concrete scenario from spec section 8, S1:
//
//	max 3x1 + 5x2  s.t.  x1 <= 4; 2x2 <= 12; 3x1 + 2x2 <= 18; x >= 0
//
// after slack introduction: m=5 structural columns (x1, x2, s1, s2, s3), n=3.
func buildS1(sense Sense, c []float64) *Problem {
	p := NewProblem(3, 5, sense)
	copy(p.C, c)

	rows := [][]float64{
		{1, 0, 1, 0, 0},
		{0, 2, 0, 1, 0},
		{3, 2, 0, 0, 1},
	}
	for i, row := range rows {
		for j, v := range row {
			p.A.Set(i, j, v)
		}
	}
	p.B[0], p.B[1], p.B[2] = 4, 12, 18

	for i := 0; i < 5; i++ {
		p.Vars.Push(NewRealPositive(0))
	}

	return p
}

func TestSimplexPrimalS1Maximize(t *testing.T) {
	p := buildS1(Maximize, []float64{3, 5, 0, 0, 0})
	require.True(t, p.findInitialBasis())

	sol, err := p.Solve()
	require.NoError(t, err)
	require.False(t, sol.Unbounded)

	assert.InDelta(t, 36.0, sol.Z, 1e-6)
	assert.InDeltaSlice(t, []float64{2, 6, 2, 0, 0}, sol.X, 1e-6)
	assert.LessOrEqual(t, sol.PIIIter, uint32(3))
}

func TestSimplexPrimalS2MinimizeSenseSymmetry(t *testing.T) {
	p := buildS1(Minimize, []float64{-3, -5, 0, 0, 0})
	require.True(t, p.findInitialBasis())

	sol, err := p.Solve()
	require.NoError(t, err)

	assert.InDelta(t, -36.0, sol.Z, 1e-6)
	assert.InDeltaSlice(t, []float64{2, 6, 2, 0, 0}, sol.X, 1e-6)
}

func TestSimplexPrimalS3Infeasible(t *testing.T) {
	// max x1 s.t. x1 + x2 = 1; x1 + x2 = 2; x >= 0.
	p := NewProblem(2, 2, Maximize)
	p.C[0] = 1
	p.A.Set(0, 0, 1)
	p.A.Set(0, 1, 1)
	p.A.Set(1, 0, 1)
	p.A.Set(1, 1, 1)
	p.B[0], p.B[1] = 1, 2
	p.Vars.Push(NewRealPositive(0))
	p.Vars.Push(NewRealPositive(0))

	_, err := p.Solve()
	assert.ErrorIs(t, err, ErrInfeasible)
}

func TestSimplexPrimalS4Unbounded(t *testing.T) {
	// max x1 s.t. -x1 + x2 <= 1; x >= 0 (after slack augmentation).
	p := NewProblem(1, 2, Maximize)
	p.C[0] = 1
	p.A.Set(0, 0, -1)
	p.A.Set(0, 1, 1)
	p.B[0] = 1
	p.Vars.Push(NewRealPositive(0))
	p.Vars.Push(NewRealPositive(0))

	sol, err := p.Solve()
	require.NoError(t, err)
	assert.True(t, sol.Unbounded)
}

// TestPhaseIArtificialsExcludedFromPhaseII is the scenario from spec
// section 4.5.3's artificial-exclusion requirement: two equalities with no
// ready-made unit basis force Phase-I, and the unique optimum must come out
// exact, not relaxed by a degenerate artificial pivoting back in during
// Phase-II.
//
//	max x1  s.t.  x1 + x2 = 3; x1 + 2x2 = 5; x >= 0
//	unique optimum: x1=1, x2=2, z=1
func TestPhaseIArtificialsExcludedFromPhaseII(t *testing.T) {
	p := NewProblem(2, 2, Maximize)
	p.C[0] = 1
	p.A.Set(0, 0, 1)
	p.A.Set(0, 1, 1)
	p.A.Set(1, 0, 1)
	p.A.Set(1, 1, 2)
	p.B[0], p.B[1] = 3, 5
	p.Vars.Push(NewRealPositive(0))
	p.Vars.Push(NewRealPositive(0))

	require.False(t, p.findInitialBasis())

	sol, err := p.Solve()
	require.NoError(t, err)
	require.False(t, sol.Unbounded)

	assert.InDelta(t, 1.0, sol.Z, 1e-6)
	assert.InDeltaSlice(t, []float64{1, 2}, sol.X, 1e-6)
}

func TestBlandsRuleCandidatesInAscendingOrder(t *testing.T) {
	width := 4
	B := []int32{2, 3}
	N := nonBasicAscending(B, width)
	assert.Equal(t, []int32{0, 1}, N)
}

func TestReducedCostNegatesCOnReadForMinimize(t *testing.T) {
	A := mat.NewDense(1, 1, []float64{1})
	ABinv := mat.NewDense(1, 1, []float64{1})
	c := []float64{5}
	cB := []float64{0}

	assert.Equal(t, -5.0, reducedCost(0, false, c, cB, A, ABinv))
	assert.Equal(t, 5.0, reducedCost(0, true, c, cB, A, ABinv))
}
