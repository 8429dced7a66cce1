package milp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRHS(t *testing.T) {
	p := NewProblem(1, 2, Maximize)
	p.A.Set(0, 0, 1)
	p.A.Set(0, 1, -2)
	p.B[0] = -5

	p.normalizeRHS()

	assert.Equal(t, 5.0, p.B[0])
	assert.Equal(t, -1.0, p.A.At(0, 0))
	assert.Equal(t, 2.0, p.A.At(0, 1))
}

func TestFindInitialBasisSucceeds(t *testing.T) {
	p := NewProblem(2, 2, Maximize)
	p.A.Set(0, 0, 1)
	p.A.Set(1, 1, 1)
	p.B[0], p.B[1] = 3, 4

	ok := p.findInitialBasis()
	require.True(t, ok)
	assert.ElementsMatch(t, []int32{0, 1}, p.Basis)
}

func TestFindInitialBasisFails(t *testing.T) {
	p := NewProblem(2, 2, Maximize)
	p.A.Set(0, 0, 1)
	p.A.Set(0, 1, 1)
	p.A.Set(1, 0, 1)
	p.A.Set(1, 1, 1)
	p.B[0], p.B[1] = 1, 2

	ok := p.findInitialBasis()
	assert.False(t, ok)
}

// B1: m = n (no non-basic variables) returns the direct solution A^-1 b
// after zero pivots.
func TestBoundaryB1SquareProblem(t *testing.T) {
	p := NewProblem(2, 2, Maximize)
	p.C[0], p.C[1] = 1, 1
	p.A.Set(0, 0, 1)
	p.A.Set(1, 1, 1)
	p.B[0], p.B[1] = 3, 4
	p.Vars.Push(NewRealPositive(0))
	p.Vars.Push(NewRealPositive(0))

	sol, err := p.Solve()
	require.NoError(t, err)
	assert.Equal(t, uint32(0), sol.PIIIter)
	assert.InDeltaSlice(t, []float64{3, 4}, sol.X, 1e-9)
}

func TestIsMILP(t *testing.T) {
	p := NewProblem(1, 2, Maximize)
	p.Vars.Push(NewRealPositive(0))
	p.Vars.Push(NewRealPositive(0))
	assert.False(t, p.IsMILP())

	p.Vars = NewVarRegistry(4)
	p.Vars.Push(NewRealPositive(0))
	p.Vars.Push(NewIntegerPositive(0))
	assert.True(t, p.IsMILP())
}
