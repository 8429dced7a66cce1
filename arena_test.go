package milp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaCopyProblemAndViews(t *testing.T) {
	p := NewProblem(2, 2, Maximize)
	p.C[0], p.C[1] = 3, 5
	p.A.Set(0, 0, 1)
	p.A.Set(0, 1, 0)
	p.A.Set(1, 0, 0)
	p.A.Set(1, 1, 1)
	p.B[0], p.B[1] = 4, 6
	p.Basis = []int32{0, 1}

	arena := NewArena(10, 10)
	arena.CopyProblem(p)

	c := arena.ViewC(2, 2)
	require.Len(t, c, 4)
	assert.Equal(t, []float64{3, 5, 0, 0}, c)

	A := arena.ViewA(2, 2)
	rows, cols := A.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 4, cols)
	assert.Equal(t, 1.0, A.At(0, 0))
	assert.Equal(t, 1.0, A.At(1, 1))

	b := arena.ViewB(2)
	assert.Equal(t, []float64{4, 6}, b)

	basis := arena.ViewBasis(2)
	assert.Equal(t, []int32{0, 1}, basis)
}

func TestArenaViewAStridePreservedOnGrowth(t *testing.T) {
	p := NewProblem(1, 1, Maximize)
	p.A.Set(0, 0, 7)
	p.B[0] = 1
	p.Basis = []int32{0}

	arena := NewArena(10, 10)
	arena.CopyProblem(p)

	small := arena.ViewA(1, 1)
	assert.Equal(t, 7.0, small.At(0, 0))

	// Writing beyond the original (n, m) extent, as Branch does, must not
	// disturb the data already visible through a narrower view.
	grown := arena.ViewA(2, 2)
	grown.Set(1, 1, 99)
	assert.Equal(t, 7.0, small.At(0, 0))
	assert.Equal(t, 99.0, grown.At(1, 1))
}
