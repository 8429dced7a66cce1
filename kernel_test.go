package milp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestInverse(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{
		4, 3,
		6, 3,
	})

	inv, err := inverse(m, 2)
	require.NoError(t, err)

	var identity mat.Dense
	identity.Mul(m, inv)
	assert.InDelta(t, 1.0, identity.At(0, 0), 1e-9)
	assert.InDelta(t, 0.0, identity.At(0, 1), 1e-9)
	assert.InDelta(t, 0.0, identity.At(1, 0), 1e-9)
	assert.InDelta(t, 1.0, identity.At(1, 1), 1e-9)
}

func TestInverseSingular(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{
		1, 2,
		2, 4,
	})

	_, err := inverse(m, 2)
	assert.ErrorIs(t, err, ErrSingular)
}

func TestExtractColumnRow(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})

	assert.Equal(t, []float64{2, 5}, extractColumn(m, 1))
	assert.Equal(t, []float64{4, 5, 6}, extractRow(m, 1))
}

func TestGemv(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{
		1, 2,
		3, 4,
	})
	y := []float64{10, 10}
	gemv(1, m, []float64{1, 1}, 1, y)
	assert.Equal(t, []float64{13, 17}, y)
}

func TestDot(t *testing.T) {
	assert.Equal(t, 32.0, dot([]float64{1, 2, 3}, []float64{4, 5, 6}))
}
