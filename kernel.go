package milp

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// pivotTol is the minimum pivot magnitude accepted during LU decomposition.
// Below this the basic matrix is treated as numerically singular.
const pivotTol = 1e-12

// tol is the uniform tolerance used by every component downstream of the
// kernel (reduced-cost sign tests, ratio tests, integrality checks).
const tol = 1e-8

// extractColumn copies column j of m into a freshly allocated vector.
func extractColumn(m *mat.Dense, j int) []float64 {
	rows, _ := m.Dims()
	col := make([]float64, rows)
	for i := 0; i < rows; i++ {
		col[i] = m.At(i, j)
	}
	return col
}

// extractRow copies row i of m into a freshly allocated vector.
func extractRow(m *mat.Dense, i int) []float64 {
	_, cols := m.Dims()
	row := make([]float64, cols)
	for j := 0; j < cols; j++ {
		row[j] = m.At(i, j)
	}
	return row
}

// inverse computes M^-1 via in-place LU decomposition with partial pivoting,
// followed by triangular solves against the identity matrix. It fails with
// ErrSingular if any pivot encountered has magnitude below pivotTol.
//
// This is deliberately not delegated to gonum's mat.Dense.Inverse/mat.LU:
// gonum reports singularity from a condition-number estimate, while the
// contract here is a hard per-pivot magnitude threshold (see P5).
func inverse(base *mat.Dense, n int) (*mat.Dense, error) {
	// working copy, row-major dense n x n
	lu := make([][]float64, n)
	for i := range lu {
		lu[i] = extractRow(base, i)
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	// Gaussian elimination with partial pivoting.
	for k := 0; k < n; k++ {
		pivotRow := k
		maxVal := math.Abs(lu[k][k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(lu[i][k]); v > maxVal {
				maxVal = v
				pivotRow = i
			}
		}

		if maxVal < pivotTol {
			return nil, ErrSingular
		}

		if pivotRow != k {
			lu[k], lu[pivotRow] = lu[pivotRow], lu[k]
			perm[k], perm[pivotRow] = perm[pivotRow], perm[k]
		}

		pivotVal := lu[k][k]
		for i := k + 1; i < n; i++ {
			factor := lu[i][k] / pivotVal
			if factor == 0 {
				continue
			}
			lu[i][k] = factor
			for j := k + 1; j < n; j++ {
				lu[i][j] -= factor * lu[k][j]
			}
		}
	}

	// Solve LU * X = P * I column by column.
	inv := mat.NewDense(n, n, nil)
	y := make([]float64, n)
	x := make([]float64, n)
	for col := 0; col < n; col++ {
		// forward substitution against the permuted identity column.
		for i := 0; i < n; i++ {
			sum := 0.0
			if perm[i] == col {
				sum = 1.0
			}
			for j := 0; j < i; j++ {
				sum -= lu[i][j] * y[j]
			}
			y[i] = sum
		}
		// backward substitution.
		for i := n - 1; i >= 0; i-- {
			sum := y[i]
			for j := i + 1; j < n; j++ {
				sum -= lu[i][j] * x[j]
			}
			x[i] = sum / lu[i][i]
		}
		for i := 0; i < n; i++ {
			inv.Set(i, col, x[i])
		}
	}

	return inv, nil
}

// gemv computes y <- alpha*M*x + beta*y in place.
func gemv(alpha float64, m *mat.Dense, x []float64, beta float64, y []float64) {
	rows, cols := m.Dims()
	xv := mat.NewVecDense(cols, x)
	res := mat.NewVecDense(rows, nil)
	res.MulVec(m, xv)
	for i := 0; i < rows; i++ {
		y[i] = alpha*res.AtVec(i) + beta*y[i]
	}
}

// dot computes the inner product of x and y.
func dot(x, y []float64) float64 {
	return floats.Dot(x, y)
}
