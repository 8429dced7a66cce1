package milp

import "gonum.org/v1/gonum/mat"

// maxIterations is the mandatory safety cap on Simplex iterations (spec
// section 4.5 / Open Question Q4): a safety backstop, not a reported
// status. Exceeding it is ErrIterationLimit.
const maxIterations = 5000

// tableau holds the result of one Simplex run: the full variable
// assignment over the node's current (m+n)-wide column space, the
// objective value already adjusted back to the problem's original sense,
// the unboundedness flag, and the iteration count.
type tableau struct {
	x         []float64
	z         float64
	unbounded bool
	iters     uint32
}

// basicObjects extracts c_B (sign-adjusted for sense) and A_B (the n x n
// basic submatrix) for the current basis B.
func basicObjects(n int, isMax bool, B []int32, c []float64, A *mat.Dense) ([]float64, *mat.Dense) {
	cB := make([]float64, n)
	AB := mat.NewDense(n, n, nil)
	for col := 0; col < n; col++ {
		Acol := extractColumn(A, int(B[col]))
		for row := 0; row < n; row++ {
			AB.Set(row, col, Acol[row])
		}
		ci := c[B[col]]
		if isMax {
			cB[col] = ci
		} else {
			cB[col] = -ci
		}
	}
	return cB, AB
}

// reducedCost computes r_j = c_j - c_B . (AB_inv A_j), sense-adjusting c_j
// the same way basicObjects adjusts c_B (Open Question Q1: c itself is
// never mutated; the negation happens here, on read).
func reducedCost(j int, isMax bool, c []float64, cB []float64, A *mat.Dense, ABinv *mat.Dense) float64 {
	n, _ := ABinv.Dims()
	Aj := extractColumn(A, j)
	prod := make([]float64, n)
	gemv(1.0, ABinv, Aj, 0.0, prod)

	cj := c[j]
	if !isMax {
		cj = -cj
	}
	return cj - dot(cB, prod)
}

// nonBasicAscending returns the variables not in B, in ascending index
// order, derived from the strict B/N partition (I1) rather than from
// whatever order the N array happens to hold after earlier pivots.
func nonBasicAscending(B []int32, width int) []int32 {
	basic := make([]bool, width)
	for _, b := range B {
		basic[int(b)] = true
	}
	out := make([]int32, 0, width-len(B))
	for j := 0; j < width; j++ {
		if !basic[int32(j)] {
			out = append(out, int32(j))
		}
	}
	return out
}

// eligibleNonBasic returns the non-basic variables in ascending index order,
// skipping any index in [artLo, artHi): the reserved Phase-I artificial
// column block. Spec section 4.5.3 requires these be dropped from
// consideration once Phase-I has run — left eligible, a degenerate
// artificial still sitting in the basis at zero can show a favorable
// reduced cost and pivot back in, relaxing the equality it was introduced
// for. Pass artLo == artHi to disable the exclusion (Phase-I's own
// auxiliary solve, where the artificials are ordinary variables).
func eligibleNonBasic(B []int32, width, artLo, artHi int) []int32 {
	all := nonBasicAscending(B, width)
	out := make([]int32, 0, len(all))
	for _, j := range all {
		if int(j) >= artLo && int(j) < artHi {
			continue
		}
		out = append(out, j)
	}
	return out
}

// positionInN returns the index in N holding variable id j.
func positionInN(N []int32, j int32) int {
	for i, v := range N {
		if v == j {
			return i
		}
	}
	panic("milp: entering variable not found in non-basic set")
}

// pivot swaps the entering (N position q) and leaving (B position p)
// variables (spec section 4.5, step 6): an O(1) index swap, no matrix
// rewrite.
func pivot(B, N []int32, p, q int) {
	B[p], N[q] = N[q], B[p]
}

// simplexPrimal runs the revised primal Simplex method (spec section
// 4.5.1) on the tableau (n, m, c, A, b, B, N). c has length m+n, A is n x
// (m+n), b has length n; B has length n and N has length m. artLo/artHi
// mark the reserved Phase-I artificial column block to exclude from entering
// consideration (pass equal values to disable, e.g. from within Phase-I
// itself).
func simplexPrimal(n, m int, isMax bool, c []float64, A *mat.Dense, b []float64, B, N []int32, artLo, artHi int) (*tableau, error) {
	width := m + n

	var iter uint32
	for {
		if iter >= maxIterations {
			return nil, ErrIterationLimit
		}

		cB, AB := basicObjects(n, isMax, B, c, A)
		ABinv, err := inverse(AB, n)
		if err != nil {
			return nil, err
		}

		xB := make([]float64, n)
		gemv(1.0, ABinv, b, 0.0, xB)

		// Entering: smallest-index non-basic j with r_j > tol (Bland's rule).
		entering := -1
		for _, j := range eligibleNonBasic(B, width, artLo, artHi) {
			r := reducedCost(int(j), isMax, c, cB, A, ABinv)
			if r > tol {
				entering = int(j)
				break
			}
		}

		if entering == -1 {
			// Optimal.
			return extractOptimal(n, width, isMax, B, xB, c, iter), nil
		}

		Aq := extractColumn(A, entering)
		d := make([]float64, n)
		gemv(-1.0, ABinv, Aq, 0.0, d)

		// Leaving: min ratio among d_i < 0, first-encountered wins ties.
		leaving := -1
		minRatio := 0.0
		for i := 0; i < n; i++ {
			if d[i] < -tol {
				ratio := -xB[i] / d[i]
				if leaving == -1 || ratio < minRatio {
					minRatio = ratio
					leaving = i
				}
			}
		}

		if leaving == -1 {
			return &tableau{unbounded: true, iters: iter}, nil
		}

		q := positionInN(N, int32(entering))
		pivot(B, N, leaving, q)
		iter++
	}
}

// simplexDual runs the revised dual Simplex method (spec section 4.5.2).
// Same tableau shape as simplexPrimal, including the artLo/artHi artificial
// exclusion.
func simplexDual(n, m int, isMax bool, c []float64, A *mat.Dense, b []float64, B, N []int32, artLo, artHi int) (*tableau, error) {
	width := m + n

	var iter uint32
	for {
		if iter >= maxIterations {
			return nil, ErrIterationLimit
		}

		cB, AB := basicObjects(n, isMax, B, c, A)
		ABinv, err := inverse(AB, n)
		if err != nil {
			return nil, err
		}

		xB := make([]float64, n)
		gemv(1.0, ABinv, b, 0.0, xB)

		// Leaving: most negative x_B[i], first-encountered wins ties.
		leaving := -1
		mostNegative := -tol
		for i := 0; i < n; i++ {
			if xB[i] < mostNegative {
				mostNegative = xB[i]
				leaving = i
			}
		}

		if leaving == -1 {
			// Primal feasible: optimal.
			return extractOptimal(n, width, isMax, B, xB, c, iter), nil
		}

		ABinvP := extractRow(ABinv, leaving)

		// Entering: among alpha_pj > tol, minimize -r_j/alpha_pj; smallest
		// index wins ties (ascending iteration, strict improvement only).
		entering := -1
		minRatio := 0.0
		for _, j := range eligibleNonBasic(B, width, artLo, artHi) {
			Aj := extractColumn(A, int(j))
			alpha := dot(ABinvP, Aj)
			if alpha > tol {
				r := reducedCost(int(j), isMax, c, cB, A, ABinv)
				ratio := -r / alpha
				if entering == -1 || ratio < minRatio {
					minRatio = ratio
					entering = int(j)
				}
			}
		}

		if entering == -1 {
			// Primal-infeasible at this basis: the B&B driver treats this
			// as a prune signal, the same way it treats unboundedness.
			return &tableau{unbounded: true, iters: iter}, nil
		}

		q := positionInN(N, int32(entering))
		pivot(B, N, leaving, q)
		iter++
	}
}

// extractOptimal assembles the full-width variable assignment and the
// objective value c^T x. Because the entering/leaving rules above already
// negate c on read for Minimize (Open Question Q1), the recovered x is the
// true optimum for either sense, and z = c^T x needs no further correction
// here (spec property P3: reported z equals c^T x for Max, -c^T(-x) = c^T x
// for Min).
func extractOptimal(n, width int, isMax bool, B []int32, xB []float64, c []float64, iter uint32) *tableau {
	x := make([]float64, width)
	for i := 0; i < n; i++ {
		x[B[i]] = xB[i]
	}

	z := 0.0
	for j := 0; j < width; j++ {
		z += c[j] * x[j]
	}

	return &tableau{x: x, z: z, iters: iter}
}
