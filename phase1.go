package milp

// phaseI runs the Phase-I feasibility bootstrap (spec section 4.5.3) when no
// ready-made unit-identity basis is available: one artificial variable per
// row, using the N reserved columns [M, M+N) that NewProblem already set
// aside for exactly this purpose, minimizing their sum. A final objective
// value greater than tol means no feasible point exists (ErrInfeasible);
// otherwise the recovered basis seeds Phase-II.
func (p *Problem) phaseI() error {
	p.normalizeRHS()

	width := p.Width()
	n, m := p.N, p.M

	cAux := make([]float64, width)
	auxBasis := make([]int32, n)
	for i := 0; i < n; i++ {
		art := m + i
		p.A.Set(i, art, 1.0)
		cAux[art] = 1.0
		auxBasis[i] = int32(art)
	}
	auxNonBasis := complementOf(auxBasis, width)

	// artLo==artHi: no column is excluded from entering here; the
	// artificial columns are ordinary variables of the auxiliary problem.
	t, err := simplexPrimal(n, m, false, cAux, p.A, p.B, auxBasis, auxNonBasis, 0, 0)
	if err != nil {
		return err
	}
	if t.unbounded {
		// The auxiliary problem (minimize a sum of nonnegative artificials,
		// all of them nonnegative by construction) can never be unbounded.
		return ErrSingular
	}
	if t.z > tol {
		return ErrInfeasible
	}

	p.piIter = t.iters

	for _, b := range auxBasis {
		if int(b) >= m && t.x[b] > tol {
			return ErrInfeasible
		}
	}

	// Artificial columns are left in A exactly as built above (cost 0 in
	// p.C, since NewProblem never touches the reserved [M, M+N) block): if
	// one stays basic at zero after a degenerate Phase-I, its column is
	// still the unit vector that made it feasible, so A_B stays
	// nonsingular going into Phase-II.
	p.Basis = auxBasis
	p.NonBasis = complementOf(auxBasis, width)

	return nil
}
