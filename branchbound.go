package milp

// BnbTrace is an optional instrumentation hook into the Branch-and-Bound
// search (spec section 4.9 supplement): each method fires synchronously
// from the search loop. A nil BnbTrace disables all instrumentation and
// costs nothing beyond the nil check.
type BnbTrace interface {
	NewNode(n, m int)
	NodePruned(n, m int, reason string)
	NodeBranched(n, m, branchVar int, bound float64)
	IncumbentUpdated(z float64, x []float64)
}

// BranchAndBound runs the depth-first Branch-and-Bound search on p (spec
// section 4.9). p must already carry a valid Basis/NonBasis partition (see
// Problem.ensureInitialBasis, called by Problem.Solve before dispatching
// here). trace may be nil.
func BranchAndBound(p *Problem, trace BnbTrace) (*Solution, error) {
	isMax := p.Sense == Maximize

	arena := NewArena(MaxN, MaxM)
	arena.CopyProblem(p)
	vars := p.Vars.Clone()

	root := NewRootNode(arena, p.N, p.M)
	rootN, rootM := root.State.N, root.State.M

	// [artLo, artHi) is the root's reserved Phase-I artificial column
	// block (spec section 4.5.3): fixed once at root width and never
	// eligible to enter, at any depth, once Branch-and-Bound starts —
	// branch slacks are appended past it (see Node.Branch), never into it.
	artLo, artHi := rootM, rootN+rootM

	stack := NewNodeStack()
	stack.Push(*root)

	var incumbent *Solution
	var piiiIter uint32

	better := func(z float64) bool {
		if incumbent == nil {
			return true
		}
		if isMax {
			return z > incumbent.Z+tol
		}
		return z < incumbent.Z-tol
	}

	for !stack.Empty() {
		popped, _ := stack.Pop()
		nd := popped

		nd.Materialize(arena, vars)
		n, m := nd.State.N, nd.State.M
		width := n + m

		isRoot := n == rootN && m == rootM
		N := eligibleNonBasic(nd.Basis, width, artLo, artHi)

		var tab *tableau
		var err error
		if isRoot {
			tab, err = simplexPrimal(n, m, isMax, nd.C, nd.A, nd.B, nd.Basis, N, artLo, artHi)
		} else {
			tab, err = simplexDual(n, m, isMax, nd.C, nd.A, nd.B, nd.Basis, N, artLo, artHi)
		}

		if err == ErrSingular {
			if trace != nil {
				trace.NodePruned(n, m, "singular")
			}
			continue
		}
		if err != nil {
			return nil, err
		}

		if trace != nil {
			trace.NewNode(n, m)
		}

		if tab.unbounded {
			// At the root, unboundedness means the whole problem is
			// unbounded (spec section 4.9 step 2). At any other node it is
			// the dual Simplex's primal-infeasibility signal at that basis
			// and just prunes the branch (spec section 4.5.2).
			if isRoot {
				return newSolution(p.M, true), nil
			}
			if trace != nil {
				trace.NodePruned(n, m, "infeasible")
			}
			continue
		}
		piiiIter += tab.iters

		if !better(tab.z) {
			if trace != nil {
				trace.NodePruned(n, m, "bound")
			}
			continue
		}

		relax := newSolution(p.M, false)
		copy(relax.X, tab.x[:p.M])
		relax.Z = tab.z

		branchVar := relax.FirstFractionalInteger(vars)
		if branchVar == -1 {
			incumbent = relax
			incumbent.PIIter = p.piIter
			incumbent.PIIIter = piiiIter
			if trace != nil {
				trace.IncumbentUpdated(incumbent.Z, incumbent.X)
			}
			continue
		}

		bound := tab.x[branchVar]
		if trace != nil {
			trace.NodeBranched(n, m, branchVar, bound)
		}

		// Q3: branch directions are U then L, never U twice. Pushed in
		// reverse so U is popped (and so materialized/explored) first.
		stack.Push(nd.Defer(branchVar, bound, DirLower))
		stack.Push(nd.Defer(branchVar, bound, DirUpper))
	}

	if incumbent == nil {
		return nil, ErrNoIntegerSolution
	}
	return incumbent, nil
}
