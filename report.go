package milp

import (
	"fmt"
	"io"
)

// FormatProblem writes a human-readable dump of p's objective, constraints,
// and variables (spec section 6), grounded in the original solver's
// problem_print.
func FormatProblem(w io.Writer, p *Problem) {
	sense := "min"
	if p.Sense == Maximize {
		sense = "max"
	}

	fmt.Fprintf(w, "================== Problem ==================\n")
	fmt.Fprintf(w, "%s  c = (", sense)
	for j := 0; j < p.M; j++ {
		if j > 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprintf(w, "%.3f", p.C[j])
	}
	fmt.Fprintf(w, ")\n")

	fmt.Fprintf(w, "subject to (%d constraints, %d structural variables):\n", p.N, p.M)
	for i := 0; i < p.N; i++ {
		fmt.Fprintf(w, "  (")
		for j := 0; j < p.M; j++ {
			if j > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "%.3f", p.A.At(i, j))
		}
		fmt.Fprintf(w, ") x = %.3f\n", p.B[i])
	}

	fmt.Fprintf(w, "variables:\n")
	for j := 0; j < p.M; j++ {
		v := p.Vars.Get(j)
		fmt.Fprintf(w, "  x%d: %s in [%.3f, %.3f]\n", j, v.Kind, v.Lb, v.Ub)
	}
}

// FormatSolution writes the spec section 6 solution banner.
func FormatSolution(w io.Writer, s *Solution) {
	fmt.Fprintf(w, "\n================== Solution ==================\n")
	if s.Unbounded {
		fmt.Fprintf(w, "infinite\n")
		return
	}

	fmt.Fprintf(w, "Optimal found in %d iterations (PhaseI %d + PhaseII %d)\n",
		s.PIIter+s.PIIIter, s.PIIter, s.PIIIter)
	fmt.Fprintf(w, "z*: %.6f\n", s.Z)
	fmt.Fprintf(w, "x*: (")
	for i, v := range s.X {
		if i > 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprintf(w, "%.3f", v)
	}
	fmt.Fprintf(w, ")\n")
}
