package milp

import (
	"errors"
	"fmt"
)

// Sentinel errors for the solver's fixed error taxonomy (spec section 7).
// Unboundedness is not an error: it is reported on Solution.Unbounded.
var (
	// ErrUsage names the CLI-misuse error kind. cmd/solver does not return
	// it: it prints its usage line and exits with code 2 directly.
	ErrUsage = errors.New("milp: usage error")

	// ErrInfeasible is returned when Phase-I cannot drive the artificial
	// variables to zero: the feasible region is empty.
	ErrInfeasible = errors.New("milp: problem is infeasible")

	// ErrSingular is returned when a basic matrix fails to invert because a
	// pivot fell below the kernel's tolerance. Should not occur given I4,
	// but is always checked for rather than assumed away.
	ErrSingular = errors.New("milp: singular basis matrix")

	// ErrIterationLimit is returned when a Simplex run hits its iteration
	// cap without reaching optimality or detecting unboundedness.
	ErrIterationLimit = errors.New("milp: iteration limit reached")

	// ErrNoIntegerSolution is returned by the Branch-and-Bound driver when
	// the search tree is exhausted without ever finding an integer-feasible
	// node (the LP relaxation tree was entirely pruned or infeasible).
	ErrNoIntegerSolution = errors.New("milp: no integer-feasible solution found")
)

// ParseError reports malformed model input (spec section 7's ParseError(detail)).
type ParseError struct {
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("milp: parse error: %s", e.Detail)
}

func newParseError(format string, args ...interface{}) error {
	return &ParseError{Detail: fmt.Sprintf(format, args...)}
}
