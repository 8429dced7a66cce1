// Package milp implements a revised primal/dual Simplex engine and an
// arena-backed depth-first Branch-and-Bound search for Mixed-Integer Linear
// Programs in standard equality form:
//
//	optimize  c^T x   subject to  A x = b,  x >= 0
//
// with a subset of the components of x constrained to integer or binary
// values. The continuous relaxation is solved with the revised Simplex
// method (primal, dual, and a primal Phase-I feasibility bootstrap); the
// Branch-and-Bound search enforces integrality on top of it, reusing a
// single contiguous tableau buffer across the whole search tree so that a
// child node's extra bound row and slack column cost one append instead of
// a tableau copy.
package milp
