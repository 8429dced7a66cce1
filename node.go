package milp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Direction is the bound direction a branch imposes on a variable (spec
// section 4.7): U for x_j <= floor(bound), L for x_j >= ceil(bound).
type Direction int

const (
	DirUpper Direction = iota
	DirLower
)

// NodeState is a (n, m) dimension pair: a node's current or parent extent.
type NodeState struct {
	N, M int
}

// Node is a cursor into an Arena: its current dimensions, its parent's
// dimensions, and typed views over the shared c/A/b/Basis blocks (spec
// section 4.7). A Node owns no heap memory of its own; it is only valid
// while its dimensions do not exceed the arena's configured maximum and
// while no ancestor has been reverted past it.
type Node struct {
	State  NodeState
	Parent NodeState

	C     []float64
	A     *mat.Dense
	B     []float64
	Basis []int32

	// A node pushed onto the search stack before its bound row has been
	// written carries its branch instruction here instead: materializing
	// it (the Branch call, and the single arena write it performs) is
	// deferred until the node is popped, since the sibling sharing this
	// same (n, m) append slot must finish its entire subtree first (spec
	// section 4.6/4.8 — the arena has room for only one pending row per
	// depth at a time).
	HasPending   bool
	PendingVar   int
	PendingBound float64
	PendingDir   Direction
}

// NewRootNode builds the root node of a Branch-and-Bound run: current and
// parent dimensions coincide.
func NewRootNode(arena *Arena, n, m int) *Node {
	nd := &Node{State: NodeState{N: n, M: m}, Parent: NodeState{N: n, M: m}}
	nd.refreshViews(arena)
	return nd
}

// Defer records a branch instruction on an unmaterialized copy of nd without
// touching the arena; Materialize performs the actual Branch call later, at
// pop time.
func (nd Node) Defer(branchVar int, bound float64, dir Direction) Node {
	nd.HasPending = true
	nd.PendingVar = branchVar
	nd.PendingBound = bound
	nd.PendingDir = dir
	return nd
}

// Materialize applies a deferred branch instruction, if any, growing the
// node by one row/column exactly as Branch does.
func (nd *Node) Materialize(arena *Arena, vars *VarRegistry) {
	if !nd.HasPending {
		return
	}
	branchVar, bound, dir := nd.PendingVar, nd.PendingBound, nd.PendingDir
	nd.HasPending = false
	nd.Branch(arena, branchVar, bound, dir, vars)
}

func newNodeAt(arena *Arena, n, m int, parent NodeState) *Node {
	nd := &Node{State: NodeState{N: n, M: m}, Parent: parent}
	nd.refreshViews(arena)
	return nd
}

func (nd *Node) refreshViews(arena *Arena) {
	nd.C = arena.ViewC(nd.State.N, nd.State.M)
	nd.A = arena.ViewA(nd.State.N, nd.State.M)
	nd.B = arena.ViewB(nd.State.N)
	nd.Basis = arena.ViewBasis(nd.State.N)
}

// Branch grows the node by exactly one row and one column, imposing a
// bound on variable branchVar in the given direction (spec section 4.7):
//
//	DirUpper: x[branchVar] <= floor(bound); new slack column has A[n,slot] = +1
//	DirLower: x[branchVar] >= ceil(bound);  new surplus column has A[n,slot] = -1
//
// The new column is written at column index n+m, the next column physically
// unused at this node — never at index m: for a node descended from the
// root, columns [root M, root M+root N) are the reserved Phase-I artificial
// block (see NewProblem/Problem.phaseI), and writing a branch slack there
// would alias it onto an artificial column still carrying Phase-I data,
// corrupting A_B. n+m skips past that block on the very first branch (root
// width already equals root M + root N) and past every later branch's own
// slack on every branch after.
//
// The new column's slack/surplus variable enters the basis directly (the
// appended row is trivially "basic" in its own slack), and a Real-positive
// descriptor for it is pushed onto vars.
func (nd *Node) Branch(arena *Arena, branchVar int, bound float64, dir Direction, vars *VarRegistry) {
	parent := nd.State
	n, m := parent.N, parent.M
	slot := n + m

	var rhs, sign float64
	if dir == DirUpper {
		rhs = math.Floor(bound)
		sign = 1.0
	} else {
		rhs = math.Ceil(bound)
		sign = -1.0
	}

	*nd = *newNodeAt(arena, n+1, m+1, parent)

	// Row n may still hold a coefficient from an earlier branch at this
	// depth on a different variable; clear it so the row is a pure bound row.
	_, cols := nd.A.Dims()
	for j := 0; j < cols; j++ {
		nd.A.Set(n, j, 0)
	}

	nd.B[n] = rhs
	nd.A.Set(n, branchVar, 1.0)
	nd.A.Set(n, slot, sign)
	nd.Basis[n] = int32(slot)

	vars.Push(NewRealPositive(largeUB))
}

// RevertToParent resets the node's dimensions to its saved parent state.
// The arena content beyond the parent's block is now logically garbage; it
// is not cleared, since the next Branch call overwrites exactly the cells
// it needs.
func (nd *Node) RevertToParent(arena *Arena) {
	parent := nd.Parent
	*nd = *newNodeAt(arena, parent.N, parent.M, parent)
}
