package milp

import (
	"fmt"
	"io"
)

// TreeLogger is a BnbTrace that records every node visited during a
// Branch-and-Bound run, in pop order, so the search can be rendered
// afterwards. It carries no algorithm business logic, only a record of
// decisions (adapted from the teacher's logTree/TreeLogger).
type TreeLogger struct {
	nodes []traceNode
}

type traceNode struct {
	tag string
	z   float64
	x   []float64
}

// NewTreeLogger returns an empty logger.
func NewTreeLogger() *TreeLogger {
	return &TreeLogger{}
}

func (t *TreeLogger) record(tag string) {
	t.nodes = append(t.nodes, traceNode{tag: tag})
}

// NewNode records that a relaxation was solved at (n, m).
func (t *TreeLogger) NewNode(n, m int) {
	t.record(fmt.Sprintf("solved n=%d m=%d", n, m))
}

// NodePruned records why a node was discarded without branching.
func (t *TreeLogger) NodePruned(n, m int, reason string) {
	t.record(fmt.Sprintf("pruned (%s) n=%d m=%d", reason, n, m))
}

// NodeBranched records the branching decision taken at a node.
func (t *TreeLogger) NodeBranched(n, m, branchVar int, bound float64) {
	t.record(fmt.Sprintf("branch x%d @ %.4g n=%d m=%d", branchVar, bound, n, m))
}

// IncumbentUpdated records a new incumbent.
func (t *TreeLogger) IncumbentUpdated(z float64, x []float64) {
	t.nodes = append(t.nodes, traceNode{
		tag: "incumbent",
		z:   z,
		x:   append([]float64(nil), x...),
	})
}

// ToDOT writes a Graphviz DOT rendering of the recorded visit sequence to
// out: a simple chain, since the flattened log does not retain true
// parent/child structure, but color-codes pruning, branching, and
// incumbent events for quick visual scanning.
func (t *TreeLogger) ToDOT(out io.Writer) {
	writeRow := func(format string, args ...interface{}) {
		fmt.Fprintf(out, format+"\n", args...)
	}

	writeRow("digraph bnbtree {")
	writeRow("node [fontname=Courier,shape=rectangle];")
	writeRow("edge [color=Blue, style=dashed];")

	for i, n := range t.nodes {
		color := "Gray"
		switch {
		case n.tag == "incumbent":
			color = "Green"
		case len(n.tag) >= 6 && n.tag[:6] == "pruned":
			color = "Red"
		case len(n.tag) >= 6 && n.tag[:6] == "branch":
			color = "Black"
		}
		label := n.tag
		if n.tag == "incumbent" {
			label = fmt.Sprintf("incumbent z=%.4g", n.z)
		}
		writeRow("%d [label=%q,color=%s];", i, label, color)
	}
	for i := 1; i < len(t.nodes); i++ {
		writeRow("%d -> %d ;", i-1, i)
	}
	writeRow("}")
}
