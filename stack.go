package milp

// stackFrame is one entry of the singly-linked LIFO node stack (spec
// section 4.8). Nodes are stored by value: a Node is cheap (a handful of
// integers plus view descriptors into the shared arena), so copying it in
// and out of the stack costs nothing beyond the copy itself.
type stackFrame struct {
	node Node
	next *stackFrame
}

// NodeStack is the depth-first traversal stack for the Branch-and-Bound
// search.
type NodeStack struct {
	top  *stackFrame
	size int
}

// NewNodeStack returns an empty stack.
func NewNodeStack() *NodeStack {
	return &NodeStack{}
}

// Push adds node to the top of the stack.
func (s *NodeStack) Push(node Node) {
	s.top = &stackFrame{node: node, next: s.top}
	s.size++
}

// Pop removes and returns the top node. ok is false if the stack was empty.
func (s *NodeStack) Pop() (node Node, ok bool) {
	if s.top == nil {
		return Node{}, false
	}
	node = s.top.node
	s.top = s.top.next
	s.size--
	return node, true
}

// Empty reports whether the stack has no nodes.
func (s *NodeStack) Empty() bool {
	return s.top == nil
}

// Size returns the number of nodes currently on the stack.
func (s *NodeStack) Size() int {
	return s.size
}

// Free drops every frame, allowing them to be garbage collected.
func (s *NodeStack) Free() {
	s.top = nil
	s.size = 0
}
