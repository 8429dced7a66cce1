package milp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeStackLIFO(t *testing.T) {
	s := NewNodeStack()
	assert.True(t, s.Empty())

	s.Push(Node{State: NodeState{N: 1, M: 1}})
	s.Push(Node{State: NodeState{N: 2, M: 2}})
	assert.Equal(t, 2, s.Size())

	top, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, NodeState{N: 2, M: 2}, top.State)

	top, ok = s.Pop()
	assert.True(t, ok)
	assert.Equal(t, NodeState{N: 1, M: 1}, top.State)

	_, ok = s.Pop()
	assert.False(t, ok)
	assert.True(t, s.Empty())
}

func TestNodeStackFree(t *testing.T) {
	s := NewNodeStack()
	s.Push(Node{})
	s.Push(Node{})
	s.Free()
	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.Size())
}
