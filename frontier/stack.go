package frontier

import "github.com/katalvlaran/degrees/core"

// Stack is a LIFO Frontier. It yields a path, not necessarily a shortest one.
type Stack struct {
	items   []Node
	pending states
}

var _ Frontier = (*Stack)(nil)

// NewStack returns an empty LIFO frontier.
func NewStack() *Stack {
	return &Stack{pending: make(states)}
}

// Add pushes n on top. Complexity: O(1) amortized.
func (s *Stack) Add(n Node) {
	s.items = append(s.items, n)
	s.pending.inc(n.State)
}

// RemoveNext pops the most recently added node. Complexity: O(1).
func (s *Stack) RemoveNext() (Node, error) {
	last := len(s.items) - 1
	if last < 0 {
		return Node{}, ErrEmptyFrontier
	}
	n := s.items[last]
	s.items = s.items[:last]
	s.pending.dec(n.State)

	return n, nil
}

// Empty reports whether the stack holds no nodes.
func (s *Stack) Empty() bool { return len(s.items) == 0 }

// Len returns the number of pending nodes.
func (s *Stack) Len() int { return len(s.items) }

// ContainsState reports whether a node with state l is pending. Complexity: O(1).
func (s *Stack) ContainsState(l core.Link) bool { return s.pending.has(l) }
