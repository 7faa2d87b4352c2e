package frontier

import "github.com/katalvlaran/degrees/core"

// compactThreshold is the minimum number of consumed slots before Queue
// considers reclaiming them.
const compactThreshold = 64

// Queue is a FIFO Frontier.
//
// Nodes live in a slice; RemoveNext advances head instead of re-slicing so
// the consumed prefix can be reclaimed in one copy once it dominates.
type Queue struct {
	items   []Node
	head    int
	pending states
}

var _ Frontier = (*Queue)(nil)

// NewQueue returns an empty FIFO frontier.
func NewQueue() *Queue {
	return &Queue{pending: make(states)}
}

// Add appends n at the tail. Complexity: O(1) amortized.
func (q *Queue) Add(n Node) {
	q.items = append(q.items, n)
	q.pending.inc(n.State)
}

// RemoveNext removes and returns the earliest-added node.
// Complexity: O(1) amortized.
func (q *Queue) RemoveNext() (Node, error) {
	if q.Empty() {
		return Node{}, ErrEmptyFrontier
	}

	n := q.items[q.head]
	q.items[q.head] = Node{}
	q.head++
	q.pending.dec(n.State)

	switch {
	case q.head == len(q.items):
		q.items = q.items[:0]
		q.head = 0
	case q.head >= compactThreshold && q.head*2 >= len(q.items):
		live := copy(q.items, q.items[q.head:])
		q.items = q.items[:live]
		q.head = 0
	}

	return n, nil
}

// Empty reports whether the queue holds no nodes.
func (q *Queue) Empty() bool { return q.head == len(q.items) }

// Len returns the number of pending nodes.
func (q *Queue) Len() int { return len(q.items) - q.head }

// ContainsState reports whether a node with state s is pending. Complexity: O(1).
func (q *Queue) ContainsState(s core.Link) bool { return q.pending.has(s) }

// states counts pending nodes per state so ContainsState stays O(1)
// even though duplicates are allowed.
type states map[core.Link]int

func (s states) inc(l core.Link) { s[l]++ }

func (s states) dec(l core.Link) {
	if s[l] <= 1 {
		delete(s, l)
		return
	}
	s[l]--
}

func (s states) has(l core.Link) bool { return s[l] > 0 }
