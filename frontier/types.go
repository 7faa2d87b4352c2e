// File: types.go
// Role: Node, Handle, the Frontier interface and the New constructor.

package frontier

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

// Sentinel errors for frontier operations.
var (
	// ErrEmptyFrontier is returned by RemoveNext on an empty frontier.
	ErrEmptyFrontier = errors.New("frontier: empty frontier")

	// ErrUnknownDiscipline is returned by New for a Discipline it does not know.
	ErrUnknownDiscipline = errors.New("frontier: unknown discipline")
)

// Handle indexes a Node in the arena of expanded nodes kept by a search.
// A node's handle is always greater than its parent's.
type Handle int

// Root is the parent handle of nodes adjacent to the search origin.
// The origin itself never becomes a Node.
const Root Handle = -1

// Node is one state reached during a search: the person in State.Person,
// reached through the production in State.Production.
type Node struct {
	// State is the (production, person) pair identifying this node.
	State core.Link

	// Parent is the arena handle of the node this one was expanded from,
	// or Root for the origin's direct neighbors.
	Parent Handle

	// Depth is the number of Links from the origin to this node (≥ 1).
	Depth int
}

// Discipline selects the removal order of a Frontier.
type Discipline uint8

const (
	// FIFO removes the earliest-added node (breadth-first).
	FIFO Discipline = iota
	// LIFO removes the most recently added node (depth-first).
	LIFO
)

// String returns "fifo", "lifo", or "discipline(N)".
func (d Discipline) String() string {
	switch d {
	case FIFO:
		return "fifo"
	case LIFO:
		return "lifo"
	default:
		return fmt.Sprintf("discipline(%d)", uint8(d))
	}
}

// Frontier is an ordered multiset of pending nodes.
//
// A Frontier performs no duplicate suppression: adding the same State twice
// stores it twice. ContainsState lets callers skip such adds if they want.
type Frontier interface {
	// Add inserts n.
	Add(n Node)
	// RemoveNext removes and returns one node according to the discipline.
	// Returns ErrEmptyFrontier if the frontier is empty.
	RemoveNext() (Node, error)
	// Empty reports whether no nodes are pending.
	Empty() bool
	// ContainsState reports whether a node with state s is pending.
	ContainsState(s core.Link) bool
	// Len returns the number of pending nodes.
	Len() int
}

// New returns an empty Frontier with the given discipline.
func New(d Discipline) (Frontier, error) {
	switch d {
	case FIFO:
		return NewQueue(), nil
	case LIFO:
		return NewStack(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDiscipline, d)
	}
}
