// Package frontier holds the pending nodes of a graph search.
//
// What
//
//   - Node: a (production, person) state plus the arena Handle of its parent
//     and its depth from the origin.
//   - Frontier: Add / RemoveNext / Empty / ContainsState / Len.
//   - Queue (FIFO) and Stack (LIFO) implementations, chosen with New(Discipline).
//
// Why FIFO matters
//
//	A Queue hands nodes back in non-decreasing depth order, which is exactly
//	what breadth-first search needs to guarantee that the first time the goal
//	is removed it was reached by a minimum number of links. A Stack gives no
//	such guarantee and must not back a shortest-path query.
//
// Parent links
//
//	Nodes do not point at each other. A search appends every node it removes
//	to an arena ([]Node) and later nodes refer to it by Handle. Since a child
//	is created only after its parent was appended, child handles are always
//	greater than parent handles and a parent chain cannot loop.
//
// Complexity
//
//   - Add, RemoveNext, Empty, ContainsState, Len: O(1) (amortized for Add).
//   - Memory: O(n) for n pending nodes, plus one map entry per distinct pending state.
package frontier
