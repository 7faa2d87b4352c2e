// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over whole catalogs.
// Policy:
//   - No algorithms here.
//   - Every exported function documents complexity.

package core

import "sort"

// IsNil reports whether the receiver is nil; safe on a typed nil stored in an interface.
func (g *Graph) IsNil() bool { return g == nil }

// Stats produces a read-only snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Copy the catalog lengths and the credit counter.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return GraphStats{
		People:      len(g.people),
		Productions: len(g.productions),
		Credits:     g.credits,
		Names:       len(g.names),
	}
}

// PersonIDs returns every person ID sorted ascending.
// Complexity: O(P log P).
func (g *Graph) PersonIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.people))
	for id := range g.people {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// ProductionIDs returns every production ID sorted ascending.
// Complexity: O(M log M).
func (g *Graph) ProductionIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.productions))
	for id := range g.productions {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
