// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Point-in-time copies of a cast graph.
// Concurrency:
//   - Read lock on the source for the whole copy; the source is never mutated.
//   - The copy shares no maps with the source, so later writes on either
//     side stay invisible to the other.

package core

// Snapshot returns a deep copy of the Graph as it stands now: people,
// productions, name index and credits in both directions.
//
// A search that must not observe concurrent writes runs against a snapshot
// instead of the live graph; Neighbors on the live graph only locks per call.
//
// Implementation:
//   - Stage 1: Acquire the read lock once for the whole copy.
//   - Stage 2: Copy catalogs, cloning each record.
//   - Stage 3: Copy the name index and both credit directions, set by set.
//
// Complexity:
//   - Time O(P + M + C), Space O(P + M + C).
func (g *Graph) Snapshot() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	snap := NewGraph(WithCapacity(len(g.people), len(g.productions)))

	for id, p := range g.people {
		cp := *p
		snap.people[id] = &cp
	}
	for id, m := range g.productions {
		cm := *m
		snap.productions[id] = &cm
	}

	copySets(snap.names, g.names)
	copySets(snap.roles, g.roles)
	copySets(snap.cast, g.cast)
	snap.credits = g.credits

	return snap
}

// copySets copies every inner set of src into dst.
func copySets(dst, src map[string]map[string]struct{}) {
	for k, set := range src {
		inner := make(map[string]struct{}, len(set))
		for id := range set {
			inner[id] = struct{}{}
		}
		dst[k] = inner
	}
}
