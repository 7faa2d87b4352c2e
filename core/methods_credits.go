// File: methods_credits.go
// Role: Credit lifecycle and the neighborhood API used by search.
// Determinism:
//   - Neighbors() sorts by (Production, Person) ascending.
// Concurrency:
//   - AddCredit takes the write lock; Neighbors holds the read lock for the whole scan.

package core

import "sort"

// AddCredit records that the person appears in the production.
//
// Implementation:
//   - Stage 1: Validate non-empty IDs (ErrEmptyID).
//   - Stage 2: Under the write lock, verify both endpoints exist.
//   - Stage 3: Insert the credit into both directions (roles and cast).
//
// Behavior highlights:
//   - Idempotent: recording the same credit twice is a no-op.
//   - Never creates people or productions implicitly.
//
// Errors:
//   - ErrEmptyID: if either ID is empty.
//   - ErrPersonNotFound: if the person does not exist.
//   - ErrProductionNotFound: if the production does not exist.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddCredit(personID, productionID string) error {
	if personID == "" || productionID == "" {
		return ErrEmptyID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.people[personID]; !ok {
		return ErrPersonNotFound
	}
	if _, ok := g.productions[productionID]; !ok {
		return ErrProductionNotFound
	}

	roles, ok := g.roles[personID]
	if !ok {
		roles = make(map[string]struct{})
		g.roles[personID] = roles
	}
	if _, dup := roles[productionID]; dup {
		return nil
	}
	roles[productionID] = struct{}{}

	cast, ok := g.cast[productionID]
	if !ok {
		cast = make(map[string]struct{})
		g.cast[productionID] = cast
	}
	cast[personID] = struct{}{}
	g.credits++

	return nil
}

// HasCredit reports whether the person is credited in the production.
func (g *Graph) HasCredit(personID, productionID string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.roles[personID][productionID]

	return ok
}

// Neighbors returns every (production, co-star) pair reachable from personID
// in one hop: for each production the person is credited in, one Link per
// person credited in that production.
//
// Neighborhood policy:
//   - The person itself is included, paired with each of its productions.
//     Callers that care (the search engine does not) filter it out.
//   - An unknown or empty personID yields an empty result, not an error:
//     a person nobody knows is simply connected to nobody.
//
// Implementation:
//   - Stage 1: Acquire the read lock for the duration of this call.
//   - Stage 2: Collect one Link per (production, cast member).
//   - Stage 3: Sort by Production, then Person, ascending.
//
// Returns:
//   - []Link: a fresh slice owned by the caller.
//
// Determinism:
//   - Deterministic order by contract, independent of map iteration.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the number of Links returned.
func (g *Graph) Neighbors(personID string) []Link {
	g.mu.RLock()
	defer g.mu.RUnlock()

	roles := g.roles[personID]
	if len(roles) == 0 {
		return nil
	}

	size := 0
	for pid := range roles {
		size += len(g.cast[pid])
	}

	out := make([]Link, 0, size)
	for pid := range roles {
		for member := range g.cast[pid] {
			out = append(out, Link{Production: pid, Person: member})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Production != out[j].Production {
			return out[i].Production < out[j].Production
		}
		return out[i].Person < out[j].Person
	})

	return out
}
