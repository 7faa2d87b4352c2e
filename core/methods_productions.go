// File: methods_productions.go
// Role: Production lifecycle & queries.
package core

// AddProduction inserts m, or updates the attributes of an existing production
// with the same ID. Credits already attached to the ID are preserved.
//
// Errors:
//   - ErrEmptyID: if m.ID == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddProduction(m Production) error {
	if m.ID == "" {
		return ErrEmptyID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	rec := m
	g.productions[m.ID] = &rec

	return nil
}

// HasProduction reports whether the production ID exists (empty ID ⇒ false).
func (g *Graph) HasProduction(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.productions[id]

	return ok
}

// Production returns a copy of the production stored under id.
//
// Errors:
//   - ErrEmptyID: if id == "".
//   - ErrProductionNotFound: if no such production exists.
func (g *Graph) Production(id string) (Production, error) {
	if id == "" {
		return Production{}, ErrEmptyID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	m, ok := g.productions[id]
	if !ok {
		return Production{}, ErrProductionNotFound
	}

	return *m, nil
}

// CastOf returns the IDs of every person credited in the production,
// sorted ascending. An unknown production yields an empty (nil) slice.
func (g *Graph) CastOf(productionID string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.cast[productionID])
}
