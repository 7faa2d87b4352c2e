// File: methods_people.go
// Role: Person lifecycle & queries.
//
// Determinism:
//   - PeopleByName() and ProductionsOf() return results sorted by ID ascending.
//
// Concurrency:
//   - All catalogs are protected by g.mu.
package core

import (
	"sort"
	"strings"
)

// foldName is the key used by the name index. Lookups are case-insensitive
// exact matches, nothing fancier.
func foldName(name string) string {
	return strings.ToLower(name)
}

// AddPerson inserts p, or updates the attributes of an existing person with the same ID.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyID).
//   - Stage 2: Under the write lock, drop the old name-index entry if the name changed.
//   - Stage 3: Store a private copy of p and index it under its folded name.
//
// Behavior highlights:
//   - Idempotent for identical re-adds.
//   - Credits already attached to the ID are preserved on update.
//
// Errors:
//   - ErrEmptyID: if p.ID == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddPerson(p Person) error {
	if p.ID == "" {
		return ErrEmptyID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if old, ok := g.people[p.ID]; ok {
		if *old == p {
			return nil // no-op for identical person
		}
		g.unindexName(old.Name, old.ID)
	}

	rec := p
	g.people[p.ID] = &rec
	g.indexName(p.Name, p.ID)

	return nil
}

// indexName adds id under name. Caller holds the write lock.
func (g *Graph) indexName(name, id string) {
	key := foldName(name)
	bucket, ok := g.names[key]
	if !ok {
		bucket = make(map[string]struct{}, 1)
		g.names[key] = bucket
	}
	bucket[id] = struct{}{}
}

// unindexName removes id from name, dropping empty buckets. Caller holds the write lock.
func (g *Graph) unindexName(name, id string) {
	key := foldName(name)
	bucket, ok := g.names[key]
	if !ok {
		return
	}
	delete(bucket, id)
	if len(bucket) == 0 {
		delete(g.names, key)
	}
}

// HasPerson reports whether the person ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasPerson(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.people[id]

	return ok
}

// Person returns a copy of the person stored under id.
//
// Errors:
//   - ErrEmptyID: if id == "".
//   - ErrPersonNotFound: if no such person exists.
func (g *Graph) Person(id string) (Person, error) {
	if id == "" {
		return Person{}, ErrEmptyID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, ok := g.people[id]
	if !ok {
		return Person{}, ErrPersonNotFound
	}

	return *p, nil
}

// PeopleByName returns every person whose name matches name case-insensitively,
// sorted by ID ascending. An unknown name yields an empty (nil) slice.
// Complexity: O(k log k) where k is the number of matches.
func (g *Graph) PeopleByName(name string) []Person {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket := g.names[foldName(name)]
	if len(bucket) == 0 {
		return nil
	}

	out := make([]Person, 0, len(bucket))
	for id := range bucket {
		out = append(out, *g.people[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// ProductionsOf returns the IDs of every production the person is credited in,
// sorted ascending. An unknown person yields an empty (nil) slice.
func (g *Graph) ProductionsOf(personID string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.roles[personID])
}

// sortedKeys returns the keys of set in ascending order, or nil for an empty set.
func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
