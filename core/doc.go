// Package core provides a thread-safe in-memory cast graph: people,
// productions, and the credits that connect them.
//
// The graph G = (P ∪ M, C) is bipartite:
//
//   - P: people (Person), identified by an opaque string ID
//   - M: productions (Production), identified by an opaque string ID
//   - C: credits, "person p appears in production m"
//
// Search never walks the bipartite graph directly. It asks for the
// one-hop neighborhood of a person through Neighbors, which folds the
// person → production → person hop into a single Link:
//
//	     m1
//	A ───────── B        Neighbors("A") = [(m1,A) (m1,B) (m2,A) (m2,C)]
//	│    m2
//	└────────── C
//
// Core Methods:
//
//	// Catalog
//	AddPerson(p Person) error                 // O(1)
//	AddProduction(m Production) error         // O(1)
//	AddCredit(personID, productionID) error   // O(1)
//
//	// Query
//	Person(id) (Person, error)                // O(1)
//	Production(id) (Production, error)        // O(1)
//	PeopleByName(name) []Person               // O(k log k), case-insensitive
//	ProductionsOf(personID) []string          // O(r log r)
//	CastOf(productionID) []string             // O(c log c)
//	Neighbors(personID) []Link                // O(d log d), unknown id → empty
//	Stats() GraphStats                        // O(1)
//
// Determinism:
//
//	Every slice-returning query is sorted, so searches over the same graph
//	visit people in the same order on every run.
//
// Concurrency:
//
//	A single sync.RWMutex guards all catalogs. Readers may run concurrently
//	with each other; a writer blocks readers only for the duration of one
//	insert. Searches should not run while the graph is still being loaded
//	if they need a stable answer.
package core
