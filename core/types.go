// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Entity types, GraphOption, sentinel errors and the NewGraph constructor.
// Errors:
//   - ErrEmptyID: person or production ID is the empty string.
//   - ErrPersonNotFound: requested person does not exist.
//   - ErrProductionNotFound: requested production does not exist.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyID indicates that a person or production was given an empty ID.
	ErrEmptyID = errors.New("core: entity ID is empty")

	// ErrPersonNotFound indicates an operation referenced a non-existent person.
	ErrPersonNotFound = errors.New("core: person not found")

	// ErrProductionNotFound indicates an operation referenced a non-existent production.
	ErrProductionNotFound = errors.New("core: production not found")
)

// Person is one side of the cast graph.
type Person struct {
	// ID uniquely identifies this Person within its Graph.
	ID string

	// Name is the display name. Several people may share one name.
	Name string

	// Birth is the birth year as recorded by the source data; may be empty.
	Birth string
}

// Production is the other side of the cast graph (a movie, a show, a play).
type Production struct {
	// ID uniquely identifies this Production within its Graph.
	ID string

	// Title is the display title.
	Title string

	// Year is the release year as recorded by the source data; may be empty.
	Year string
}

// Link is a single (production, person) pair: "Person appears in Production".
//
// Neighbors returns Links, the search engine uses a Link as the state of a
// search node, and a path is an ordered sequence of Links.
type Link struct {
	// Production is the ID of the shared production.
	Production string

	// Person is the ID of the person reached through Production.
	Person string
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the people and production catalogs.
// Non-positive values are ignored.
func WithCapacity(people, productions int) GraphOption {
	return func(g *Graph) {
		if people > 0 {
			g.peopleHint = people
		}
		if productions > 0 {
			g.productionsHint = productions
		}
	}
}

// Graph is the in-memory cast graph.
//
// mu guards every map below. Readers (Neighbors, Person, PeopleByName, ...)
// hold the read lock for one call only: two successive Neighbors calls may
// straddle a writer. A caller that needs one consistent view across many
// calls, such as a whole search, reads from Snapshot instead.
type Graph struct {
	mu sync.RWMutex

	// sizing hints, consumed by NewGraph
	peopleHint      int
	productionsHint int

	people      map[string]*Person     // person ID → Person
	productions map[string]*Production // production ID → Production

	// names[lower(Name)][personID] = struct{}{}
	names map[string]map[string]struct{}

	// credits in both directions:
	// roles[personID][productionID] and cast[productionID][personID]
	roles map[string]map[string]struct{}
	cast  map[string]map[string]struct{}

	credits int // number of distinct (person, production) credits
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1) plus the requested pre-allocation.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	g.people = make(map[string]*Person, g.peopleHint)
	g.productions = make(map[string]*Production, g.productionsHint)
	g.names = make(map[string]map[string]struct{}, g.peopleHint)
	g.roles = make(map[string]map[string]struct{}, g.peopleHint)
	g.cast = make(map[string]map[string]struct{}, g.productionsHint)

	return g
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	People      int
	Productions int
	Credits     int
	Names       int // distinct case-folded names
}
