// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// helpers.go — shared insert helpers; every error carries the constructor name.

package builder

import (
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

// addPeople inserts n fresh people and returns their IDs in creation order.
// A person's Name equals its ID, which keeps fixtures resolvable by name.
func addPeople(g *core.Graph, cfg *builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		id := cfg.nextPerson()
		if err := g.AddPerson(core.Person{ID: id, Name: id}); err != nil {
			return nil, fmt.Errorf("%s: AddPerson(%s): %w: %w", method, id, err, ErrConstructFailed)
		}
		ids[i] = id
	}
	return ids, nil
}

// addProduction inserts one fresh production and returns its ID.
func addProduction(g *core.Graph, cfg *builderConfig, method string) (string, error) {
	id := cfg.nextProduction()
	if err := g.AddProduction(core.Production{ID: id, Title: id}); err != nil {
		return "", fmt.Errorf("%s: AddProduction(%s): %w: %w", method, id, err, ErrConstructFailed)
	}
	return id, nil
}

// credit records every person in production, in the given order.
func credit(g *core.Graph, method, production string, people ...string) error {
	for _, p := range people {
		if err := g.AddCredit(p, production); err != nil {
			return fmt.Errorf("%s: AddCredit(%s,%s): %w: %w", method, p, production, err, ErrConstructFailed)
		}
	}
	return nil
}
