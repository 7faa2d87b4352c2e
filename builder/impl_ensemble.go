// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// impl_ensemble.go — Ensemble(n) and Loner().
//
// Ensemble is the complete bipartite K_{1,n}: one production, n people, every
// pair of people one degree apart. Loner is K_{1,1}: a person whose only
// production nobody else is in, i.e. connected to no one.

package builder

import (
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

const (
	methodEnsemble    = "Ensemble"
	methodLoner       = "Loner"
	minEnsemblePeople = 1
)

// Ensemble returns a Constructor for one production with n people.
func Ensemble(n int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if n < minEnsemblePeople {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodEnsemble, n, minEnsemblePeople, ErrTooFewPeople)
		}

		people, err := addPeople(g, cfg, methodEnsemble, n)
		if err != nil {
			return err
		}
		m, err := addProduction(g, cfg, methodEnsemble)
		if err != nil {
			return err
		}

		return credit(g, methodEnsemble, m, people...)
	}
}

// Loner returns a Constructor for one isolated person.
func Loner() Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		people, err := addPeople(g, cfg, methodLoner, 1)
		if err != nil {
			return err
		}
		m, err := addProduction(g, cfg, methodLoner)
		if err != nil {
			return err
		}

		return credit(g, methodLoner, m, people[0])
	}
}
