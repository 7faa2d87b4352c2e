// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// impl_cast.go — Cast(production, people...): hand-written fixtures.
//
// Contract:
//   • productionID non-empty and at least one person (else ErrTooFewPeople).
//   • Missing people/production are created with Name/Title equal to the ID;
//     existing ones are reused, so several Cast calls can share people.
//   • Explicit IDs do not advance the generated-ID counters.

package builder

import (
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

const methodCast = "Cast"

// Cast returns a Constructor crediting personIDs in productionID.
func Cast(productionID string, personIDs ...string) Constructor {
	return func(g *core.Graph, _ *builderConfig) error {
		if productionID == "" || len(personIDs) == 0 {
			return fmt.Errorf("%s: production=%q with %d people: %w",
				methodCast, productionID, len(personIDs), ErrTooFewPeople)
		}

		if !g.HasProduction(productionID) {
			if err := g.AddProduction(core.Production{ID: productionID, Title: productionID}); err != nil {
				return fmt.Errorf("%s: AddProduction(%s): %w: %w", methodCast, productionID, err, ErrConstructFailed)
			}
		}
		for _, id := range personIDs {
			if g.HasPerson(id) {
				continue
			}
			if err := g.AddPerson(core.Person{ID: id, Name: id}); err != nil {
				return fmt.Errorf("%s: AddPerson(%s): %w: %w", methodCast, id, err, ErrConstructFailed)
			}
		}

		return credit(g, methodCast, productionID, personIDs...)
	}
}
