// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// impl_random.go — RandomCast(people, productions, castSize).
//
// Contract:
//   • people ≥ 1, productions ≥ 1, 1 ≤ castSize ≤ people (else ErrTooFewPeople).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Each production draws castSize distinct people via rng.Perm.
//
// Complexity:
//   • Time: O(people + productions·people) for the permutations.
//
// Determinism:
//   • People created first (index asc), then productions (index asc), each
//     drawing its cast in turn; fixed seed ⇒ identical cast.

package builder

import (
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

const methodRandomCast = "RandomCast"

// RandomCast returns a Constructor sampling a random cast graph.
func RandomCast(people, productions, castSize int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if people < 1 || productions < 1 || castSize < 1 || castSize > people {
			return fmt.Errorf("%s: people=%d productions=%d castSize=%d: %w",
				methodRandomCast, people, productions, castSize, ErrTooFewPeople)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomCast, ErrNeedRandSource)
		}

		ids, err := addPeople(g, cfg, methodRandomCast, people)
		if err != nil {
			return err
		}
		members := make([]string, castSize)
		for i := 0; i < productions; i++ {
			m, err := addProduction(g, cfg, methodRandomCast)
			if err != nil {
				return err
			}
			for j, idx := range cfg.rng.Perm(people)[:castSize] {
				members[j] = ids[idx]
			}
			if err = credit(g, methodRandomCast, m, members...); err != nil {
				return err
			}
		}

		return nil
	}
}
