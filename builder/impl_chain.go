// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// impl_chain.go — Chain(n): p_0 —m_0— p_1 —m_1— ... —m_{n-2}— p_{n-1}.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewPeople).
//   • Production m_i has exactly p_i and p_{i+1}; distance(p_0, p_{n-1}) = n-1.
//
// Complexity: O(n) people, O(n) productions, O(n) credits.

package builder

import (
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

const (
	methodChain    = "Chain"
	minChainPeople = 2
)

// Chain returns a Constructor for a line of n people.
func Chain(n int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if n < minChainPeople {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainPeople, ErrTooFewPeople)
		}

		people, err := addPeople(g, cfg, methodChain, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			m, err := addProduction(g, cfg, methodChain)
			if err != nil {
				return err
			}
			if err = credit(g, methodChain, m, people[i], people[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
