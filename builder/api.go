// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildCast(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into a builderConfig owned by one BuildCast call;
//     constructors advance its person/production ID counters (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical casts.
//   - Safety: never panic at build time; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

// Constructor applies a deterministic cast mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Allocate fresh IDs through cfg so that composed constructors never collide.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg *builderConfig) error

// BuildCast creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildCast: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewPeople, ErrNeedRandSource, ...).
func BuildCast(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildCast: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildCast: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Cast factories - implemented in impl_*.go
// =============================================================================
//
// Chain builds n people linked in a line, one two-person production per hop (n ≥ 2).
//   func Chain(n int) Constructor
//
// Ensemble builds one production with n people in it (n ≥ 1).
//   func Ensemble(n int) Constructor
//
// Loner builds one person credited in one production nobody else is in.
//   func Loner() Constructor
//
// Cast credits the given, explicitly named people in one explicitly named production.
//   func Cast(productionID string, personIDs ...string) Constructor
//
// RandomCast builds people and productions, each production with castSize random people.
//   func RandomCast(people, productions, castSize int) Constructor
