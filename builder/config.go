// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • personPrefix     = "p"   (people "p0","p1",...)
//   • productionPrefix = "m"   (productions "m0","m1",...)
//   • rng              = nil   (pure/deterministic unless seeded)
//
// builderConfig is passed by pointer because it owns the ID counters shared
// by every constructor of one BuildCast call.

package builder

import (
	"math/rand"
	"strconv"
)

const (
	defaultPersonPrefix     = "p"
	defaultProductionPrefix = "m"
)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	personPrefix     string
	productionPrefix string

	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// next free indices, advanced by nextPerson/nextProduction
	people      int
	productions int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order. Empty prefixes resolve back to defaults.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{
		personPrefix:     defaultPersonPrefix,
		productionPrefix: defaultProductionPrefix,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.personPrefix == "" {
		cfg.personPrefix = defaultPersonPrefix
	}
	if cfg.productionPrefix == "" {
		cfg.productionPrefix = defaultProductionPrefix
	}

	return cfg
}

// nextPerson returns a fresh person ID.
func (c *builderConfig) nextPerson() string {
	id := c.personPrefix + strconv.Itoa(c.people)
	c.people++
	return id
}

// nextProduction returns a fresh production ID.
func (c *builderConfig) nextProduction() string {
	id := c.productionPrefix + strconv.Itoa(c.productions)
	c.productions++
	return id
}
