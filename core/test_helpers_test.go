// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for degrees/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Enforce concurrency-safe testing patterns (no *testing.T usage inside goroutines).

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/degrees/core"
)

// Common IDs used across core tests.
const (
	IDEmpty = ""

	PersonA = "p1"
	PersonB = "p2"
	PersonC = "p3"
	PersonD = "p4"

	MovieX = "m1"
	MovieY = "m2"
	MovieZ = "m3"

	Missing = "missing"
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// NewTriangleCast RETURNS a graph with people A,B,C and productions X,Y:
//
//	A, B in X
//	B, C in Y
//
// D exists but has no credits.
func NewTriangleCast(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, p := range []core.Person{
		{ID: PersonA, Name: "Kevin Bacon", Birth: "1958"},
		{ID: PersonB, Name: "Tom Hanks", Birth: "1956"},
		{ID: PersonC, Name: "Sally Field", Birth: "1946"},
		{ID: PersonD, Name: "Kevin Bacon", Birth: "1990"},
	} {
		MustNoError(t, g.AddPerson(p), "AddPerson("+p.ID+")")
	}
	for _, m := range []core.Production{
		{ID: MovieX, Title: "Apollo 13", Year: "1995"},
		{ID: MovieY, Title: "Forrest Gump", Year: "1994"},
	} {
		MustNoError(t, g.AddProduction(m), "AddProduction("+m.ID+")")
	}
	MustNoError(t, g.AddCredit(PersonA, MovieX), "AddCredit(A,X)")
	MustNoError(t, g.AddCredit(PersonB, MovieX), "AddCredit(B,X)")
	MustNoError(t, g.AddCredit(PersonB, MovieY), "AddCredit(B,Y)")
	MustNoError(t, g.AddCredit(PersonC, MovieY), "AddCredit(C,Y)")

	return g
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()
	if err == nil {
		return
	}
	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test unless errors.Is(err, target).
func MustErrorIs(t *testing.T, err, target error, op string) {
	t.Helper()
	if errors.Is(err, target) {
		return
	}
	t.Fatalf("%s: want error %v, got %v", op, target, err)
}
