// Package builder assembles deterministic cast graphs for tests, examples
// and benchmarks.
//
// One orchestrator, BuildCast, creates a core.Graph and runs Constructors in
// order against it. Constructors draw fresh IDs ("p0","p1",… and "m0","m1",…)
// from a config shared by the whole call, so they compose without collisions:
//
//	g, err := builder.BuildCast(nil, []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.Chain(4),                // p0–p1–p2–p3 through m0,m1,m2
//	    builder.Loner(),                 // p4, alone in m3
//	    builder.RandomCast(100, 40, 5),  // p5..p104, m4..m43
//	)
//
// Constructors:
//
//   - Chain(n)                  n people in a line, distance(first,last) = n-1.
//   - Ensemble(n)               one production, n people, all one degree apart.
//   - Loner()                   one person connected to nobody.
//   - Cast(production, ids...)  explicit IDs, for hand-drawn fixtures.
//   - RandomCast(p, m, k)       m productions of k people drawn from p; needs WithSeed/WithRand.
//
// Errors: ErrTooFewPeople, ErrNeedRandSource, ErrConstructFailed, always
// wrapped with the constructor name.
package builder
