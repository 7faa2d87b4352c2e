// Package degrees finds how few shared productions separate two people:
// the "six degrees of Kevin Bacon" question, answered by breadth-first search
// over a people ↔ productions cast graph.
//
// 🚀 What is in the box?
//
//	• core/      — thread-safe cast graph: people, productions, credits, Neighbors
//	• frontier/  — search nodes plus a FIFO Queue and a LIFO Stack
//	• search/    — shortest chain of (production, person) links, with hooks & limits
//	• builder/   — deterministic fixture casts: Chain, Ensemble, Loner, Cast, RandomCast
//	• loader/    — people.csv / movies.csv / stars.csv ingestion
//	• resolve/   — typed name → person ID, with interactive disambiguation
//	• config/    — YAML + DEGREES_* environment configuration, slog setup
//	• ctxlog/    — logger carried through context.Context
//	• metrics/   — Prometheus counters & histograms per search
//	• cmd/degrees — the command-line front-end
//
// Quick ASCII example:
//
//	Tom Cruise ──A Few Good Men── Kevin Bacon ──Apollo 13── Tom Hanks
//
//	is 2 degrees of separation: the path is
//	[(A Few Good Men, Kevin Bacon), (Apollo 13, Tom Hanks)].
//
// Usage:
//
//	g, _, err := loader.LoadDir(ctx, "large")
//	path, ok, err := search.ShortestPath(g, "129", "158")
//
//	go install github.com/katalvlaran/degrees/cmd/degrees@latest
package degrees
