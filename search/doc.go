// Package search computes degrees of separation: the shortest chain of shared
// productions between two people of a cast graph.
//
// What
//
//   - ShortestPath(g, origin, target, opts...) → (Path, connected, error)
//   - Find(g, origin, target, opts...) → *Result, for any frontier discipline,
//     with exploration counters (Explored, Generated, Discarded).
//   - Path is a []core.Link from the origin's neighbor to the target:
//     [(m1,B) (m2,C)] reads "origin and B were in m1, B and C were in m2".
//
// Algorithm
//
//  1. origin == target → empty Path.
//  2. Seed a FIFO frontier with a node per Link in Neighbors(origin),
//     parented to the synthetic root.
//  3. Loop while the frontier is not empty:
//     3.1 Remove the next node; if its person is explored, discard it.
//     3.2 Mark the person explored and archive the node in the arena.
//     3.3 Person == target → walk parent handles back to the root,
//     reverse, return.
//     3.4 Otherwise add a node for every neighbor whose person is not explored.
//  4. Frontier exhausted → not connected (not an error).
//
// Guarantees
//
//   - With FIFO, nodes leave the frontier in non-decreasing depth, so the
//     returned Path has the minimum number of links.
//   - The explored set bounds work to O(P + L): each person is expanded once.
//   - A Stack (LIFO) frontier, available through Find, returns some path,
//     never a shorter one than FIFO. ShortestPath refuses it.
//   - Unknown people have no neighbors, so they are simply not connected.
//
// Concurrency
//
//	A search owns its frontier, arena and explored set; independent searches
//	may share one graph concurrently. A *core.Graph locks per Neighbors call,
//	not per search, so a search over a graph that is still being written can
//	mix adjacency from before and after a write. Search g.Snapshot() to get
//	one consistent view; the CLI does.
//	The engine has no notion of time: callers wanting a deadline pass
//	WithContext, which is checked once per removed node.
//
// Options
//
//   - WithContext(ctx)        cancellation / deadline.
//   - WithDiscipline(d)       frontier.FIFO (default) or frontier.LIFO (Find only).
//   - WithMaxDepth(d)         no path longer than d links (d>0), 0 = unlimited.
//   - WithFrontierDedup()     skip adding states that are already pending.
//   - WithOnEnqueue(fn)       hook after each frontier add.
//   - WithOnDequeue(fn)       hook for each node that gets explored.
//   - WithLogger(l)           debug records at start and finish.
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrEmptyEntityID        if origin or target is "".
//   - ErrOptionViolation      for invalid options, or LIFO passed to ShortestPath.
//   - ctx.Err()               if the context is done.
package search
