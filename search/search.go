// File: search.go
// Role: Entry points, option validation and the breadth-first walker.

package search

import (
	"fmt"

	"github.com/katalvlaran/degrees/core"
	"github.com/katalvlaran/degrees/frontier"
)

// nilGraph is implemented by graph types that can sit as a typed nil inside
// the Graph interface (*core.Graph does).
type nilGraph interface {
	IsNil() bool
}

// walker encapsulates mutable search state. A walker serves exactly one
// search and is discarded afterwards.
type walker struct {
	graph  Graph
	opts   Options
	target string

	front frontier.Frontier
	// arena holds every explored node; a node's Handle is its index here.
	arena []frontier.Node
	// explored holds person IDs already removed from the frontier once.
	explored map[string]struct{}

	res *Result
}

// Find runs a search from origin to target using the configured discipline
// (FIFO unless WithDiscipline says otherwise).
//
// A target that cannot be reached is not an error: Result.Connected is false
// and Result.Path is nil. origin == target yields an empty, non-nil Path.
//
// Returns ErrGraphNil, ErrEmptyEntityID or ErrOptionViolation for invalid
// input, or the context error if the search is cancelled; in that case the
// partially filled Result is returned alongside the error.
func Find(g Graph, origin, target string, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validate(g, origin, target); err != nil {
		return nil, err
	}

	return run(g, origin, target, o)
}

// ShortestPath returns a minimum-length path from origin to target, and
// whether one exists. It always searches breadth-first; passing
// WithDiscipline(frontier.LIFO) is rejected with ErrOptionViolation.
func ShortestPath(g Graph, origin, target string, opts ...Option) (Path, bool, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, false, err
	}
	if o.Discipline != frontier.FIFO {
		return nil, false, fmt.Errorf("%w: shortest path requires %s, got %s",
			ErrOptionViolation, frontier.FIFO, o.Discipline)
	}
	if err = validate(g, origin, target); err != nil {
		return nil, false, err
	}

	res, err := run(g, origin, target, o)
	if err != nil {
		return nil, false, err
	}

	return res.Path, res.Connected, nil
}

// buildOptions applies opts over the defaults and surfaces any recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

func validate(g Graph, origin, target string) error {
	if g == nil {
		return ErrGraphNil
	}
	if n, ok := g.(nilGraph); ok && n.IsNil() {
		return ErrGraphNil
	}
	if origin == "" || target == "" {
		return ErrEmptyEntityID
	}

	return nil
}

// run performs one search with already-validated input.
func run(g Graph, origin, target string, o Options) (*Result, error) {
	res := &Result{Discipline: o.Discipline}
	if origin == target {
		res.Path = Path{}
		res.Connected = true
		return res, nil
	}

	front, err := frontier.New(o.Discipline)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation, err)
	}

	w := &walker{
		graph:    g,
		opts:     o,
		target:   target,
		front:    front,
		explored: make(map[string]struct{}),
		res:      res,
	}

	o.Logger.Debug("search started",
		"origin", origin, "target", target, "discipline", o.Discipline.String())

	// Seed with the origin's neighbors. The origin itself is a synthetic
	// root: it is never placed on the frontier nor marked explored.
	for _, l := range g.Neighbors(origin) {
		w.push(l, frontier.Root, 1)
	}
	err = w.loop()

	o.Logger.Debug("search finished",
		"origin", origin, "target", target,
		"connected", res.Connected, "degrees", len(res.Path),
		"explored", res.Explored, "generated", res.Generated, "discarded", res.Discarded,
		"error", err)

	return res, err
}

// push adds a node for l to the frontier, unless dedup is on and l is already pending.
func (w *walker) push(l core.Link, parent frontier.Handle, depth int) {
	if w.opts.Dedup && w.front.ContainsState(l) {
		return
	}
	w.front.Add(frontier.Node{State: l, Parent: parent, Depth: depth})
	w.res.Generated++
	w.opts.OnEnqueue(l, depth)
}

// loop removes nodes until the target is found, the frontier runs dry,
// or the context is cancelled.
func (w *walker) loop() error {
	for !w.front.Empty() {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		n, err := w.front.RemoveNext()
		if err != nil {
			return err
		}

		// A person can be pending several times, reached through different
		// productions; only the first removal counts.
		if _, seen := w.explored[n.State.Person]; seen {
			w.res.Discarded++
			continue
		}
		w.explored[n.State.Person] = struct{}{}
		h := w.archive(n)
		w.res.Explored++
		w.opts.OnDequeue(n.State, n.Depth)

		if n.State.Person == w.target {
			w.res.Path = w.pathTo(h)
			w.res.Connected = true
			return nil
		}
		if w.opts.MaxDepth > 0 && n.Depth >= w.opts.MaxDepth {
			continue
		}
		w.expand(h, n)
	}

	return nil
}

// archive appends n to the arena and returns its handle.
func (w *walker) archive(n frontier.Node) frontier.Handle {
	w.arena = append(w.arena, n)
	return frontier.Handle(len(w.arena) - 1)
}

// expand pushes every neighbor of n whose person is not yet explored.
// n's own person is explored, so its self-links are skipped here.
func (w *walker) expand(h frontier.Handle, n frontier.Node) {
	for _, l := range w.graph.Neighbors(n.State.Person) {
		if _, seen := w.explored[l.Person]; seen {
			continue
		}
		w.push(l, h, n.Depth+1)
	}
}

// pathTo walks parent handles from h back to the root and returns the links
// in origin-to-target order. The arena is only read.
func (w *walker) pathTo(h frontier.Handle) Path {
	path := make(Path, 0, w.arena[h].Depth)
	for cur := h; cur != frontier.Root; cur = w.arena[cur].Parent {
		path = append(path, w.arena[cur].State)
	}
	// reverse to get origin → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
