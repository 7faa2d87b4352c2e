// File: types.go
// Role: Options, Result, Path and sentinel errors.

package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/degrees/core"
	"github.com/katalvlaran/degrees/frontier"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrEmptyEntityID is returned when origin or target is the empty string.
	ErrEmptyEntityID = errors.New("search: entity ID is empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Graph is the read-only view search needs: the one-hop neighborhood of a person.
// An unknown person must yield an empty slice, not an error.
// *core.Graph satisfies it.
type Graph interface {
	Neighbors(person string) []core.Link
}

// Path is the ordered sequence of links from the origin's neighbor up to and
// including the target. An empty Path means origin == target.
type Path []core.Link

// Degrees returns the number of links in the path (its degrees of separation).
func (p Path) Degrees() int { return len(p) }

// People returns the person IDs along the path, origin excluded.
func (p Path) People() []string {
	out := make([]string, len(p))
	for i, l := range p {
		out[i] = l.Person
	}
	return out
}

// Result holds the outcome of one search:
//   - Path: the links found, nil when not connected.
//   - Connected: whether target was reached.
//   - Explored: distinct people removed from the frontier and expanded or matched.
//   - Generated: nodes added to the frontier.
//   - Discarded: nodes removed from the frontier whose person was already explored.
type Result struct {
	Path       Path
	Connected  bool
	Explored   int
	Generated  int
	Discarded  int
	Discipline frontier.Discipline
}

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines. It is checked once per removed node.
	Ctx context.Context

	// Discipline selects the frontier; FIFO unless overridden.
	Discipline frontier.Discipline

	// MaxDepth, if > 0, stops expanding nodes at this depth, so no path
	// longer than MaxDepth links is returned. 0 disables the limit.
	MaxDepth int

	// Dedup skips adding a node whose state is already pending in the frontier.
	Dedup bool

	// OnEnqueue is called after a node is added to the frontier.
	OnEnqueue func(l core.Link, depth int)

	// OnDequeue is called when a node is removed and its person was not yet explored.
	OnDequeue func(l core.Link, depth int)

	// Logger receives debug records at search start and finish.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - FIFO discipline
//   - no depth limit, no frontier dedup
//   - no-op hooks and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Discipline: frontier.FIFO,
		MaxDepth:   0,
		OnEnqueue:  func(core.Link, int) {},
		OnDequeue:  func(core.Link, int) {},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDiscipline selects the frontier removal order.
// Unknown disciplines are recorded as ErrOptionViolation.
func WithDiscipline(d frontier.Discipline) Option {
	return func(o *Options) {
		switch d {
		case frontier.FIFO, frontier.LIFO:
			o.Discipline = d
		default:
			o.err = fmt.Errorf("%w: unknown discipline %s", ErrOptionViolation, d)
		}
	}
}

// WithMaxDepth limits path length to d links.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFrontierDedup skips adding states that are already pending.
// Correctness does not depend on it; it trades a map lookup per add for a
// smaller frontier on densely connected casts.
func WithFrontierDedup() Option {
	return func(o *Options) { o.Dedup = true }
}

// WithOnEnqueue registers a callback to run after each frontier add.
func WithOnEnqueue(fn func(l core.Link, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run for each node that gets explored.
func WithOnDequeue(fn func(l core.Link, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithLogger sets the logger for debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
