// Package loader reads the three CSV catalogs of a cast dataset into a
// core.Graph:
//
//	people.csv  id,name,birth
//	movies.csv  id,title,year
//	stars.csv   person_id,movie_id
//
// Columns are located by header name, so their order is free and extra
// columns are ignored. Credit rows naming a person or movie that is not in
// the catalogs are skipped and counted in the Report, unless WithStrict is
// given.
package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/katalvlaran/degrees/core"
	"github.com/katalvlaran/degrees/ctxlog"
)

// File names inside a dataset directory.
const (
	PeopleFile = "people.csv"
	MoviesFile = "movies.csv"
	StarsFile  = "stars.csv"
)

// Sentinel errors for loading.
var (
	// ErrMissingFile is returned when one of the three catalogs is absent.
	ErrMissingFile = errors.New("loader: catalog file missing")

	// ErrMissingColumn is returned when a header lacks a required column.
	ErrMissingColumn = errors.New("loader: required column missing")

	// ErrMalformed wraps CSV syntax errors.
	ErrMalformed = errors.New("loader: malformed csv")

	// ErrUnknownReference is returned in strict mode for a credit naming an unknown entity.
	ErrUnknownReference = errors.New("loader: credit references unknown entity")
)

// Report summarizes one load.
type Report struct {
	People      int
	Productions int
	Credits     int

	// SkippedPeople and SkippedProductions count rows with an empty id.
	SkippedPeople      int
	SkippedProductions int

	// SkippedCredits counts stars rows naming an unknown or empty id.
	SkippedCredits int
}

// Option configures a load.
type Option func(*options)

type options struct {
	strict bool
	gopts  []core.GraphOption
}

// WithStrict turns skipped credit rows into ErrUnknownReference.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// WithGraphOptions passes options through to core.NewGraph.
func WithGraphOptions(gopts ...core.GraphOption) Option {
	return func(o *options) { o.gopts = append(o.gopts, gopts...) }
}

// LoadDir loads the catalogs from a directory on disk.
func LoadDir(ctx context.Context, dir string, opts ...Option) (*core.Graph, *Report, error) {
	return Load(ctx, os.DirFS(dir), opts...)
}

// Load reads people, then movies, then credits from fsys.
//
// The context is checked between rows; on cancellation the partially
// filled graph is dropped and ctx.Err() is returned.
func Load(ctx context.Context, fsys fs.FS, opts ...Option) (*core.Graph, *Report, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	log := ctxlog.FromContext(ctx)
	g := core.NewGraph(o.gopts...)
	rep := &Report{}

	steps := []struct {
		file string
		cols []string
		row  func(rec []string) error
	}{
		{PeopleFile, []string{"id", "name", "birth"}, func(rec []string) error {
			if rec[0] == "" {
				rep.SkippedPeople++
				return nil
			}
			return g.AddPerson(core.Person{ID: rec[0], Name: rec[1], Birth: rec[2]})
		}},
		{MoviesFile, []string{"id", "title", "year"}, func(rec []string) error {
			if rec[0] == "" {
				rep.SkippedProductions++
				return nil
			}
			return g.AddProduction(core.Production{ID: rec[0], Title: rec[1], Year: rec[2]})
		}},
		{StarsFile, []string{"person_id", "movie_id"}, func(rec []string) error {
			err := g.AddCredit(rec[0], rec[1])
			switch {
			case err == nil:
				return nil
			case errors.Is(err, core.ErrEmptyID),
				errors.Is(err, core.ErrPersonNotFound),
				errors.Is(err, core.ErrProductionNotFound):
				if o.strict {
					return fmt.Errorf("%w: person %q, movie %q: %w", ErrUnknownReference, rec[0], rec[1], err)
				}
				rep.SkippedCredits++
				return nil
			default:
				return err
			}
		}},
	}

	for _, st := range steps {
		rows, err := readCatalog(ctx, fsys, st.file, st.cols, st.row)
		if err != nil {
			return nil, nil, err
		}
		log.Debug("catalog loaded", "file", st.file, "rows", rows)
	}

	stats := g.Stats()
	rep.People, rep.Productions, rep.Credits = stats.People, stats.Productions, stats.Credits
	log.Info("dataset loaded",
		"people", rep.People, "productions", rep.Productions, "credits", rep.Credits,
		"skipped_credits", rep.SkippedCredits)

	return g, rep, nil
}

// readCatalog opens name, maps cols to header positions and calls row with
// the projected fields of every data row. It returns the number of data rows.
func readCatalog(ctx context.Context, fsys fs.FS, name string, cols []string, row func([]string) error) (int, error) {
	f, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("%w: %s", ErrMissingFile, name)
		}
		return 0, fmt.Errorf("loader: open %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("%w: %s has no header", ErrMissingColumn, name)
		}
		return 0, fmt.Errorf("%w: %s: %w", ErrMalformed, name, err)
	}
	idx, err := columnIndex(name, header, cols)
	if err != nil {
		return 0, err
	}

	proj := make([]string, len(cols))
	n := 0
	for {
		if err := ctx.Err(); err != nil {
			return n, err
		}

		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, fmt.Errorf("%w: %s: %w", ErrMalformed, name, err)
		}
		for i, j := range idx {
			proj[i] = rec[j]
		}
		if err = row(proj); err != nil {
			line, _ := r.FieldPos(0)
			return n, fmt.Errorf("loader: %s line %d: %w", name, line, err)
		}
		n++
	}
}

// columnIndex returns, for each wanted column, its position in header.
func columnIndex(name string, header, cols []string) ([]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		pos[strings.TrimSpace(h)] = i
	}

	idx := make([]int, len(cols))
	for i, c := range cols {
		j, ok := pos[c]
		if !ok {
			return nil, fmt.Errorf("%w: %s lacks %q", ErrMissingColumn, name, c)
		}
		idx[i] = j
	}

	return idx, nil
}
