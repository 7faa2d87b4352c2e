package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/degrees/core"
	"github.com/katalvlaran/degrees/ctxlog"
	"github.com/katalvlaran/degrees/loader"
	"github.com/katalvlaran/degrees/metrics"
	"github.com/katalvlaran/degrees/resolve"
	"github.com/katalvlaran/degrees/search"
)

// errPersonNotFound ends the command with exit status 1 after
// "Person not found." has been printed.
var errPersonNotFound = errors.New("person not found")

// runSearch loads the dataset, resolves both names and prints the shortest
// chain between them.
func runSearch(cmd *cobra.Command, f *flags, args []string) error {
	ctx, cfg, dir, err := setup(cmd, f, args)
	if err != nil {
		return err
	}
	log := ctxlog.FromContext(ctx)
	out := newPrinter(cmd.OutOrStdout(), cfg.Output.Color)

	out.progress("Loading data...")
	g, _, err := loader.LoadDir(ctx, dir)
	if err != nil {
		return err
	}
	out.progress("Data loaded.")

	in := bufio.NewReader(cmd.InOrStdin())
	choose := resolve.PromptChooser(in, cmd.OutOrStdout())

	source, err := personFor(g, f.source, in, cmd.OutOrStdout(), choose)
	if err != nil {
		return notFound(cmd, err)
	}
	target, err := personFor(g, f.target, in, cmd.OutOrStdout(), choose)
	if err != nil {
		return notFound(cmd, err)
	}

	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	var explored, generated int
	opts := []search.Option{
		search.WithContext(ctx),
		search.WithMaxDepth(cfg.Search.MaxDepth),
		search.WithLogger(log),
		search.WithOnEnqueue(func(core.Link, int) { generated++ }),
		search.WithOnDequeue(func(core.Link, int) { explored++ }),
	}
	if cfg.Search.Dedup {
		opts = append(opts, search.WithFrontierDedup())
	}

	start := time.Now()
	path, connected, err := search.ShortestPath(g.Snapshot(), source, target, opts...)
	elapsed := time.Since(start)
	if err != nil {
		rec.Observe(nil, err, elapsed)
	} else {
		rec.Observe(&search.Result{
			Path:      path,
			Connected: connected,
			Explored:  explored,
			Generated: generated,
		}, nil, elapsed)
	}

	if cfg.MetricsFile != "" {
		if werr := metrics.WriteTextfile(cfg.MetricsFile, reg); werr != nil {
			log.Warn("metrics not written", "path", cfg.MetricsFile, "error", werr)
		}
	}
	if err != nil {
		return err
	}

	if !connected {
		say(cmd.OutOrStdout(), "Not connected.")
		return nil
	}
	out.path(g, source, path)

	return nil
}

// personFor resolves name, prompting "Name: " on in when name is empty.
func personFor(g *core.Graph, name string, in *bufio.Reader, w io.Writer, choose resolve.Chooser) (string, error) {
	if name == "" {
		fmt.Fprint(w, "Name: ")
		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return "", fmt.Errorf("read name: %w", err)
		}
		name = strings.TrimSpace(line)
	}

	return resolve.Resolve(g, name, choose)
}

// notFound reports a failed resolution. Unmatched names and choices outside
// the candidates print "Person not found."; anything else is returned as is.
func notFound(cmd *cobra.Command, err error) error {
	if errors.Is(err, resolve.ErrNoMatch) || errors.Is(err, resolve.ErrInvalidChoice) {
		newPrinter(cmd.ErrOrStderr(), "never").fail("Person not found.")
		return errPersonNotFound
	}
	return err
}
