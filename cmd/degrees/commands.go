package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/degrees/config"
	"github.com/katalvlaran/degrees/ctxlog"
)

// flags holds every command-line value; zero values mean "not given".
type flags struct {
	configPath  string
	source      string
	target      string
	maxDepth    int
	dedup       bool
	logLevel    string
	logFormat   string
	color       string
	metricsFile string
}

// newRootCmd builds the command tree. Each call returns an independent tree,
// so tests can run commands side by side.
func newRootCmd() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "degrees [directory]",
		Short: "Find the degrees of separation between two people",
		Long: `degrees loads people.csv, movies.csv and stars.csv from a directory
and prints the shortest chain of movies connecting two people.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, f, args)
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats [directory]",
		Short: "Print dataset sizes and skipped rows",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, f, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&f.logFormat, "log-format", "", "log format: text, json")
	pf.StringVar(&f.color, "color", "", "color output: auto, always, never")

	lf := rootCmd.Flags()
	lf.StringVarP(&f.source, "source", "s", "", "name of the first person (prompted if empty)")
	lf.StringVarP(&f.target, "target", "t", "", "name of the second person (prompted if empty)")
	lf.IntVar(&f.maxDepth, "max-depth", 0, "give up beyond this many degrees (0 = unlimited)")
	lf.BoolVar(&f.dedup, "dedup", false, "skip frontier entries that are already pending")
	lf.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")

	rootCmd.AddCommand(statsCmd)

	return rootCmd
}

// setup resolves the configuration (flags > env > file > defaults), builds
// the logger and returns a context carrying it together with the dataset
// directory to load.
func setup(cmd *cobra.Command, f *flags, args []string) (context.Context, config.Config, string, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, cfg, "", err
	}

	fl := cmd.Flags()
	if fl.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fl.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
	if fl.Changed("color") {
		cfg.Output.Color = f.color
	}
	if fl.Changed("max-depth") {
		cfg.Search.MaxDepth = f.maxDepth
	}
	if fl.Changed("dedup") {
		cfg.Search.Dedup = f.dedup
	}
	if fl.Changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
	if err = cfg.Validate(); err != nil {
		return nil, cfg, "", err
	}

	dir := cfg.DataDir
	if len(args) == 1 {
		dir = args[0]
	}

	logger := cfg.Logger(cmd.ErrOrStderr())
	logger.Debug("configuration resolved",
		slog.String("data_dir", dir),
		slog.Int("max_depth", cfg.Search.MaxDepth),
		slog.String("color", cfg.Output.Color))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return ctxlog.WithLogger(ctx, logger), cfg, dir, nil
}

// say writes one line, ignoring write errors the way fmt.Println does.
func say(w io.Writer, s string) {
	_, _ = io.WriteString(w, s+"\n")
}
