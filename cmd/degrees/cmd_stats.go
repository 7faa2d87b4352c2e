package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/degrees/loader"
)

// runStats loads the dataset and prints catalog sizes and skipped rows.
func runStats(cmd *cobra.Command, f *flags, args []string) error {
	ctx, cfg, dir, err := setup(cmd, f, args)
	if err != nil {
		return err
	}

	g, rep, err := loader.LoadDir(ctx, dir)
	if err != nil {
		return err
	}

	out := newPrinter(cmd.OutOrStdout(), cfg.Output.Color)
	st := g.Stats()
	out.stat("People", st.People)
	out.stat("Distinct names", st.Names)
	out.stat("Movies", st.Productions)
	out.stat("Credits", st.Credits)
	out.stat("Skipped people", rep.SkippedPeople)
	out.stat("Skipped movies", rep.SkippedProductions)
	out.stat("Skipped credits", rep.SkippedCredits)

	return nil
}
