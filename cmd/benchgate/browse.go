package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"benchgate/internal/report"
	"benchgate/internal/results"
	"benchgate/internal/ui"
)

var browseRaw bool

var browseCmd = &cobra.Command{
	Use:   "browse <base.json> <head.json>",
	Short: "Browse a comparison interactively",
	Long: `Opens a terminal browser over the comparison: a list of rows on
the left, per-benchmark sample details on the right. Requires an
interactive terminal.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().BoolVar(&browseRaw, "raw", false, "Aggregate rawData samples instead of summary scores")
}

// stdoutIsTerminal is a variable so tests can fake an interactive run.
var stdoutIsTerminal = func() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !stdoutIsTerminal() {
		return fmt.Errorf("browse needs an interactive terminal")
	}

	var parseOpts []results.ParseOption
	if browseRaw {
		parseOpts = append(parseOpts, results.WithRawSamples())
	}
	base := results.Load(args[0], parseOpts...)
	head := results.Load(args[1], parseOpts...)

	c := report.Compare(base, head,
		report.WithRevisions(viper.GetString("compare.base_rev"), viper.GetString("compare.head_rev")),
		report.WithThreshold(viper.GetFloat64("compare.threshold")),
	)

	return ui.Browse(c, base, head)
}
