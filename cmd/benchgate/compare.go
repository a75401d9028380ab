package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"benchgate/internal/config"
	"benchgate/internal/notify"
	"benchgate/internal/report"
	"benchgate/internal/results"
	"benchgate/internal/telemetry"
)

var (
	compareBaseRev   string
	compareHeadRev   string
	compareThreshold float64
	comparePolicy    string
	compareRaw       bool
	compareFormat    string
	compareOutput    string
	compareNotify    bool
	compareFailOn    bool
)

var compareCmd = &cobra.Command{
	Use:   "compare <base.json> <head.json>",
	Short: "Compare two benchmark result documents",
	Long: `Loads two result documents, normalizes every score to ns/op and
reports the per-benchmark movement against the regression threshold.

Degraded inputs never abort the run: an unreadable or malformed document
yields incomparable rows, and the report is still written in full.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true, // Prevents printing usage on error
	RunE:         runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVar(&compareBaseRev, "base-rev", "", "Revision identifier of the base run")
	compareCmd.Flags().StringVar(&compareHeadRev, "head-rev", "", "Revision identifier of the head run")
	compareCmd.Flags().Float64Var(&compareThreshold, "threshold", report.DefaultThreshold, "Relative diff beyond which a benchmark counts as moved")
	compareCmd.Flags().StringVar(&comparePolicy, "policy", "", "YAML file with per-benchmark thresholds")
	compareCmd.Flags().BoolVar(&compareRaw, "raw", false, "Aggregate rawData samples instead of summary scores")
	compareCmd.Flags().StringVar(&compareFormat, "format", "text", "Report format: text or markdown")
	compareCmd.Flags().StringVarP(&compareOutput, "output", "o", "", "Write the report to a file instead of stdout")
	compareCmd.Flags().BoolVar(&compareNotify, "notify", false, "Send a notification when benchmarks regressed")
	compareCmd.Flags().BoolVar(&compareFailOn, "fail-on-regression", false, "Exit non-zero after reporting when any benchmark regressed")
}

func runCompare(cmd *cobra.Command, args []string) error {
	metrics := telemetry.NewMetrics()
	start := time.Now()

	var parseOpts []results.ParseOption
	if compareRaw {
		parseOpts = append(parseOpts, results.WithRawSamples())
	}
	parseOpts = append(parseOpts, results.WithDiagnosticFunc(func(d results.Diagnostic) {
		if d.Kind == results.DiagUnknownUnit {
			metrics.UnknownUnits.Inc()
		}
	}))

	base := results.Load(args[0], parseOpts...)
	head := results.Load(args[1], parseOpts...)
	metrics.SamplesLoaded.WithLabelValues("base").Add(float64(base.TotalSamples()))
	metrics.SamplesLoaded.WithLabelValues("head").Add(float64(head.TotalSamples()))

	threshold := viper.GetFloat64("compare.threshold")
	if cmd.Flags().Changed("threshold") {
		threshold = compareThreshold
	}
	baseRev := viper.GetString("compare.base_rev")
	if cmd.Flags().Changed("base-rev") {
		baseRev = compareBaseRev
	}
	headRev := viper.GetString("compare.head_rev")
	if cmd.Flags().Changed("head-rev") {
		headRev = compareHeadRev
	}

	opts := []report.Option{
		report.WithRevisions(baseRev, headRev),
		report.WithThreshold(threshold),
	}
	if comparePolicy != "" {
		pol, err := config.LoadPolicy(comparePolicy)
		if err != nil {
			return err
		}
		opts = append(opts, report.WithThresholdFunc(func(name string) float64 {
			return pol.For(name, threshold)
		}))
	}

	c := report.Compare(base, head, opts...)

	improved, regressed, neutral, incomparable := c.Counts()
	metrics.RowsByOutcome.WithLabelValues("improved").Add(float64(improved))
	metrics.RowsByOutcome.WithLabelValues("regressed").Add(float64(regressed))
	metrics.RowsByOutcome.WithLabelValues("neutral").Add(float64(neutral))
	metrics.RowsByOutcome.WithLabelValues("incomparable").Add(float64(incomparable))

	var out io.Writer = cmd.OutOrStdout()
	if compareOutput != "" {
		f, err := os.Create(compareOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch compareFormat {
	case "text":
		if err := report.Render(out, c); err != nil {
			return err
		}
	case "markdown":
		if err := report.RenderMarkdown(out, c); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want text or markdown)", compareFormat)
	}

	if compareNotify {
		viper.Set("notify.slack.enabled", true)
	}
	if viper.GetBool("notify.slack.enabled") {
		notify.NewManager().RegressionAlert(cmd.Context(), c)
	}

	metrics.CompareSeconds.Observe(time.Since(start).Seconds())
	metrics.LastRun.SetToCurrentTime()
	if viper.GetBool("metrics.enabled") {
		if err := metrics.Push(viper.GetString("metrics.gateway"), viper.GetString("metrics.job")); err != nil {
			telemetry.LogWarn("failed to push metrics", "error", err)
		}
	}

	// The verdict exit comes after the report and its side effects, so CI
	// always gets the full picture before the non-zero status.
	if compareFailOn && regressed > 0 {
		return fmt.Errorf("%d benchmark(s) regressed beyond the threshold", regressed)
	}
	return nil
}
