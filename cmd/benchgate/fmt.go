package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"benchgate/internal/artifact"
	"benchgate/internal/telemetry"
)

var fmtTool string

var fmtCmd = &cobra.Command{
	Use:   "fmt <input.json> <output.json>",
	Short: "Convert a result document into a dashboard artifact",
	Long: `Reads a benchmark result document, normalizes every convertible
score to ns/op and writes the benchmark-action artifact consumed by the
dashboard: commit metadata from the COMMIT_* environment, one bench entry
per benchmark, values rounded to two decimals.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().StringVar(&fmtTool, "tool", "", "Tool name recorded in the artifact")
}

func runFmt(cmd *cobra.Command, args []string) error {
	entries, err := artifact.LoadEntries(args[0])
	if err != nil {
		return err
	}

	tool := viper.GetString("fmt.tool")
	if cmd.Flags().Changed("tool") {
		tool = fmtTool
	}

	a := artifact.Build(entries, artifact.CommitFromEnv(), tool)
	if err := artifact.Write(args[1], a); err != nil {
		return err
	}

	telemetry.LogDebug("artifact written", "path", args[1], "benches", len(a.Benches))
	return nil
}
