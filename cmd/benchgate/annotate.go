package main

import (
	"github.com/spf13/cobra"

	"benchgate/internal/annotate"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate [file]",
	Short: "Decorate a benchstat comparison file for a PR comment",
	Long: `Rewrites a benchstat comparison file in place: indents the code
block, strips worker-count suffixes, aligns a Diff column and marks each
row with a speedup or slowdown icon. A missing file is skipped quietly so
pipelines can run the step unconditionally. Defaults to comparison.md.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "comparison.md"
		if len(args) == 1 {
			path = args[0]
		}
		return annotate.ProcessFile(path)
	},
}

func init() {
	rootCmd.AddCommand(annotateCmd)
}
