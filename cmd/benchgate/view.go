package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Render a markdown report in the terminal",
	Long: `Pretty-prints a markdown comparison report with syntax-aware
styling, picking a light or dark theme from the terminal background.
Defaults to comparison.md.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	path := "comparison.md"
	if len(args) == 1 {
		path = args[0]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read report: %w", err)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := renderer.Render(string(data))
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
