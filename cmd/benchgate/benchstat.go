package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"benchgate/internal/artifact"
	"benchgate/internal/report"
	"benchgate/internal/sysinfo"
)

var benchstatPkg string

var benchstatCmd = &cobra.Command{
	Use:   "benchstat <base.json> <head.json>",
	Short: "Render two artifacts as a benchstat comparison block",
	Long: `Loads two dashboard artifacts and prints their values in the
benchstat layout: fenced code block, environment header, base and pr
columns. Each run carries one summary value per benchmark, so the
comparison column shows the n=1 placeholder.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runBenchstat,
}

func init() {
	rootCmd.AddCommand(benchstatCmd)
	benchstatCmd.Flags().StringVar(&benchstatPkg, "pkg", "", "Package line for the environment header")
}

func runBenchstat(cmd *cobra.Command, args []string) error {
	base, err := artifact.Load(args[0])
	if err != nil {
		return err
	}
	head, err := artifact.Load(args[1])
	if err != nil {
		return err
	}

	pkg := viper.GetString("benchstat.pkg")
	if cmd.Flags().Changed("pkg") {
		pkg = benchstatPkg
	}

	fmt.Fprint(cmd.OutOrStdout(), report.Benchstat(base.Values(), head.Values(), sysinfo.Env(pkg)))
	return nil
}
