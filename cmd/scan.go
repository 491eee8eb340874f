package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/javart/internal/runtime"
)

var (
	scanDepth  int
	scanEnv    bool
	scanUnique bool
	scanOutput string
)

var scanCmd = &cobra.Command{
	Use:   "scan [roots...]",
	Short: "Search directory trees for java runtimes",
	Long: `Search each root for java launchers and report the runtimes found.

Without arguments the configured roots are searched. Results are listed in
discovery order; the same launcher reached twice is listed twice unless
--unique is given.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVarP(&scanDepth, "depth", "d", -1, "Maximum search depth below each root (default from config)")
	scanCmd.Flags().BoolVarP(&scanEnv, "env", "e", false, "Also search JAVA_HOME and friends and PATH")
	scanCmd.Flags().BoolVarP(&scanUnique, "unique", "u", false, "Drop repeated launchers")
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "", "Output format: table, json, toml or yaml")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(scanOutput)
	if err != nil {
		return err
	}

	a := getApp()
	ctx := cmd.Context()

	found := a.Scan(ctx, args, scanDepth)
	if scanEnv {
		found = append(found, a.ScanEnvironment(ctx)...)
	}
	if scanUnique {
		found = runtime.Unique(found)
	}

	if len(found) == 0 && format == "table" {
		logInfo("No java runtimes found. Try a larger --depth or --env.")
		return nil
	}

	return writeRuntimes(cmd.OutOrStdout(), format, found)
}
