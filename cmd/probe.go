package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/javart/internal/runtime"
)

var (
	probeDryRun bool
	probeOutput string
)

var probeCmd = &cobra.Command{
	Use:   "probe <path>",
	Short: "Validate a single java launcher",
	Long: `Check that path looks like a java launcher and run it with -version.
path may also be a bin directory or an installation directory such as
$JAVA_HOME, in which case the launcher inside it is probed.

Failures are reported with a distinct exit code:
  3  no version in the output
  4  not a **/bin/java path
  5  the launcher could not be started
  6  the launcher failed or timed out`,
	Args: cobra.ExactArgs(1),
	RunE: runProbe,
}

func init() {
	probeCmd.Flags().BoolVarP(&probeDryRun, "dry-run", "n", false, "Print the command that would run")
	probeCmd.Flags().StringVarP(&probeOutput, "output", "o", "", "Output format: table, json, toml or yaml")
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	a := getApp()

	if probeDryRun {
		path, err := a.Detector.Launcher(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), runtime.Command(path))
		return nil
	}

	format, err := outputFormat(probeOutput)
	if err != nil {
		return err
	}

	rt, err := a.Probe(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	return writeRuntimes(cmd.OutOrStdout(), format, []*runtime.JavaRuntime{rt})
}
