package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/javart/internal/runtime"
)

var (
	envUnique bool
	envOutput string
	envRoots  bool
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Find java runtimes named by the environment",
	Long: `Search the installation directories named by JAVA_HOME, JAVA_ROOT,
JDK_HOME and JRE_HOME, then every directory on PATH.

Use --roots to list the search roots without probing anything.`,
	Args: cobra.NoArgs,
	RunE: runEnv,
}

func init() {
	envCmd.Flags().BoolVarP(&envUnique, "unique", "u", false, "Drop repeated launchers")
	envCmd.Flags().StringVarP(&envOutput, "output", "o", "", "Output format: table, json, toml or yaml")
	envCmd.Flags().BoolVar(&envRoots, "roots", false, "List search roots only")
	rootCmd.AddCommand(envCmd)
}

func runEnv(cmd *cobra.Command, args []string) error {
	a := getApp()

	if envRoots {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SOURCE\tDEPTH\tPATH")
		fmt.Fprintln(w, "------\t-----\t----")
		for _, r := range a.Environment().Roots() {
			fmt.Fprintf(w, "%s\t%d\t%s\n", r.Source, r.Depth, r.Path)
		}
		return w.Flush()
	}

	format, err := outputFormat(envOutput)
	if err != nil {
		return err
	}

	found := a.ScanEnvironment(cmd.Context())
	if envUnique {
		found = runtime.Unique(found)
	}

	if len(found) == 0 && format == "table" {
		logInfo("No java runtimes found in the environment.")
		return nil
	}

	return writeRuntimes(cmd.OutOrStdout(), format, found)
}
