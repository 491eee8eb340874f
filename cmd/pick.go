package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/javart/internal/errors"
	"github.com/firefly-engineering/javart/internal/runtime"
	"github.com/firefly-engineering/javart/internal/tui"
)

var (
	pickDepth int
	pickEnv   bool
	pickList  bool
)

var pickCmd = &cobra.Command{
	Use:   "pick [roots...]",
	Short: "Choose a java runtime interactively",
	Long: `Search for runtimes like "scan" and let you choose one from a list.
The chosen launcher path is printed on stdout:

  JAVA="$(javart-ctl pick --env)"`,
	RunE: runPick,
}

func init() {
	pickCmd.Flags().IntVarP(&pickDepth, "depth", "d", -1, "Maximum search depth below each root (default from config)")
	pickCmd.Flags().BoolVarP(&pickEnv, "env", "e", false, "Also search JAVA_HOME and friends and PATH")
	pickCmd.Flags().BoolVarP(&pickList, "list", "l", false, "Print a plain numbered list instead of the picker")
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	a := getApp()
	ctx := cmd.Context()

	found := a.Scan(ctx, args, pickDepth)
	if pickEnv {
		found = append(found, a.ScanEnvironment(ctx)...)
	}
	found = runtime.Unique(found)

	if pickList {
		fmt.Fprint(cmd.OutOrStdout(), tui.SimplePicker(found))
		return nil
	}

	if len(found) == 0 {
		logWarning("No java runtimes found.")
		return errors.New(errors.ExitGeneralError, "no java runtimes found")
	}

	result, err := tui.RunPicker(found)
	if err != nil {
		return errors.Wrap(errors.ExitGeneralError, "picker failed", err)
	}

	if result.Action == tui.ActionSelect {
		fmt.Fprintln(cmd.OutOrStdout(), result.Runtime.Executable())
	}
	return nil
}
