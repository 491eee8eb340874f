package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/javart/internal/catalog"
	"github.com/firefly-engineering/javart/internal/errors"
	"github.com/firefly-engineering/javart/internal/logging"
)

var verifyWrite bool

var verifyCmd = &cobra.Command{
	Use:   "verify <catalog>",
	Short: "Check that catalogued runtimes still work",
	Long: `Read a catalog written with "scan -o json|toml|yaml" and probe every
runtime in it again. Runtimes catalogued for another OS are reported but
not run. The catalog format follows the file extension.

With --write the catalog is rewritten with the refreshed versions.`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().BoolVarP(&verifyWrite, "write", "w", false, "Rewrite the catalog with refreshed versions")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	path := args[0]

	runtimes, err := catalog.ReadFile(path)
	if err != nil {
		return err
	}

	prober := getApp().Prober
	ctx := cmd.Context()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STATUS\tVERSION\tOS\tPATH")
	fmt.Fprintln(w, "------\t-------\t--\t----")

	failed := 0
	for _, rt := range runtimes {
		status := "✓ ok"
		if rt.OS() != prober.TargetOS() {
			status = "○ other-os"
		} else {
			before := rt.VersionString()
			if err := prober.Refresh(ctx, rt); err != nil {
				logging.Debug("catalogued runtime unavailable", "path", rt.Executable(), "error", err)
				status = "✗ unavailable"
				failed++
			} else if rt.VersionString() != before {
				status = "↻ updated"
			}
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", status, rt.VersionString(), rt.OS(), rt.Executable())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if verifyWrite {
		if err := catalog.WriteFile(path, runtimes); err != nil {
			return err
		}
		logSuccess("Catalog %s updated", path)
	}

	if failed > 0 {
		return errors.ValidationError(fmt.Sprintf("%d of %d runtimes are unavailable", failed, len(runtimes)))
	}
	return nil
}
