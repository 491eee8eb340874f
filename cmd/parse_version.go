package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/javart/internal/errors"
	"github.com/firefly-engineering/javart/internal/runtime"
)

var parseVersionCmd = &cobra.Command{
	Use:   "parse-version [text...]",
	Short: "Extract the version from java -version output",
	Long: `Print the first quoted version token found in the text.

The text is taken from the arguments, or from stdin when there are none:

  java -version 2>&1 | javart-ctl parse-version`,
	RunE: runParseVersion,
}

func init() {
	rootCmd.AddCommand(parseVersionCmd)
}

func runParseVersion(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return errors.Wrap(errors.ExitGeneralError, "failed to read stdin", err)
		}
		text = string(data)
	}

	version, err := runtime.ExtractVersion(text)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), version)
	return nil
}
