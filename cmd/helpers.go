package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/firefly-engineering/javart/internal/app"
	"github.com/firefly-engineering/javart/internal/catalog"
	"github.com/firefly-engineering/javart/internal/config"
	"github.com/firefly-engineering/javart/internal/errors"
	"github.com/firefly-engineering/javart/internal/runtime"
)

// getApp returns the application context built for the running command.
func getApp() *app.App {
	return app.Default
}

// outputFormat resolves an --output flag against the configured default.
func outputFormat(flag string) (string, error) {
	if flag == "" {
		return getApp().Config.Output, nil
	}
	for _, f := range config.OutputFormats {
		if flag == f {
			return f, nil
		}
	}
	return "", errors.ValidationError(fmt.Sprintf("invalid output %q: must be one of %v", flag, config.OutputFormats))
}

// writeRuntimes prints runtimes as a table or as a catalog document.
func writeRuntimes(w io.Writer, format string, runtimes []*runtime.JavaRuntime) error {
	if format != "table" {
		f, err := catalog.ParseFormat(format)
		if err != nil {
			return err
		}
		return catalog.Encode(w, f, runtimes)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tMAJOR\tOS\tPATH")
	fmt.Fprintln(tw, "-------\t-----\t--\t----")

	for _, rt := range runtimes {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n",
			rt.VersionString(), rt.MajorVersion(), rt.OS(), rt.Executable())
	}

	return tw.Flush()
}
