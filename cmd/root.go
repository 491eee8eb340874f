package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/javart/internal/app"
	"github.com/firefly-engineering/javart/internal/config"
	"github.com/firefly-engineering/javart/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	configFile string
)

// appOptions are applied to the application context built for every
// command; tests use them to inject mocks.
var appOptions []app.Option

var rootCmd = &cobra.Command{
	Use:   "javart-ctl",
	Short: "Locate and validate installed Java runtimes",
	Long: `javart-ctl finds Java runtimes installed on this machine.

Candidates come from directory trees and from the environment:
  - JAVA_HOME, JAVA_ROOT, JDK_HOME and JRE_HOME
  - every directory on PATH

A candidate counts as a runtime when it is a file named java (java.exe
on Windows) inside a bin directory and "java -version" reports a version.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(verbose, jsonOutput, os.Stderr)

		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		logging.Debug("configuration loaded", "roots", cfg.Roots, "max_depth", cfg.MaxDepth)

		opts := append([]app.Option{app.WithConfig(cfg)}, appOptions...)
		app.SetDefault(app.New(opts...))
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file (default: user config dir/javart/config.toml)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
)
