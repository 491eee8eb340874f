package config

import (
	"fmt"
	"os"
	"path/filepath"
	goruntime "runtime"
	"slices"
	"time"

	"github.com/spf13/viper"

	"github.com/firefly-engineering/javart/internal/detector"
	"github.com/firefly-engineering/javart/internal/errors"
	"github.com/firefly-engineering/javart/internal/platform"
)

const (
	// AppName names the configuration directory.
	AppName = "javart"
	// FileName is the configuration file looked up in DefaultDir.
	FileName = "config.toml"
	// EnvPrefix prefixes environment overrides, e.g. JAVART_MAX_DEPTH.
	EnvPrefix = "JAVART"
)

// Defaults
const (
	DefaultMaxDepth     = 4
	DefaultProbeTimeout = 10 * time.Second
	DefaultConcurrency  = 1
	DefaultOutput       = "table"
)

// OutputFormats lists the accepted values of Output.
var OutputFormats = []string{"table", "json", "toml", "yaml"}

// Config holds the settings of a detection run.
type Config struct {
	Roots        []string      `mapstructure:"roots"`
	MaxDepth     int           `mapstructure:"max_depth"`
	EnvVars      []string      `mapstructure:"env_vars"`
	HomeDepth    int           `mapstructure:"home_depth"`
	PathDepth    int           `mapstructure:"path_depth"`
	ProbeTimeout time.Duration `mapstructure:"probe_timeout"`
	Concurrency  int           `mapstructure:"concurrency"`
	Output       string        `mapstructure:"output"`
}

// DefaultRoots returns the usual runtime installation directories for goos.
func DefaultRoots(goos string) []string {
	switch goos {
	case platform.Windows:
		return []string{`C:\Program Files\Java`, `C:\Program Files\Eclipse Adoptium`}
	case platform.Darwin:
		return []string{"/Library/Java/JavaVirtualMachines"}
	default:
		return []string{"/usr/lib/jvm", "/usr/java", "/opt"}
	}
}

// DefaultConfig returns the built-in configuration for the host OS.
func DefaultConfig() *Config {
	return &Config{
		Roots:        DefaultRoots(goruntime.GOOS),
		MaxDepth:     DefaultMaxDepth,
		EnvVars:      detector.DefaultVars(),
		HomeDepth:    detector.DefaultHomeDepth,
		PathDepth:    detector.DefaultPathDepth,
		ProbeTimeout: DefaultProbeTimeout,
		Concurrency:  DefaultConcurrency,
		Output:       DefaultOutput,
	}
}

// DefaultDir returns the per-user configuration directory, for example
// $XDG_CONFIG_HOME/javart on Linux.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName), nil
}

// DefaultPath returns the path of the per-user configuration file.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load builds the configuration from defaults, a TOML file and JAVART_*
// environment variables, in increasing order of precedence.
//
// When path is empty the per-user file is read if it exists. An explicit
// path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("roots", defaults.Roots)
	v.SetDefault("max_depth", defaults.MaxDepth)
	v.SetDefault("env_vars", defaults.EnvVars)
	v.SetDefault("home_depth", defaults.HomeDepth)
	v.SetDefault("path_depth", defaults.PathDepth)
	v.SetDefault("probe_timeout", defaults.ProbeTimeout)
	v.SetDefault("concurrency", defaults.Concurrency)
	v.SetDefault("output", defaults.Output)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path == "" {
		if p, err := DefaultPath(); err == nil && fileExists(p) {
			path = p
		}
	} else if !fileExists(path) {
		return nil, errors.ConfigError(fmt.Sprintf("config file not found: %s", path), os.ErrNotExist)
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.ConfigError(fmt.Sprintf("failed to read config %s", path), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.ConfigError("failed to parse config", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch {
	case c.MaxDepth < 0:
		return errors.ConfigError(fmt.Sprintf("max_depth must not be negative, got %d", c.MaxDepth), nil)
	case c.HomeDepth < 0:
		return errors.ConfigError(fmt.Sprintf("home_depth must not be negative, got %d", c.HomeDepth), nil)
	case c.PathDepth < 0:
		return errors.ConfigError(fmt.Sprintf("path_depth must not be negative, got %d", c.PathDepth), nil)
	case c.ProbeTimeout < 0:
		return errors.ConfigError(fmt.Sprintf("probe_timeout must not be negative, got %s", c.ProbeTimeout), nil)
	case c.Concurrency < 1:
		return errors.ConfigError(fmt.Sprintf("concurrency must be at least 1, got %d", c.Concurrency), nil)
	case !slices.Contains(OutputFormats, c.Output):
		return errors.ConfigError(fmt.Sprintf("invalid output %q: must be one of %v", c.Output, OutputFormats), nil)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
