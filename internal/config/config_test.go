package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/firefly-engineering/javart/internal/detector"
	"github.com/firefly-engineering/javart/internal/errors"
	"github.com/firefly-engineering/javart/internal/platform"
)

// isolate points the per-user config directory at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)
	return dir
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func TestDefaultRoots(t *testing.T) {
	tests := []struct {
		goos string
		want []string
	}{
		{platform.Linux, []string{"/usr/lib/jvm", "/usr/java", "/opt"}},
		{platform.Darwin, []string{"/Library/Java/JavaVirtualMachines"}},
		{platform.Windows, []string{`C:\Program Files\Java`, `C:\Program Files\Eclipse Adoptium`}},
		{"freebsd", []string{"/usr/lib/jvm", "/usr/java", "/opt"}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			if got := DefaultRoots(tt.goos); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DefaultRoots(%q) = %v, want %v", tt.goos, got, tt.want)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxDepth != 4 {
		t.Errorf("MaxDepth = %d, want 4", cfg.MaxDepth)
	}
	if cfg.HomeDepth != 2 || cfg.PathDepth != 1 {
		t.Errorf("HomeDepth, PathDepth = %d, %d, want 2, 1", cfg.HomeDepth, cfg.PathDepth)
	}
	if cfg.ProbeTimeout != 10*time.Second {
		t.Errorf("ProbeTimeout = %s, want 10s", cfg.ProbeTimeout)
	}
	if cfg.Concurrency != 1 {
		t.Errorf("Concurrency = %d, want 1", cfg.Concurrency)
	}
	if cfg.Output != "table" {
		t.Errorf("Output = %q, want table", cfg.Output)
	}
	if !reflect.DeepEqual(cfg.EnvVars, []string{"JAVA_HOME", "JAVA_ROOT", "JDK_HOME", "JRE_HOME"}) {
		t.Errorf("EnvVars = %v", cfg.EnvVars)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	writeConfig(t, path, `
roots = ["/srv/java", "/opt/jdks"]
max_depth = 6
env_vars = ["GRAALVM_HOME"]
probe_timeout = "2s"
concurrency = 4
output = "yaml"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !reflect.DeepEqual(cfg.Roots, []string{"/srv/java", "/opt/jdks"}) {
		t.Errorf("Roots = %v", cfg.Roots)
	}
	if cfg.MaxDepth != 6 {
		t.Errorf("MaxDepth = %d, want 6", cfg.MaxDepth)
	}
	if !reflect.DeepEqual(cfg.EnvVars, []string{"GRAALVM_HOME"}) {
		t.Errorf("EnvVars = %v", cfg.EnvVars)
	}
	if cfg.ProbeTimeout != 2*time.Second {
		t.Errorf("ProbeTimeout = %s, want 2s", cfg.ProbeTimeout)
	}
	if cfg.Concurrency != 4 {
		t.Errorf("Concurrency = %d, want 4", cfg.Concurrency)
	}
	if cfg.Output != "yaml" {
		t.Errorf("Output = %q, want yaml", cfg.Output)
	}
	// Unset keys keep their defaults.
	if cfg.HomeDepth != detector.DefaultHomeDepth {
		t.Errorf("HomeDepth = %d, want %d", cfg.HomeDepth, detector.DefaultHomeDepth)
	}
}

func TestLoad_UserConfigFile(t *testing.T) {
	isolate(t)
	path, err := DefaultPath()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	writeConfig(t, path, "max_depth = 9\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MaxDepth != 9 {
		t.Errorf("MaxDepth = %d, want 9 from %s", cfg.MaxDepth, path)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	writeConfig(t, path, "max_depth = 6\noutput = \"json\"\n")

	t.Setenv("JAVART_MAX_DEPTH", "8")
	t.Setenv("JAVART_PROBE_TIMEOUT", "250ms")
	t.Setenv("JAVART_ROOTS", "/a,/b")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MaxDepth != 8 {
		t.Errorf("MaxDepth = %d, want 8 from environment", cfg.MaxDepth)
	}
	if cfg.ProbeTimeout != 250*time.Millisecond {
		t.Errorf("ProbeTimeout = %s, want 250ms", cfg.ProbeTimeout)
	}
	if !reflect.DeepEqual(cfg.Roots, []string{"/a", "/b"}) {
		t.Errorf("Roots = %v, want [/a /b]", cfg.Roots)
	}
	if cfg.Output != "json" {
		t.Errorf("Output = %q, want json from file", cfg.Output)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := isolate(t)

	tests := []struct {
		name    string
		content string
	}{
		{"malformed", "max_depth = [\n"},
		{"negative depth", "max_depth = -1\n"},
		{"zero concurrency", "concurrency = 0\n"},
		{"bad output", "output = \"xml\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".toml")
			writeConfig(t, path, tt.content)

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load should fail")
			}
			if code := errors.GetExitCode(err); code != errors.ExitConfigError {
				t.Errorf("exit code = %d, want %d", code, errors.ExitConfigError)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Load should fail for a missing explicit file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero depth", func(c *Config) { c.MaxDepth = 0 }, false},
		{"negative max depth", func(c *Config) { c.MaxDepth = -1 }, true},
		{"negative home depth", func(c *Config) { c.HomeDepth = -1 }, true},
		{"negative path depth", func(c *Config) { c.PathDepth = -2 }, true},
		{"negative timeout", func(c *Config) { c.ProbeTimeout = -time.Second }, true},
		{"zero timeout", func(c *Config) { c.ProbeTimeout = 0 }, false},
		{"zero concurrency", func(c *Config) { c.Concurrency = 0 }, true},
		{"toml output", func(c *Config) { c.Output = "toml" }, false},
		{"unknown output", func(c *Config) { c.Output = "csv" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
