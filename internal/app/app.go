// Package app provides the application context for javart-ctl.
// It allows dependency injection for testing.
package app

import (
	"context"

	"github.com/firefly-engineering/javart/internal/config"
	"github.com/firefly-engineering/javart/internal/detector"
	"github.com/firefly-engineering/javart/internal/runtime"
	"github.com/firefly-engineering/javart/internal/system"
)

// App holds the application dependencies
type App struct {
	// Config holds the loaded settings
	Config *config.Config

	// FS and Executor back the prober; nil means the host
	FS       system.FileSystem
	Executor system.CommandExecutor

	// Prober validates candidate launchers
	Prober *runtime.Prober

	// Detector searches directory trees
	Detector *detector.Detector
}

// Option is a function that configures the App
type Option func(*App)

// WithConfig sets the configuration
func WithConfig(cfg *config.Config) Option {
	return func(a *App) {
		a.Config = cfg
	}
}

// WithFileSystem sets the file system used for shape checks
func WithFileSystem(fs system.FileSystem) Option {
	return func(a *App) {
		a.FS = fs
	}
}

// WithExecutor sets the executor used for version queries
func WithExecutor(exec system.CommandExecutor) Option {
	return func(a *App) {
		a.Executor = exec
	}
}

// WithProber sets a custom prober
func WithProber(p *runtime.Prober) Option {
	return func(a *App) {
		a.Prober = p
	}
}

// New creates a new App with the given options.
// The prober and detector are derived from the configuration unless
// provided.
func New(opts ...Option) *App {
	app := &App{}

	for _, opt := range opts {
		opt(app)
	}

	if app.Config == nil {
		app.Config = config.DefaultConfig()
	}

	if app.Prober == nil {
		app.Prober = &runtime.Prober{
			FS:       app.FS,
			Executor: app.Executor,
			Timeout:  app.Config.ProbeTimeout,
		}
	}

	if app.Detector == nil {
		app.Detector = &detector.Detector{
			Prober:      app.Prober,
			Concurrency: app.Config.Concurrency,
		}
	}

	return app
}

// Environment returns the environment locator described by the config
func (a *App) Environment() detector.Environment {
	env := detector.DefaultEnvironment()
	env.Vars = a.Config.EnvVars
	env.HomeDepth = a.Config.HomeDepth
	env.PathDepth = a.Config.PathDepth
	return env
}

// Scan searches roots, or the configured roots when none are given, down
// to depth levels. A negative depth selects the configured depth.
func (a *App) Scan(ctx context.Context, roots []string, depth int) []*runtime.JavaRuntime {
	if len(roots) == 0 {
		roots = a.Config.Roots
	}
	if depth < 0 {
		depth = a.Config.MaxDepth
	}
	return a.Detector.CollectAll(ctx, roots, depth)
}

// ScanEnvironment searches the roots named by the environment
func (a *App) ScanEnvironment(ctx context.Context) []*runtime.JavaRuntime {
	return a.Detector.CollectEnvironment(ctx, a.Environment())
}

// Probe validates a single launcher and surfaces its failure.
// A bin or installation directory is probed through the launcher inside it.
func (a *App) Probe(ctx context.Context, path string) (*runtime.JavaRuntime, error) {
	launcher, err := a.Detector.Launcher(path)
	if err != nil {
		return nil, err
	}
	return a.Prober.Probe(ctx, launcher)
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
