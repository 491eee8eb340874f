// Package app provides the application context for javart-ctl.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
// The App struct holds core dependencies:
//
//	type App struct {
//	    Config   *config.Config         // Loaded settings
//	    FS       system.FileSystem      // Shape checks (nil: host)
//	    Executor system.CommandExecutor // Version queries (nil: host)
//	    Prober   *runtime.Prober        // Candidate validation
//	    Detector *detector.Detector     // Tree search
//	}
//
// # Creating an App
//
// Use New with functional options:
//
//	// Production usage
//	a := app.New(app.WithConfig(cfg))
//
//	// Testing with mocked OS access
//	a := app.New(
//	    app.WithFileSystem(system.NewMockFS()),
//	    app.WithExecutor(system.NewMockExecutor()),
//	)
//
// # Available Options
//
//	WithConfig(cfg)        // Settings, default config.DefaultConfig()
//	WithFileSystem(fs)     // File system for the prober
//	WithExecutor(exec)     // Command executor for the prober
//	WithProber(prober)     // Fully custom prober
package app
