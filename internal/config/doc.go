// Package config loads javart-ctl settings.
//
// Settings come from three layers, later ones winning:
//
//   - built-in defaults (DefaultConfig)
//   - a TOML file, either given with --config or found at
//     $XDG_CONFIG_HOME/javart/config.toml (os.UserConfigDir elsewhere)
//   - JAVART_* environment variables, e.g. JAVART_MAX_DEPTH=6
//
// An example file:
//
//	roots = ["/usr/lib/jvm", "/opt"]
//	max_depth = 4
//	env_vars = ["JAVA_HOME", "JDK_HOME"]
//	home_depth = 2
//	path_depth = 1
//	probe_timeout = "10s"
//	concurrency = 4
//	output = "table"
//
// Load validates the result; see Config.Validate.
package config
