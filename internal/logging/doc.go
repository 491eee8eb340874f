// Package logging provides logging utilities for javart-ctl.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings.
// Text output is rendered by charmbracelet/log; --json switches to slog's
// JSON handler:
//
//	logging.Debug("probing candidate", "path", path)
//	logging.Warn("probe timed out", "path", path, "timeout", timeout)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Scanning %d roots...", len(roots))
//	logging.UserSuccess("Found %d runtimes", n)
//	logging.UserWarning("%s is not available on this host", path)
//	logging.UserError("Probe failed: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
package logging
