// Package errors provides typed errors with exit codes for javart-ctl.
//
// # Error Types
//
// JavartError is the base error type that wraps an error with an exit code:
//
//	type JavartError struct {
//	    Code    int    // Exit code, doubles as the error kind
//	    Message string // User-facing message
//	    Path    string // Candidate path, when the error concerns one
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess            = 0  // Success
//	ExitGeneralError       = 1  // General/unknown errors
//	ExitInvalidWorkDir     = 2  // Working directory could not be read
//	ExitNoVersionFound     = 3  // Text carried no version token
//	ExitNotAnExecutable    = 4  // Path is not shaped like **/bin/java
//	ExitSpawnFailed        = 5  // Candidate could not be started
//	ExitVersionQueryFailed = 6  // Candidate ran but did not report a version
//	ExitConfigError        = 7  // Configuration error
//	ExitCatalogError       = 8  // Catalog encode/decode failure
//
// # Matching Kinds
//
// Each detection kind has a sentinel that matches any error of the same
// code anywhere in the chain:
//
//	if errors.Is(err, errors.ErrNotAnExecutable) {
//	    // skip candidate
//	}
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
