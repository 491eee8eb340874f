// Package runtime detects and describes java runtimes.
//
// A runtime is identified by the location of its launcher binary,
// **/bin/java (java.exe on Windows). This package holds the record type and
// the single-path pipeline; walking directories is left to the detector
// package.
//
// # Records
//
// JavaRuntime carries the OS tag it was created under, the launcher path and
// the normalized version text. Records are created either by probing a real
// launcher:
//
//	rt, err := runtime.FromExecutable(ctx, "/usr/lib/jvm/jdk-17/bin/java")
//
// or by assembling known values, which only validates the version:
//
//	rt, err := runtime.New("windows", `D:\jdk\bin\java.exe`, "21.0.3")
//
// Equality compares OS and path only.
//
// # Probing
//
// Prober runs the pipeline: the shape check (LooksLikeExecutable), one
// `java -version` run with stderr captured, and ExtractVersion over the
// output. Its FS and Executor fields accept the mocks from the system
// package for hermetic tests.
//
// # Version Grammar
//
// ExtractVersion wraps its input in quotes and returns the first quoted
// MAJOR.MINOR[digits, '_' or '.'] token.
package runtime
