// Package catalog reads and writes lists of java runtimes.
//
// A catalog is a sequence of {os, path, versionString} records stored as a
// JSON array, a TOML document of [[runtime]] tables, or a YAML sequence.
// Decoding rebuilds every entry through runtime.FromRecord, so a catalog
// whose version strings do not parse is rejected.
package catalog
