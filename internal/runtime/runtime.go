package runtime

import (
	"context"
	"fmt"
	"path/filepath"
	goruntime "runtime"

	"github.com/firefly-engineering/javart/internal/errors"
	"github.com/firefly-engineering/javart/internal/platform"
	"github.com/firefly-engineering/javart/internal/system"
)

// JavaRuntime is a java launcher at a specific path, together with the OS it
// was catalogued under and the version it reported.
//
// Records are value objects: two records are Equal when OS and path match,
// whatever their version text.
type JavaRuntime struct {
	os      string
	path    string
	version string
}

// New assembles a record from known values without running anything.
//
// versionText may be a bare version such as "17.0.4.1" or the full output
// of `java -version`; it is normalized with ExtractVersion and New fails
// with NoVersionFound when it carries no version. os is taken as given, so
// runtimes for another platform can be catalogued.
func New(os, path, versionText string) (*JavaRuntime, error) {
	version, err := ExtractVersion(versionText)
	if err != nil {
		return nil, err
	}
	return &JavaRuntime{os: os, path: path, version: version}, nil
}

// FromExecutable probes path with the default prober and returns the
// resulting record tagged with the host OS.
func FromExecutable(ctx context.Context, path string) (*JavaRuntime, error) {
	return DefaultProber().Probe(ctx, path)
}

// OS returns the OS tag captured when the record was created.
func (r *JavaRuntime) OS() string {
	return r.os
}

// Executable returns the launcher path, absolute or relative depending on
// how the record was created.
func (r *JavaRuntime) Executable() string {
	return r.path
}

// VersionString returns the normalized version, e.g. "1.8.0_333".
func (r *JavaRuntime) VersionString() string {
	return r.version
}

// MajorVersion returns the feature release number: 8 for "1.8.0_333",
// 17 for "17.0.4.1".
func (r *JavaRuntime) MajorVersion() int {
	return majorVersion(r.version)
}

// IsWindows reports whether the record was catalogued under Windows.
func (r *JavaRuntime) IsWindows() bool {
	return r.os == platform.Windows
}

// IsSameOS reports whether the record belongs to the host OS.
func (r *JavaRuntime) IsSameOS() bool {
	return r.os == goruntime.GOOS
}

// HasRoot reports whether the path is absolute under the record's own OS
// rules, so D:\jdk\bin\java.exe has a root even when examined on Linux.
func (r *JavaRuntime) HasRoot() bool {
	return platform.HasRoot(r.os, r.path)
}

// ToAbsolute returns a copy whose path is joined onto the current working
// directory. Records that already have a root are returned as a clone.
func (r *JavaRuntime) ToAbsolute() (*JavaRuntime, error) {
	if r.HasRoot() {
		return r.Clone(), nil
	}

	cwd, err := system.DefaultFS().Getwd()
	if err != nil {
		return nil, errors.InvalidWorkDir(err)
	}
	return New(r.os, filepath.Join(cwd, r.path), r.version)
}

// Refresh runs the launcher again and updates the version on success.
// The record is unchanged when the probe fails.
func (r *JavaRuntime) Refresh(ctx context.Context) error {
	return DefaultProber().Refresh(ctx, r)
}

// IsAvailable reports whether the runtime belongs to this OS and still
// answers a version query.
func (r *JavaRuntime) IsAvailable(ctx context.Context) bool {
	if !r.IsSameOS() {
		return false
	}
	_, err := FromExecutable(ctx, r.path)
	return err == nil
}

// Equal reports whether both records point at the same launcher under the
// same OS tag. The version text is not compared.
func (r *JavaRuntime) Equal(other *JavaRuntime) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.os == other.os && r.path == other.path
}

// Clone returns an independent copy of r.
func (r *JavaRuntime) Clone() *JavaRuntime {
	c := *r
	return &c
}

func (r *JavaRuntime) String() string {
	return fmt.Sprintf("java %s (%s) at %s", r.version, r.os, r.path)
}

// Unique returns runtimes with later duplicates, by Equal, removed.
// Order is preserved.
func Unique(runtimes []*JavaRuntime) []*JavaRuntime {
	result := make([]*JavaRuntime, 0, len(runtimes))
	type key struct{ os, path string }
	seen := make(map[key]bool, len(runtimes))
	for _, r := range runtimes {
		k := key{r.os, r.path}
		if seen[k] {
			continue
		}
		seen[k] = true
		result = append(result, r)
	}
	return result
}
