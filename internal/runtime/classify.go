package runtime

import (
	"path/filepath"
	"strings"

	"github.com/firefly-engineering/javart/internal/errors"
	"github.com/firefly-engineering/javart/internal/platform"
)

// binDirName is the directory a java launcher must live in.
const binDirName = "bin"

// ExecutableName returns the launcher file name for the given OS:
// "java.exe" on Windows and "java" elsewhere.
func ExecutableName(goos string) string {
	return "java" + platform.ExeSuffix(goos)
}

// LooksLikeExecutable reports whether path looks like a java launcher on
// this host. See Prober.LooksLikeExecutable.
func LooksLikeExecutable(path string) bool {
	return DefaultProber().LooksLikeExecutable(path)
}

// LooksLikeExecutable reports whether path is an existing regular file whose
// canonical form is **/bin/java (or **/bin/java.exe on Windows).
//
// Only the file name and the name of its parent directory are checked, so
// runtimes are accepted whatever their installation layout, while stray
// files named java outside a bin directory are rejected.
func (p *Prober) LooksLikeExecutable(path string) bool {
	info, err := p.FileSystem().Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	canonical, err := p.canonicalize(path)
	if err != nil {
		return false
	}

	goos := p.goos()
	if !sameName(goos, filepath.Base(canonical), ExecutableName(goos)) {
		return false
	}
	return sameName(goos, filepath.Base(filepath.Dir(canonical)), binDirName)
}

// canonicalize returns the absolute, symlink-free form of path.
func (p *Prober) canonicalize(path string) (string, error) {
	fsys := p.FileSystem()
	if !filepath.IsAbs(path) {
		cwd, err := fsys.Getwd()
		if err != nil {
			return "", errors.InvalidWorkDir(err)
		}
		path = filepath.Join(cwd, path)
	}
	return fsys.EvalSymlinks(path)
}

// sameName compares file names, ignoring case on Windows.
func sameName(goos, a, b string) bool {
	if goos == platform.Windows {
		return strings.EqualFold(a, b)
	}
	return a == b
}
