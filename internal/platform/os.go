package platform

import (
	"regexp"
	"strings"
)

// OS name constants for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// ExeSuffix returns the executable file suffix for goos.
func ExeSuffix(goos string) string {
	if goos == Windows {
		return ".exe"
	}
	return ""
}

// windowsVolumeRoot matches drive-rooted paths such as C:\ or d:/.
var windowsVolumeRoot = regexp.MustCompile(`^[A-Za-z]:[\\/]`)

// HasRoot reports whether path is rooted under goos conventions.
// On Windows, drive roots, UNC paths and paths starting with a separator
// count as rooted; elsewhere only a leading slash does.
func HasRoot(goos, path string) bool {
	if goos == Windows {
		return windowsVolumeRoot.MatchString(path) ||
			strings.HasPrefix(path, `\`) ||
			strings.HasPrefix(path, "/")
	}
	return strings.HasPrefix(path, "/")
}
