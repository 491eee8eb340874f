package runtime

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/firefly-engineering/javart/internal/errors"
)

// versionPattern matches a quoted MAJOR.MINOR token optionally followed by
// further digits, underscores and periods, e.g. "17.0.4.1" or "1.8.0_333".
var versionPattern = regexp.MustCompile(`"(\d+\.\d+[\d._]*)"`)

// ExtractVersion returns the first quoted version token found in text,
// without its quotes.
//
// The whole input is wrapped in an extra pair of quotes before matching, so
// a bare token such as 17.0.4.1 is found as well as the quoted token inside
// a full `java -version` banner:
//
//	ExtractVersion("1.8.0_333")                    // "1.8.0_333"
//	ExtractVersion(`java version "17.0.4.1" LTS`) // "17.0.4.1"
//	ExtractVersion("17")                           // NoVersionFound
func ExtractVersion(text string) (string, error) {
	m := versionPattern.FindStringSubmatch(`"` + text + `"`)
	if m == nil {
		return "", errors.NoVersionFound()
	}
	return m[1], nil
}

// majorVersion returns the feature release number of a normalized version.
// Legacy 1.x versions report their second component: 1.8.0_333 is 8.
func majorVersion(version string) int {
	parts := strings.FieldsFunc(version, func(r rune) bool {
		return r == '.' || r == '_'
	})
	if len(parts) == 0 {
		return 0
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	if major == 1 && len(parts) > 1 {
		if minor, err := strconv.Atoi(parts[1]); err == nil {
			return minor
		}
	}
	return major
}
