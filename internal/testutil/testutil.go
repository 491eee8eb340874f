package testutil

import (
	"embed"
	"os"
	"path/filepath"
	goruntime "runtime"
	"strconv"
	"testing"
)

//go:embed fixtures/*.txt
var fixturesFS embed.FS

// Banner fixture names.
const (
	OpenJDK8  = "openjdk-8.txt"
	Oracle8   = "oracle-8.txt"
	Oracle17  = "oracle-17.txt"
	OpenJDK21 = "openjdk-21.txt"
	NotJava   = "not-java.txt"
)

// LoadFixture loads a fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// Banner returns a `java -version` banner fixture, failing the test if it
// is missing.
func Banner(t testing.TB, name string) string {
	t.Helper()
	data, err := LoadFixture(name)
	if err != nil {
		t.Fatalf("load fixture %s: %v", name, err)
	}
	return string(data)
}

// SkipWithoutShell skips tests that need fake launchers written as shell
// scripts.
func SkipWithoutShell(t testing.TB) {
	t.Helper()
	if goruntime.GOOS == "windows" {
		t.Skip("fake java launchers are shell scripts")
	}
}

// FakeJava writes an executable launcher at <home>/bin/java that prints
// banner to stderr and exits with exitCode. It returns the launcher path.
func FakeJava(t testing.TB, home, banner string, exitCode int) string {
	t.Helper()
	script := "#!/bin/sh\ncat >&2 <<'BANNER'\n" + banner + "\nBANNER\nexit " + strconv.Itoa(exitCode) + "\n"
	return writeLauncher(t, home, script)
}

// HangingJava writes a launcher at <home>/bin/java that never answers.
func HangingJava(t testing.TB, home string) string {
	t.Helper()
	return writeLauncher(t, home, "#!/bin/sh\nexec sleep 30\n")
}

func writeLauncher(t testing.TB, home, script string) string {
	t.Helper()
	SkipWithoutShell(t)

	bin := filepath.Join(home, "bin")
	if err := os.MkdirAll(bin, 0755); err != nil {
		t.Fatalf("create %s: %v", bin, err)
	}
	path := filepath.Join(bin, "java")
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteFile creates path, and its parent directories, with data.
func WriteFile(t testing.TB, path, data string, perm os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(data), perm); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
