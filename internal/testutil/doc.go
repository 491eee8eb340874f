// Package testutil provides test fixtures and utilities.
//
// # Fixtures
//
// Real `java -version` banners are embedded using go:embed:
//
//	fixtures/openjdk-8.txt
//	fixtures/oracle-8.txt
//	fixtures/oracle-17.txt
//	fixtures/openjdk-21.txt
//	fixtures/not-java.txt
//
// Load them with Banner (fails the test on error) or LoadFixture.
//
// # Fake Launchers
//
// FakeJava writes <home>/bin/java as a shell script that prints a banner to
// stderr and exits with a chosen status, so the whole probe pipeline can run
// against a real process:
//
//	func TestProbe(t *testing.T) {
//	    home := t.TempDir()
//	    path := testutil.FakeJava(t, home, testutil.Banner(t, testutil.Oracle17), 0)
//	    rt, err := runtime.FromExecutable(context.Background(), path)
//	    ...
//	}
//
// HangingJava writes a launcher that never answers, for timeout tests.
// Both skip the calling test on Windows.
package testutil
