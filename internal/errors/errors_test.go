package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestJavartError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *JavartError
		wantMsg string
	}{
		{
			name:    "without cause",
			err:     New(ExitGeneralError, "something went wrong"),
			wantMsg: "something went wrong",
		},
		{
			name:    "with cause",
			err:     Wrap(ExitGeneralError, "operation failed", fmt.Errorf("underlying error")),
			wantMsg: "operation failed: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestJavartError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ExitGeneralError, "wrapped", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	errNoCause := New(ExitGeneralError, "no cause")
	if unwrapped := errNoCause.Unwrap(); unwrapped != nil {
		t.Errorf("Unwrap() = %v, want nil", unwrapped)
	}
}

func TestJavartError_ExitCode(t *testing.T) {
	tests := []struct {
		code int
		name string
	}{
		{ExitSuccess, "success"},
		{ExitGeneralError, "general"},
		{ExitInvalidWorkDir, "invalid work dir"},
		{ExitNoVersionFound, "no version found"},
		{ExitNotAnExecutable, "not an executable"},
		{ExitSpawnFailed, "spawn failed"},
		{ExitVersionQueryFailed, "version query failed"},
		{ExitConfigError, "config error"},
		{ExitCatalogError, "catalog error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, "test")
			if got := err.ExitCode(); got != tt.code {
				t.Errorf("ExitCode() = %d, want %d", got, tt.code)
			}
		})
	}
}

func TestNotAnExecutable(t *testing.T) {
	err := NotAnExecutable("/opt/java")

	if err.Code != ExitNotAnExecutable {
		t.Errorf("Code = %d, want %d", err.Code, ExitNotAnExecutable)
	}
	if err.Path != "/opt/java" {
		t.Errorf("Path = %q, want %q", err.Path, "/opt/java")
	}

	want := "path does not look like a java executable [**/bin/java(.exe)]: /opt/java"
	if err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
}

func TestSpawnFailed(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := SpawnFailed("/jdk/bin/java", cause)

	if err.Code != ExitSpawnFailed {
		t.Errorf("Code = %d, want %d", err.Code, ExitSpawnFailed)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Path != "/jdk/bin/java" {
		t.Errorf("Path = %q, want %q", err.Path, "/jdk/bin/java")
	}
}

func TestVersionQueryFailed(t *testing.T) {
	err := VersionQueryFailed("/jdk/bin/java", nil)

	if err.Code != ExitVersionQueryFailed {
		t.Errorf("Code = %d, want %d", err.Code, ExitVersionQueryFailed)
	}
	if err.Error() != "failed to get java version: /jdk/bin/java" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestInvalidWorkDir(t *testing.T) {
	cause := fmt.Errorf("getwd: no such file or directory")
	err := InvalidWorkDir(cause)

	if err.Code != ExitInvalidWorkDir {
		t.Errorf("Code = %d, want %d", err.Code, ExitInvalidWorkDir)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the getwd cause")
	}
}

func TestConfigError(t *testing.T) {
	cause := fmt.Errorf("invalid toml")
	err := ConfigError("failed to parse config", cause)

	if err.Code != ExitConfigError {
		t.Errorf("Code = %d, want %d", err.Code, ExitConfigError)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
}

func TestSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"invalid work dir", InvalidWorkDir(nil), ErrInvalidWorkDir},
		{"no version", NoVersionFound(), ErrNoVersionFound},
		{"not an executable", NotAnExecutable("/x"), ErrNotAnExecutable},
		{"spawn failed", SpawnFailed("/x", fmt.Errorf("boom")), ErrSpawnFailed},
		{"version query failed", VersionQueryFailed("/x", nil), ErrVersionQueryFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Is(tt.err, tt.sentinel) {
				t.Errorf("Is(%v, sentinel) = false, want true", tt.err)
			}
			wrapped := fmt.Errorf("outer: %w", tt.err)
			if !Is(wrapped, tt.sentinel) {
				t.Error("sentinel should match through wrapping")
			}
		})
	}

	if Is(NoVersionFound(), ErrSpawnFailed) {
		t.Error("different kinds should not match")
	}
	if Is(ValidationError("a"), ValidationError("a")) {
		t.Error("distinct general errors should not match each other")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "JavartError",
			err:      NotAnExecutable("/tmp/java"),
			wantCode: ExitNotAnExecutable,
		},
		{
			name:     "wrapped JavartError",
			err:      fmt.Errorf("outer: %w", NoVersionFound()),
			wantCode: ExitNoVersionFound,
		},
		{
			name:     "regular error",
			err:      fmt.Errorf("some error"),
			wantCode: ExitGeneralError,
		},
		{
			name:     "nil error",
			err:      nil,
			wantCode: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.wantCode {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.wantCode)
			}
		})
	}
}

func TestAs(t *testing.T) {
	javartErr := SpawnFailed("/jdk/bin/java", fmt.Errorf("exec format error"))
	wrapped := fmt.Errorf("wrapped: %w", javartErr)

	var target *JavartError
	if !As(wrapped, &target) {
		t.Fatal("As() should return true for wrapped JavartError")
	}

	if target.Code != ExitSpawnFailed {
		t.Errorf("target.Code = %d, want %d", target.Code, ExitSpawnFailed)
	}

	regularErr := fmt.Errorf("regular error")
	if As(regularErr, &target) {
		t.Error("As() should return false for non-JavartError")
	}
}

func TestErrorChaining(t *testing.T) {
	root := fmt.Errorf("root cause")
	middle := Wrap(ExitConfigError, "config error", root)
	outer := fmt.Errorf("operation failed: %w", middle)

	if !errors.Is(outer, root) {
		t.Error("errors.Is should find root cause")
	}

	var javartErr *JavartError
	if !errors.As(outer, &javartErr) {
		t.Error("errors.As should find JavartError")
	}

	if javartErr.Code != ExitConfigError {
		t.Errorf("Code = %d, want %d", javartErr.Code, ExitConfigError)
	}
}
