package runtime

import (
	"context"
	"fmt"
	goruntime "runtime"
	"strings"
	"time"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/javart/internal/errors"
	"github.com/firefly-engineering/javart/internal/logging"
	"github.com/firefly-engineering/javart/internal/system"
)

// VersionFlag is the single argument passed to a candidate launcher.
const VersionFlag = "-version"

// DefaultProbeTimeout bounds a single version query.
const DefaultProbeTimeout = 10 * time.Second

// Prober validates candidate launchers by shape and by running them.
// The zero value probes the real host with no timeout.
type Prober struct {
	// FS is used for the shape check; nil means system.DefaultFS().
	FS system.FileSystem

	// Executor runs the version query; nil means system.DefaultExecutor().
	Executor system.CommandExecutor

	// OS tags the records produced and selects the launcher name;
	// empty means the host OS.
	OS string

	// Timeout bounds each version query when positive.
	Timeout time.Duration
}

// FileSystem returns the file system used for shape checks.
func (p *Prober) FileSystem() system.FileSystem {
	if p.FS != nil {
		return p.FS
	}
	return system.DefaultFS()
}

func (p *Prober) executor() system.CommandExecutor {
	if p.Executor != nil {
		return p.Executor
	}
	return system.DefaultExecutor()
}

func (p *Prober) goos() string {
	if p.OS != "" {
		return p.OS
	}
	return goruntime.GOOS
}

// TargetOS returns the OS tag given to the records this prober creates.
func (p *Prober) TargetOS() string {
	return p.goos()
}

// Command returns the shell-quoted command line used to probe path.
func Command(path string) string {
	return shellquote.Join(path, VersionFlag)
}

// Probe validates path and returns a runtime record for it.
//
// The path must pass LooksLikeExecutable, otherwise NotAnExecutable is
// returned without spawning anything. The launcher is then run once with
// -version: a start failure is SpawnFailed, a non-zero exit or an expired
// timeout is VersionQueryFailed, and a banner without a version token is
// NoVersionFound. The record keeps path exactly as given.
func (p *Prober) Probe(ctx context.Context, path string) (*JavaRuntime, error) {
	if !p.LooksLikeExecutable(path) {
		return nil, errors.NotAnExecutable(path)
	}

	version, err := p.queryVersion(ctx, path)
	if err != nil {
		return nil, err
	}

	return &JavaRuntime{
		os:      p.goos(),
		path:    path,
		version: version,
	}, nil
}

// Refresh re-probes r and replaces its version on success.
// On failure r is left untouched.
func (p *Prober) Refresh(ctx context.Context, r *JavaRuntime) error {
	fresh, err := p.Probe(ctx, r.path)
	if err != nil {
		return err
	}
	r.version = fresh.version
	return nil
}

func (p *Prober) queryVersion(ctx context.Context, path string) (string, error) {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	logging.Debug("querying java version", "command", Command(path))

	out, err := p.executor().Capture(ctx, path, VersionFlag)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", errors.VersionQueryFailed(path, ctxErr)
		}
		return "", errors.SpawnFailed(path, err)
	}
	if !out.Success() {
		return "", errors.VersionQueryFailed(path, fmt.Errorf("exit status %d", out.ExitCode))
	}

	return ExtractVersion(decodeOutput(out.Stderr))
}

// decodeOutput turns launcher output into text, replacing invalid UTF-8.
func decodeOutput(b []byte) string {
	return strings.ToValidUTF8(string(b), "\uFFFD")
}
