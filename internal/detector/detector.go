package detector

import (
	"context"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
	"golang.org/x/sync/errgroup"

	"github.com/firefly-engineering/javart/internal/errors"
	"github.com/firefly-engineering/javart/internal/logging"
	"github.com/firefly-engineering/javart/internal/runtime"
)

// Detector searches directory trees for java runtimes.
// The zero value searches the host sequentially with runtime.DefaultProber.
type Detector struct {
	// Prober validates candidates; nil means runtime.DefaultProber().
	Prober *runtime.Prober

	// Concurrency is the number of roots searched at once by the
	// multi-root methods. Values below 2 search roots one after another.
	Concurrency int
}

// Root is a search root with its own depth bound.
type Root struct {
	Path  string
	Depth int
	// Source names where the root came from, e.g. "JAVA_HOME" or "PATH".
	Source string
}

func (d *Detector) prober() *runtime.Prober {
	if d.Prober != nil {
		return d.Prober
	}
	return runtime.DefaultProber()
}

// Collect returns the runtimes found under root, searching at most
// maxDepth levels below it.
func (d *Detector) Collect(ctx context.Context, root string, maxDepth int) []*runtime.JavaRuntime {
	return d.Gather(ctx, nil, root, maxDepth)
}

// CollectAll returns the runtimes found under each of roots, in root order.
func (d *Detector) CollectAll(ctx context.Context, roots []string, maxDepth int) []*runtime.JavaRuntime {
	return d.GatherAll(ctx, nil, roots, maxDepth)
}

// Gather appends the runtimes found under root to dst and returns the
// extended slice.
func (d *Detector) Gather(ctx context.Context, dst []*runtime.JavaRuntime, root string, maxDepth int) []*runtime.JavaRuntime {
	p := d.prober()
	walk(ctx, p.FileSystem(), root, maxDepth, func(path string) {
		if rt, ok := d.DetectExecutable(ctx, path); ok {
			dst = append(dst, rt)
		}
	})
	return dst
}

// GatherAll appends the runtimes found under each of roots to dst.
func (d *Detector) GatherAll(ctx context.Context, dst []*runtime.JavaRuntime, roots []string, maxDepth int) []*runtime.JavaRuntime {
	rs := make([]Root, len(roots))
	for i, path := range roots {
		rs[i] = Root{Path: path, Depth: maxDepth}
	}
	return d.GatherRoots(ctx, dst, rs)
}

// GatherRoots appends the runtimes found under each root, searched to its
// own depth, to dst. With Concurrency above 1 roots are searched in
// parallel; the output keeps root order either way.
func (d *Detector) GatherRoots(ctx context.Context, dst []*runtime.JavaRuntime, roots []Root) []*runtime.JavaRuntime {
	if d.Concurrency < 2 || len(roots) < 2 {
		for _, r := range roots {
			dst = d.Gather(ctx, dst, r.Path, r.Depth)
		}
		return dst
	}

	found := make([][]*runtime.JavaRuntime, len(roots))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.Concurrency)
	for i, r := range roots {
		g.Go(func() error {
			found[i] = d.Gather(gctx, nil, r.Path, r.Depth)
			return nil
		})
	}
	_ = g.Wait()

	for _, rs := range found {
		dst = append(dst, rs...)
	}
	return dst
}

// DetectExecutable probes a single candidate launcher. Failures are logged
// at debug level and reported as false.
func (d *Detector) DetectExecutable(ctx context.Context, path string) (*runtime.JavaRuntime, bool) {
	rt, err := d.prober().Probe(ctx, path)
	if err != nil {
		// Most walk entries are not launchers at all.
		if !errors.Is(err, errors.ErrNotAnExecutable) {
			logging.Debug("rejected java candidate", "path", path, "error", err)
		}
		return nil, false
	}
	logging.Debug("found java runtime", "path", path, "version", rt.VersionString())
	return rt, true
}

// DetectBinDir probes the launcher inside dir, a bin directory.
func (d *Detector) DetectBinDir(ctx context.Context, dir string) (*runtime.JavaRuntime, bool) {
	return d.DetectExecutable(ctx, d.binLauncher(dir))
}

// DetectHomeDir probes the launcher inside home/bin, where home is a
// runtime installation directory such as the value of JAVA_HOME.
func (d *Detector) DetectHomeDir(ctx context.Context, home string) (*runtime.JavaRuntime, bool) {
	launcher, err := d.HomeLauncher(home)
	if err != nil {
		logging.Debug("cannot resolve bin directory", "home", home, "error", err)
		return nil, false
	}
	return d.DetectExecutable(ctx, launcher)
}

// HomeLauncher returns the launcher path inside home/bin.
//
// The bin directory is resolved inside home, so a bin link pointing
// outside the installation is scoped to it. The launcher itself is left
// unresolved; alternatives-style links are handled by the shape check.
func (d *Detector) HomeLauncher(home string) (string, error) {
	fsys := d.prober().FileSystem()

	// A root climbing out of the working directory is made absolute first.
	root := filepath.Clean(home)
	if root == ".." || strings.HasPrefix(root, ".."+string(filepath.Separator)) {
		wd, err := fsys.Getwd()
		if err != nil {
			return "", errors.InvalidWorkDir(err)
		}
		root = filepath.Join(wd, root)
	}

	bin, err := securejoin.SecureJoinVFS(root, "bin", fsys)
	if err != nil {
		return "", errors.Wrap(errors.ExitNotAnExecutable, "cannot resolve bin directory of "+home, err)
	}
	return filepath.Join(bin, d.executableName()), nil
}

// Launcher maps a bin directory or an installation directory to the
// launcher inside it. Any other path, including a missing one, is returned
// unchanged.
func (d *Detector) Launcher(path string) (string, error) {
	if !d.prober().FileSystem().IsDir(path) {
		return path, nil
	}
	if filepath.Base(filepath.Clean(path)) == "bin" {
		return d.binLauncher(path), nil
	}
	return d.HomeLauncher(path)
}

func (d *Detector) binLauncher(dir string) string {
	return filepath.Join(dir, d.executableName())
}

func (d *Detector) executableName() string {
	return runtime.ExecutableName(d.prober().TargetOS())
}
