package detector

import (
	"context"
	"os"
	"path/filepath"

	"github.com/firefly-engineering/javart/internal/runtime"
)

// PathVar is the variable listing executable search directories.
const PathVar = "PATH"

// Default depths for environment roots. A home root holds its launcher at
// <home>/bin/java, two levels down; PATH entries are bin directories.
const (
	DefaultHomeDepth = 2
	DefaultPathDepth = 1
)

// DefaultVars returns the variables naming runtime installation
// directories, in lookup order.
func DefaultVars() []string {
	return []string{"JAVA_HOME", "JAVA_ROOT", "JDK_HOME", "JRE_HOME"}
}

// Environment derives search roots from environment variables.
type Environment struct {
	// Vars name installation directories; nil means DefaultVars().
	Vars []string

	// LookupEnv reads a variable; nil means os.LookupEnv.
	LookupEnv func(key string) (string, bool)

	// HomeDepth bounds the search below each installation directory.
	HomeDepth int

	// PathDepth bounds the search below each PATH entry.
	PathDepth int
}

// DefaultEnvironment returns an Environment reading the process
// environment with the default variables and depths.
func DefaultEnvironment() Environment {
	return Environment{
		Vars:      DefaultVars(),
		HomeDepth: DefaultHomeDepth,
		PathDepth: DefaultPathDepth,
	}
}

// Roots returns one root per set, non-empty installation variable, in
// Vars order, followed by one root per non-empty PATH entry. PATH is split
// with the host list separator.
func (e Environment) Roots() []Root {
	lookup := e.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	vars := e.Vars
	if vars == nil {
		vars = DefaultVars()
	}

	var roots []Root
	for _, name := range vars {
		if v, ok := lookup(name); ok && v != "" {
			roots = append(roots, Root{Path: v, Depth: e.HomeDepth, Source: name})
		}
	}

	if v, ok := lookup(PathVar); ok {
		for _, dir := range filepath.SplitList(v) {
			if dir == "" {
				continue
			}
			roots = append(roots, Root{Path: dir, Depth: e.PathDepth, Source: PathVar})
		}
	}
	return roots
}

// CollectEnvironment returns the runtimes found under the roots derived
// from env.
func (d *Detector) CollectEnvironment(ctx context.Context, env Environment) []*runtime.JavaRuntime {
	return d.GatherRoots(ctx, nil, env.Roots())
}
