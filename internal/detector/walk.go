package detector

import (
	"context"
	"path/filepath"

	"github.com/firefly-engineering/javart/internal/logging"
	"github.com/firefly-engineering/javart/internal/system"
)

// node is a pending walk entry. dir is set only for real directories,
// never for symbolic links.
type node struct {
	path  string
	depth int
	dir   bool
}

// walk calls visit for root and every entry below it whose depth does not
// exceed maxDepth. The root has depth 0 and its entries depth 1.
//
// A root that is a symbolic link is followed; links found below the root
// are visited but never descended, so link cycles terminate. Directories
// that cannot be read are skipped. The walk stops early when ctx is done.
func walk(ctx context.Context, fsys system.FileSystem, root string, maxDepth int, visit func(path string)) {
	if maxDepth < 0 {
		return
	}

	log := logging.With("root", root)

	info, err := fsys.Stat(root)
	if err != nil {
		log.Debug("skipping search root", "error", err)
		return
	}

	stack := []node{{path: root, depth: 0, dir: info.IsDir()}}
	for len(stack) > 0 {
		if ctx.Err() != nil {
			return
		}

		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visit(n.path)

		if !n.dir || n.depth >= maxDepth {
			continue
		}

		entries, err := fsys.ReadDir(n.path)
		if err != nil {
			log.Debug("skipping unreadable directory", "path", n.path, "error", err)
			continue
		}

		// Pushed in reverse so entries pop in directory order.
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			stack = append(stack, node{
				path:  filepath.Join(n.path, e.Name()),
				depth: n.depth + 1,
				dir:   e.IsDir(),
			})
		}
	}
}
