// File: pkg/concat/traversal.go
package concat

import (
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// WalkRoot traverses a single root directory depth-first and invokes fn for
// every non-directory entry found, with the relative path computed against
// this root. Entries are visited in lexical order within each directory, so
// output order is deterministic rather than platform enumeration order.
//
// Paths that cannot be accessed during the walk are logged and skipped. A
// root that does not exist or cannot be read yields zero entries and a
// warning; it never fails the run. Directory symlinks are not followed, so a
// cyclic link cannot hang the walk.
func WalkRoot(root string, logger *zap.Logger, fn func(Entry) error) error {
	if _, err := os.Stat(root); err != nil {
		logger.Warn("Root does not exist or cannot be accessed",
			zap.String("root", root),
			zap.Error(err))
		return nil
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during traversal",
				zap.String("path", path),
				zap.Error(err))
			return nil
		}
		if d.IsDir() {
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			logger.Warn("Unable to determine relative path, using absolute path",
				zap.String("path", path),
				zap.String("root", root),
				zap.Error(relErr))
			relPath = path
		}

		return fn(Entry{Path: path, RelPath: normalizePath(relPath)})
	})
}

// normalizePath converts OS-specific path separators to forward slashes so
// pattern matching and headers behave the same on every platform.
func normalizePath(path string) string {
	return filepath.ToSlash(path)
}
