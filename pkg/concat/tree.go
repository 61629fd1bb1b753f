// File: pkg/concat/tree.go
package concat

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// RenderTree renders a directory tree for every root, listing the files that
// pass the filter under their directories. Roots are rendered in order, one
// block per root.
func RenderTree(roots []string, filter *Filter, logger *zap.Logger) (string, error) {
	var treeBuilder strings.Builder

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			logger.Warn("Cannot stat root for tree generation",
				zap.String("root", root),
				zap.Error(err))
			continue
		}
		if !info.IsDir() {
			continue
		}

		treeBuilder.WriteString(root + "/\n")
		subtree, err := renderSubtree(root, root, filter, "", logger)
		if err != nil {
			logger.Warn("Failed to render subtree",
				zap.String("root", root),
				zap.Error(err))
			continue
		}
		if subtree != "" {
			treeBuilder.WriteString(subtree)
			treeBuilder.WriteString("\n")
		}
	}

	return treeBuilder.String(), nil
}

// renderSubtree builds the tree structure recursively, directories first,
// names sorted case-insensitively within each group.
func renderSubtree(directory, root string, filter *Filter, prefix string, logger *zap.Logger) (string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %s: %w", directory, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	var output []string
	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		entryPath := filepath.Join(directory, entry.Name())

		if entry.IsDir() {
			output = append(output, fmt.Sprintf("%s%s%s/", prefix, connector, entry.Name()))
			subtree, err := renderSubtree(entryPath, root, filter, prefix+extension, logger)
			if err != nil {
				logger.Warn("Failed to render subtree",
					zap.String("directory", entryPath),
					zap.Error(err))
				continue
			}
			if subtree != "" {
				output = append(output, subtree)
			}
			continue
		}

		relPath, relErr := filepath.Rel(root, entryPath)
		if relErr != nil {
			relPath = entryPath
		}
		if filter.Decide(normalizePath(relPath)) == Included {
			output = append(output, prefix+connector+entry.Name())
		}
	}

	return strings.Join(output, "\n"), nil
}
