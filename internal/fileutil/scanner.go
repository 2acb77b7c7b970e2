package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListFiles walks root recursively and returns the relative, slash-separated
// paths of every file that survives the filters. Excluded directories are
// pruned during descent so their subtrees are never visited. The result is
// sorted case-insensitively by full path.
//
// Walk errors (missing root, permission denied) are returned, not collected:
// a structural problem aborts the whole scan.
func ListFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if d.IsDir() {
			if IsExcludedDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if IsExcludedFile(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	// Stable, so paths equal under ToLower keep their walk order.
	sort.SliceStable(files, func(i, j int) bool {
		return strings.ToLower(files[i]) < strings.ToLower(files[j])
	})
	return files, nil
}

// TopLevelEntries returns the immediate children of root, both files and
// directories, excluding denylisted directory names, sorted
// case-insensitively by name.
func TopLevelEntries(root string) ([]fs.DirEntry, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read root: %w", err)
	}

	kept := make([]fs.DirEntry, 0, len(entries))
	for _, e := range entries {
		// Matches on name alone, regardless of entry type.
		if IsExcludedDir(e.Name()) {
			continue
		}
		kept = append(kept, e)
	}

	sort.Slice(kept, func(i, j int) bool {
		return strings.ToLower(kept[i].Name()) < strings.ToLower(kept[j].Name())
	})
	return kept, nil
}
