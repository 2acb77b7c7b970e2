package manifest

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/user0420EEC/hassmap/internal/classify"
	"github.com/user0420EEC/hassmap/internal/fileutil"
	"github.com/user0420EEC/hassmap/internal/parser"
)

// indexedDirs is the fixed set of subdirectories whose immediate files are
// listed in files_index when the directory exists.
var indexedDirs = []string{"includes", "esphome", "zigbee2mqtt", "blueprints", "custom_components"}

// Build performs one full scan of root and assembles the manifest. Walk
// errors abort the build; per-file content problems (unreadable YAML,
// malformed bytes) only cost that file its include entry.
func Build(root, projectName, repoURL string) (*Manifest, error) {
	files, err := fileutil.ListFiles(root)
	if err != nil {
		return nil, err
	}

	tops, err := fileutil.TopLevelEntries(root)
	if err != nil {
		return nil, err
	}

	rootMap := make(map[string]Entry, len(tops))
	for _, e := range tops {
		entry := Entry{Type: nodeType(e.IsDir())}
		entry.Description = describe(root, e.Name(), e.IsDir())
		rootMap[e.Name()] = entry
	}

	fileEntries := make([]FileEntry, 0, len(files))
	includes := make(map[string][]string)
	for _, rel := range files {
		fileEntries = append(fileEntries, FileEntry{
			Path:        rel,
			Type:        "file",
			Description: describe(root, rel, false),
		})

		if targets := parser.Includes(filepath.Join(root, filepath.FromSlash(rel))); len(targets) > 0 {
			includes[rel] = targets
		}
	}

	index, err := indexByGlob(root)
	if err != nil {
		return nil, err
	}

	return &Manifest{
		ProjectName:  projectName,
		Repository:   repoURL,
		Generated:    time.Now().UTC().Format(time.RFC3339),
		Root:         rootMap,
		Files:        fileEntries,
		FilesIndex:   index,
		YAMLIncludes: includes,
		Relations:    relations(includes),
		UsageRules:   defaultUsageRules,
	}, nil
}

func nodeType(isDir bool) string {
	if isDir {
		return "directory"
	}
	return "file"
}

// describe runs the name-based heuristics, then falls back to the Markdown
// document title for files the table knows nothing about.
func describe(root, rel string, isDir bool) string {
	if desc := classify.Describe(rel); desc != "" {
		return desc
	}
	if isDir {
		return ""
	}
	return classify.DocTitle(filepath.Join(root, filepath.FromSlash(rel)))
}

// relations copies the include map into the adjacency-list view. The two
// maps are the same today, but they are serialized independently so
// downstream consumers can rely on either key.
func relations(includes map[string][]string) map[string][]string {
	rel := make(map[string][]string, len(includes))
	for k, v := range includes {
		targets := make([]string, len(v))
		copy(targets, v)
		rel[k] = targets
	}
	return rel
}

// indexByGlob lists the immediate files of each well-known subdirectory that
// exists under root, sorted case-insensitively by name. An existing but
// empty directory is recorded with an empty list.
func indexByGlob(root string) (map[string][]string, error) {
	index := make(map[string][]string)
	fsys := os.DirFS(root)

	for _, dir := range indexedDirs {
		info, err := os.Stat(filepath.Join(root, dir))
		if err != nil || !info.IsDir() {
			continue
		}

		matches, err := doublestar.Glob(fsys, dir+"/*")
		if err != nil {
			return nil, err
		}

		names := make([]string, 0, len(matches))
		for _, m := range matches {
			fi, err := fs.Stat(fsys, m)
			if err != nil || fi.IsDir() {
				continue
			}
			names = append(names, path.Base(m))
		}
		sort.Slice(names, func(i, j int) bool {
			return strings.ToLower(names[i]) < strings.ToLower(names[j])
		})
		index[dir] = names
	}
	return index, nil
}
