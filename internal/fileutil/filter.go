package fileutil

import "strings"

// excludedDirs is the fixed set of directory names that are never descended
// into: version-control metadata, virtualenvs, tool caches, editor state and
// dependency directories.
var excludedDirs = map[string]bool{
	".git":          true,
	".github":       true,
	".venv":         true,
	"venv":          true,
	"__pycache__":   true,
	".mypy_cache":   true,
	".pytest_cache": true,
	".idea":         true,
	".vscode":       true,
	"node_modules":  true,
	".cache":        true,
	".tox":          true,
}

// excludedFileSuffixes is the fixed set of filename suffixes treated as noise:
// compiled artifacts, logs, temp and backup files.
var excludedFileSuffixes = []string{
	".pyc", ".pyo", ".log", ".tmp", ".swp", ".swo", ".bak", "~",
}

// IsExcludedDir reports whether a directory name belongs to the denylist.
// Unknown names pass through.
func IsExcludedDir(name string) bool {
	return excludedDirs[name]
}

// IsExcludedFile reports whether a filename ends with a noise suffix.
func IsExcludedFile(name string) bool {
	for _, suffix := range excludedFileSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
