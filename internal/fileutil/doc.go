// Package fileutil provides the filtered filesystem walk that feeds the
// manifest generator.
//
// It is the single source of truth for which paths count as part of the
// repository: version-control metadata, caches, editor state and dependency
// directories are pruned during the walk, and noise files (compiled
// artifacts, logs, temp/backup files) are dropped by suffix.
//
// All results are sorted case-insensitively so repeated scans of an
// unchanged tree produce identical output.
//
// Error handling is deliberately loud: a missing root or a permission error
// during the walk aborts the scan. Content-level problems are not this
// package's concern; it only enumerates paths.
package fileutil
