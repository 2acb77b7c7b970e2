// Package parser extracts !include directives from YAML configuration files.
//
// Home Assistant splits its configuration across files with a family of
// custom tags: !include, !include_dir_list, !include_dir_named,
// !include_dir_merge_list and !include_dir_merge_named. This package only
// detects and records the literal reference, it never resolves the target.
package parser

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// includeRe matches one include directive and captures its target: the next
// token up to whitespace or a comment. A directive missing its target does
// not match.
var includeRe = regexp.MustCompile(`(?i)!\s*include(?:_dir_(?:merge_list|merge_named|list|named))?\s+([^\s#]+)`)

// Includes returns the sorted, duplicate-free include targets found in the
// file at path. Non-YAML paths, unreadable files and files with no directives
// all yield nil.
//
// Targets are recorded exactly as written, trailing slashes included. Read
// failures are swallowed here: a single broken file must not abort the scan.
func Includes(path string) []string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
	default:
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	// Tolerate malformed byte sequences instead of failing the file.
	text := strings.ToValidUTF8(string(raw), "")

	return ExtractIncludes(text)
}

// ExtractIncludes scans text for include directives and returns the sorted,
// deduplicated targets. Zero matches yield nil, not an empty slice, so
// callers can distinguish "no directives" without a length check.
func ExtractIncludes(text string) []string {
	matches := includeRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	var targets []string
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			targets = append(targets, m[1])
		}
	}
	sort.Strings(targets)
	return targets
}
