package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTree(t *testing.T, root string, files []string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte("test content"), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
	}
}

func TestIsExcludedDir(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{".git", true},
		{".github", true},
		{"node_modules", true},
		{"__pycache__", true},
		{".tox", true},
		{"venv", true},
		{"includes", false},
		{"esphome", false},
		{"GIT", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsExcludedDir(tt.name); got != tt.want {
			t.Errorf("IsExcludedDir(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsExcludedFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"module.pyc", true},
		{"debug.log", true},
		{"scratch.tmp", true},
		{"editor.swp", true},
		{"backup.bak", true},
		{"notes~", true},
		{"configuration.yaml", false},
		{"log", false},
		{"tmp.yaml", false},
	}

	for _, tt := range tests {
		if got := IsExcludedFile(tt.name); got != tt.want {
			t.Errorf("IsExcludedFile(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestListFiles(t *testing.T) {
	tmpDir := t.TempDir()

	writeTree(t, tmpDir, []string{
		"configuration.yaml",
		"Zigbee.yaml",
		"automations.yaml",
		"includes/sensors.yaml",
		"includes/nested/lights.yaml",
		"debug.log",
		".git/config",
		".git/objects/ab/cdef",
		"node_modules/pkg/index.js",
		"venv/lib/site.py",
		"esphome/device.yaml",
		"esphome/cache.tmp",
	})

	files, err := ListFiles(tmpDir)
	if err != nil {
		t.Fatalf("ListFiles() error: %v", err)
	}

	want := []string{
		"automations.yaml",
		"configuration.yaml",
		"esphome/device.yaml",
		"includes/nested/lights.yaml",
		"includes/sensors.yaml",
		"Zigbee.yaml",
	}

	if len(files) != len(want) {
		t.Fatalf("ListFiles() = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestListFilesMissingRoot(t *testing.T) {
	_, err := ListFiles(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("ListFiles() on missing root: expected error, got nil")
	}
}

func TestListFilesRootIsFile(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ListFiles(file); err == nil {
		t.Fatal("ListFiles() on a file: expected error, got nil")
	}
}

func TestTopLevelEntries(t *testing.T) {
	tmpDir := t.TempDir()

	writeTree(t, tmpDir, []string{
		"configuration.yaml",
		"README.md",
		"includes/sensors.yaml",
		".git/config",
		"node_modules/pkg/index.js",
	})

	entries, err := TopLevelEntries(tmpDir)
	if err != nil {
		t.Fatalf("TopLevelEntries() error: %v", err)
	}

	want := []string{"configuration.yaml", "includes", "README.md"}
	if len(entries) != len(want) {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Fatalf("TopLevelEntries() = %v, want %v", names, want)
	}
	for i, e := range entries {
		if e.Name() != want[i] {
			t.Errorf("entries[%d] = %q, want %q", i, e.Name(), want[i])
		}
	}

	if !entries[1].IsDir() {
		t.Errorf("expected %q to be a directory", entries[1].Name())
	}
}

// A top-level file carrying a denylisted directory name is filtered by name
// alone, matching the original filter semantics.
func TestTopLevelEntriesNameOnlyFilter(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, []string{"venv", "keep.yaml"})

	entries, err := TopLevelEntries(tmpDir)
	if err != nil {
		t.Fatalf("TopLevelEntries() error: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "keep.yaml" {
		t.Errorf("expected only keep.yaml, got %d entries", len(entries))
	}
}
