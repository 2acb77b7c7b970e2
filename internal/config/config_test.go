package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	// t.Setenv registers cleanup; setting then unsetting restores the
	// original values after the test.
	t.Setenv("PROJECT_NAME", "")
	t.Setenv("REPO_URL", "")
	os.Unsetenv("PROJECT_NAME")
	os.Unsetenv("REPO_URL")
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ".", cfg.RootDir)
	assert.Equal(t, "project_structure.json", cfg.OutputFile)
	assert.Equal(t, "Home Assistant Configuration", cfg.ProjectName)
	assert.Equal(t, "", cfg.RepoURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.History.Enabled)
}

func TestLoadDefaultsWhenNothingPresent(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()

	cfg, err := Load(root)
	require.NoError(t, err)

	assert.Equal(t, root, cfg.RootDir)
	assert.Equal(t, DefaultProjectName, cfg.ProjectName)
	assert.Equal(t, "", cfg.RepoURL)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROJECT_NAME", "Foo")
	t.Setenv("REPO_URL", "http://x")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "Foo", cfg.ProjectName)
	assert.Equal(t, "http://x", cfg.RepoURL)
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()

	content := "project_name: From File\nrepo_url: http://file\nlog_level: debug\nhistory:\n  enabled: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(root)
	require.NoError(t, err)

	assert.Equal(t, "From File", cfg.ProjectName)
	assert.Equal(t, "http://file", cfg.RepoURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.History.Enabled)
}

func TestLoadEnvBeatsConfigFile(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName),
		[]byte("project_name: From File\n"), 0644))
	t.Setenv("PROJECT_NAME", "From Env")

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, "From Env", cfg.ProjectName)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"),
		[]byte("PROJECT_NAME=From DotEnv\n"), 0644))

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, "From DotEnv", cfg.ProjectName)
}

func TestLoadMalformedConfigFile(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName),
		[]byte("project_name: [unclosed\n"), 0644))

	_, err := Load(root)
	assert.Error(t, err)
}
