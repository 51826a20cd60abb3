package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	cfg := &Config{
		Environments: []Environment{
			{Name: "production", BaseURL: DefaultBaseURL, WebURL: DefaultWebURL},
			{Name: "local", BaseURL: "http://localhost:8000/api/v1"},
		},
	}
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse config file")
}

func TestFindConfigFileSearchesUpwards(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, Save(filepath.Join(root, ConfigFileName), DefaultConfig()))

	chdir(t, nested)

	found, err := FindConfigFile()
	require.NoError(t, err)

	// macOS resolves /tmp through a symlink, compare resolved paths
	want, err := filepath.EvalSymlinks(filepath.Join(root, ConfigFileName))
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(found)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestFindConfigFileMissing(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := FindConfigFile()
	require.Error(t, err)
	require.Contains(t, err.Error(), ConfigFileName)
}

func TestGetEnvironmentByName(t *testing.T) {
	cfg := &Config{
		Environments: []Environment{
			{Name: "production", BaseURL: DefaultBaseURL},
			{Name: "staging", BaseURL: "https://staging.example.com/api/v1"},
		},
	}

	env, err := cfg.GetEnvironmentByName("staging")
	require.NoError(t, err)
	require.Equal(t, "https://staging.example.com/api/v1", env.BaseURL)

	_, err = cfg.GetEnvironmentByName("nope")
	require.Error(t, err)
}

func TestGetDefaultEnvironment(t *testing.T) {
	cfg := &Config{Environments: []Environment{{Name: "local", BaseURL: "http://localhost:8000/api/v1"}}}

	env, err := cfg.GetDefaultEnvironment()
	require.NoError(t, err)
	require.Equal(t, "local", env.Name)

	_, err = (&Config{}).GetDefaultEnvironment()
	require.Error(t, err)
}

func TestBaseURLOverride(t *testing.T) {
	chdir(t, t.TempDir())

	require.Empty(t, BaseURLOverride())

	t.Setenv("BREATE_API_BASE_URL", "http://localhost:9000/api/v1")
	require.Equal(t, "http://localhost:9000/api/v1", BaseURLOverride())
}

func TestBaseURLOverrideFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BREATE_API_BASE_URL=http://from-dotenv:8000/api/v1\n"), 0644))
	chdir(t, dir)

	// godotenv never overrides variables already set in the process
	os.Unsetenv("BREATE_API_BASE_URL")
	t.Cleanup(func() { os.Unsetenv("BREATE_API_BASE_URL") })

	require.Equal(t, "http://from-dotenv:8000/api/v1", BaseURLOverride())
}
