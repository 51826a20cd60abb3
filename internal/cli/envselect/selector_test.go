package envselect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/breate-dev/breate/internal/cli/config"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

// Without a breate.json the CLI talks to the hosted deployment
func TestResolveEnvironment_NoConfigFallsBackToHosted(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BREATE_API_BASE_URL", "")

	env, err := ResolveEnvironment("")
	require.NoError(t, err)
	require.Equal(t, "production", env.Name)
	require.Equal(t, config.DefaultBaseURL, env.BaseURL)
}

func TestResolveEnvironment_NamedEnvRequiresConfig(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := ResolveEnvironment("staging")
	require.Error(t, err)
	require.Contains(t, err.Error(), "breate init")
}

func TestResolveEnvironment_EnvVarOverridesBaseURL(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BREATE_API_BASE_URL", "http://localhost:8000/api/v1")

	env, err := ResolveEnvironment("")
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8000/api/v1", env.BaseURL)
}

func TestGetEnvironmentByNameOrURL(t *testing.T) {
	cfg := &config.Config{
		Environments: []config.Environment{
			{Name: "production", BaseURL: config.DefaultBaseURL},
			{Name: "local", BaseURL: "http://localhost:8000/api/v1"},
		},
	}

	env, err := GetEnvironmentByNameOrURL(cfg, "local")
	require.NoError(t, err)
	require.Equal(t, "local", env.Name)

	env, err = GetEnvironmentByNameOrURL(cfg, "http://localhost:8000/api/v1")
	require.NoError(t, err)
	require.Equal(t, "local", env.Name)

	_, err = GetEnvironmentByNameOrURL(cfg, "nope")
	require.Error(t, err)
}

func TestResolveEnvironment_NamedEnvFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Environments: []config.Environment{
			{Name: "production", BaseURL: config.DefaultBaseURL},
			{Name: "staging", BaseURL: "https://staging.example.com/api/v1"},
		},
	}
	require.NoError(t, config.Save(filepath.Join(dir, config.ConfigFileName), cfg))
	chdir(t, dir)
	t.Setenv("BREATE_API_BASE_URL", "")

	env, err := ResolveEnvironment("staging")
	require.NoError(t, err)
	require.Equal(t, "https://staging.example.com/api/v1", env.BaseURL)
}
