package commands

import (
	"fmt"

	"github.com/breate-dev/breate/internal/cli/auth"
	"github.com/breate-dev/breate/internal/cli/client"
	"github.com/breate-dev/breate/internal/cli/config"
	"github.com/breate-dev/breate/internal/cli/envselect"
	"github.com/breate-dev/breate/internal/cli/session"
)

// newAPIClient resolves the target environment and builds an API client with
// the keyring-backed token store for that backend. This is common logic used
// by most commands.
func newAPIClient(envName string) (*client.Client, *config.Environment, error) {
	env, err := envselect.ResolveEnvironment(envName)
	if err != nil {
		return nil, nil, err
	}

	if env.BaseURL == "" {
		return nil, nil, fmt.Errorf("environment base URL is empty. Please edit %s and add a valid base URL", config.ConfigFileName)
	}

	tokens := auth.NewKeyringStore(env.BaseURL)
	return client.New(env.BaseURL, tokens), env, nil
}

// newSession builds a session manager bound to the resolved environment
func newSession(envName string) (*session.Manager, *config.Environment, error) {
	env, err := envselect.ResolveEnvironment(envName)
	if err != nil {
		return nil, nil, err
	}

	if env.BaseURL == "" {
		return nil, nil, fmt.Errorf("environment base URL is empty. Please edit %s and add a valid base URL", config.ConfigFileName)
	}

	tokens := auth.NewKeyringStore(env.BaseURL)
	apiClient := client.New(env.BaseURL, tokens)
	return session.NewManager(apiClient, tokens), env, nil
}

// friendlyError rewrites a 401 into the logged-out message instead of a raw
// error dump. By the time it fires the token has already been purged, so the
// user really is logged out.
func friendlyError(err error) error {
	if client.IsUnauthorized(err) {
		return fmt.Errorf("session expired. Run 'breate login' to sign in again")
	}
	return err
}
