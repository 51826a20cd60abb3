package auth

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const (
	service = "breate-cli"
)

// ErrNotAuthenticated is returned when no session token is stored.
var ErrNotAuthenticated = errors.New("not authenticated. Please run 'breate login' first")

// getKeyringKey returns a unique key for storing session tokens per backend
func getKeyringKey(baseURL string) string {
	return fmt.Sprintf("token-%s", baseURL)
}

// SaveToken persists the session token securely in the OS keychain/credential manager
func SaveToken(baseURL, token string) error {
	key := getKeyringKey(baseURL)
	if err := keyring.Set(service, key, token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// LoadToken retrieves the session token from the OS keychain/credential manager
func LoadToken(baseURL string) (string, error) {
	key := getKeyringKey(baseURL)
	token, err := keyring.Get(service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotAuthenticated
		}
		return "", fmt.Errorf("failed to load token: %w", err)
	}
	return token, nil
}

// DeleteToken removes the session token from the OS keychain/credential manager
func DeleteToken(baseURL string) error {
	key := getKeyringKey(baseURL)
	if err := keyring.Delete(service, key); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil // Already deleted
		}
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
