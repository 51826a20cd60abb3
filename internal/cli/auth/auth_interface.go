package auth

import "sync"

// TokenStore defines the interface for session token storage operations.
// The token is the single piece of durable client-side state, so every
// consumer (API client, session manager) goes through this interface.
type TokenStore interface {
	SaveToken(token string) error
	LoadToken() (string, error)
	DeleteToken() error
}

// KeyringStore implements TokenStore using the OS keyring, with one slot
// per backend base URL.
type KeyringStore struct {
	baseURL string
}

// NewKeyringStore returns a keyring-backed store scoped to the given backend
func NewKeyringStore(baseURL string) *KeyringStore {
	return &KeyringStore{baseURL: baseURL}
}

func (s *KeyringStore) SaveToken(token string) error {
	return SaveToken(s.baseURL, token)
}

func (s *KeyringStore) LoadToken() (string, error) {
	return LoadToken(s.baseURL)
}

func (s *KeyringStore) DeleteToken() error {
	return DeleteToken(s.baseURL)
}

// MemoryStore is an in-memory TokenStore for tests and non-interactive
// environments without a keyring.
type MemoryStore struct {
	mu    sync.Mutex
	token string
	set   bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) SaveToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.set = true
	return nil
}

func (s *MemoryStore) LoadToken() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", ErrNotAuthenticated
	}
	return s.token, nil
}

func (s *MemoryStore) DeleteToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.set = false
	return nil
}
