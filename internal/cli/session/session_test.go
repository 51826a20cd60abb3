package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/breate-dev/breate/internal/cli/auth"
	"github.com/breate-dev/breate/internal/cli/client"
	"github.com/stretchr/testify/require"
)

// fakeBackend is a minimal breate backend: one account, bearer-token auth.
type fakeBackend struct {
	email    string
	password string
	token    string
	requests atomic.Int64
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		b.requests.Add(1)
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		if r.PostForm.Get("username") != b.email || r.PostForm.Get("password") != b.password {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"access_token": b.token, "token_type": "bearer"})
	})
	mux.HandleFunc("/users/signup", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		b.requests.Add(1)
		var req client.SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		if req.Email == b.email {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Email already registered"})
			return
		}
		b.email = req.Email
		b.password = req.Password
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("/users/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		b.requests.Add(1)
		if r.Header.Get("Authorization") != "Bearer "+b.token {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
			return
		}
		json.NewEncoder(w).Encode(client.User{ID: 1, Username: "alice", Email: b.email})
	})
	return mux
}

func newTestManager(t *testing.T) (*Manager, *fakeBackend, auth.TokenStore) {
	t.Helper()
	backend := &fakeBackend{email: "alice@example.com", password: "s3cret", token: "tok123"}
	ts := httptest.NewServer(backend.handler())
	t.Cleanup(ts.Close)

	tokens := auth.NewMemoryStore()
	return NewManager(client.New(ts.URL, tokens), tokens), backend, tokens
}

func TestManager_StartsInitializing(t *testing.T) {
	manager, _, _ := newTestManager(t)
	require.Equal(t, StateInitializing, manager.State())
	require.True(t, manager.Loading())
	require.Nil(t, manager.CurrentUser())
}

func TestManager_ResolveWithoutTokenSkipsNetwork(t *testing.T) {
	manager, backend, _ := newTestManager(t)

	manager.Resolve(context.Background())

	require.Equal(t, StateUnauthenticated, manager.State())
	require.False(t, manager.IsAuthenticated())
	require.Nil(t, manager.CurrentUser())
	require.False(t, manager.Loading())
	require.Zero(t, backend.requests.Load())
}

func TestManager_ResolveWithValidToken(t *testing.T) {
	manager, _, tokens := newTestManager(t)
	require.NoError(t, tokens.SaveToken("tok123"))

	manager.Resolve(context.Background())

	require.Equal(t, StateAuthenticated, manager.State())
	require.True(t, manager.IsAuthenticated())
	require.False(t, manager.Loading())
	require.Equal(t, "alice", manager.CurrentUser().Username)
}

func TestManager_ResolveWithRejectedTokenPurges(t *testing.T) {
	manager, _, tokens := newTestManager(t)
	require.NoError(t, tokens.SaveToken("expired-token"))

	manager.Resolve(context.Background())

	require.Equal(t, StateUnauthenticated, manager.State())
	require.Nil(t, manager.CurrentUser())
	require.False(t, manager.Loading())

	_, err := tokens.LoadToken()
	require.ErrorIs(t, err, auth.ErrNotAuthenticated)
}

func TestManager_LoginSuccess(t *testing.T) {
	manager, _, tokens := newTestManager(t)

	result := manager.Login(context.Background(), "alice@example.com", "s3cret")

	require.True(t, result.Success)
	require.Empty(t, result.Error)
	require.Equal(t, StateAuthenticated, manager.State())
	require.Equal(t, "alice", manager.CurrentUser().Username)

	stored, err := tokens.LoadToken()
	require.NoError(t, err)
	require.Equal(t, "tok123", stored)
}

func TestManager_LoginBadCredentials(t *testing.T) {
	manager, _, tokens := newTestManager(t)

	result := manager.Login(context.Background(), "alice@example.com", "wrong")

	require.False(t, result.Success)
	require.Equal(t, "Invalid credentials", result.Error)
	require.Equal(t, StateUnauthenticated, manager.State())
	require.Nil(t, manager.CurrentUser())

	_, err := tokens.LoadToken()
	require.ErrorIs(t, err, auth.ErrNotAuthenticated)
}

func TestManager_LoginRejectsEmptyToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token": "", "token_type": "bearer"}`))
	}))
	defer ts.Close()

	tokens := auth.NewMemoryStore()
	manager := NewManager(client.New(ts.URL, tokens), tokens)

	result := manager.Login(context.Background(), "alice@example.com", "s3cret")

	require.False(t, result.Success)
	require.Equal(t, "No token received", result.Error)
	require.Equal(t, StateUnauthenticated, manager.State())
}

func TestManager_RegisterChainsIntoLogin(t *testing.T) {
	manager, backend, tokens := newTestManager(t)
	backend.token = "tok456"

	result := manager.Register(context.Background(), "bob@example.com", "hunter22", 2, 1)

	require.True(t, result.Success)
	require.Equal(t, StateAuthenticated, manager.State())
	require.Equal(t, "bob@example.com", manager.CurrentUser().Email)

	stored, err := tokens.LoadToken()
	require.NoError(t, err)
	require.Equal(t, "tok456", stored)
}

func TestManager_RegisterSignupFailureSkipsLogin(t *testing.T) {
	manager, backend, _ := newTestManager(t)
	before := backend.requests.Load()

	result := manager.Register(context.Background(), "alice@example.com", "s3cret", 2, 1)

	require.False(t, result.Success)
	require.Equal(t, "Email already registered", result.Error)
	// Only the signup request went out
	require.Equal(t, before+1, backend.requests.Load())
}

func TestManager_LogoutClearsSession(t *testing.T) {
	manager, _, tokens := newTestManager(t)

	result := manager.Login(context.Background(), "alice@example.com", "s3cret")
	require.True(t, result.Success)

	manager.Logout()

	require.Equal(t, StateUnauthenticated, manager.State())
	require.False(t, manager.IsAuthenticated())
	require.Nil(t, manager.CurrentUser())

	_, err := tokens.LoadToken()
	require.ErrorIs(t, err, auth.ErrNotAuthenticated)
}

// A persisted token from one manager is picked up by the next, the same way a
// fresh process resumes the previous login.
func TestManager_SessionSurvivesRestart(t *testing.T) {
	backend := &fakeBackend{email: "alice@example.com", password: "s3cret", token: "tok123"}
	ts := httptest.NewServer(backend.handler())
	defer ts.Close()

	tokens := auth.NewMemoryStore()

	first := NewManager(client.New(ts.URL, tokens), tokens)
	require.True(t, first.Login(context.Background(), "alice@example.com", "s3cret").Success)

	second := NewManager(client.New(ts.URL, tokens), tokens)
	second.Resolve(context.Background())

	require.True(t, second.IsAuthenticated())
	require.Equal(t, "alice", second.CurrentUser().Username)
}
