package session

import (
	"context"
	"errors"

	"github.com/breate-dev/breate/internal/cli/auth"
	"github.com/breate-dev/breate/internal/cli/client"
	"github.com/breate-dev/breate/internal/logger"
	"github.com/rs/zerolog"
)

// State is the authentication state machine's current phase
type State int

const (
	StateInitializing State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Result is the non-throwing outcome of Login and Register. UI callers need
// a value contract to render inline error messages, so failures become
// {Success: false, Error: msg} instead of returned errors.
type Result struct {
	Success bool
	Error   string
}

// Manager owns the session lifecycle: token persistence, identity
// resolution, and the Initializing -> Unauthenticated/Authenticated
// transitions. It is the single writer of session state; everything else
// only reads the derived flags.
//
// State updates are whole-value replacements at the end of each operation,
// so a reader never observes a half-updated session. Overlapping Login or
// Register calls are not defended against beyond "last transition wins";
// the CLI drives one operation at a time.
type Manager struct {
	client *client.Client
	tokens auth.TokenStore
	log    zerolog.Logger

	state   State
	user    *client.User
	loading bool
}

// NewManager creates a session manager in the Initializing state
func NewManager(c *client.Client, tokens auth.TokenStore) *Manager {
	return &Manager{
		client:  c,
		tokens:  tokens,
		log:     logger.GetLogger(),
		state:   StateInitializing,
		loading: true,
	}
}

// Resolve performs the startup transition: it checks whether a persisted
// token exists and, if so, resolves it into the current identity. Without a
// token it settles Unauthenticated without touching the network. Any
// resolution failure purges the token. The loading flag clears only once
// the transition has settled either way.
func (m *Manager) Resolve(ctx context.Context) {
	defer func() { m.loading = false }()

	token, err := m.tokens.LoadToken()
	if err != nil || token == "" {
		if err != nil && !errors.Is(err, auth.ErrNotAuthenticated) {
			m.log.Warn().Err(err).Msg("token storage unavailable")
		}
		m.setUnauthenticated()
		return
	}

	user, err := m.client.CurrentUser(ctx)
	if err != nil {
		// Token invalid, clear it. A 401 has already purged it inside the
		// client; any other failure purges here.
		if !client.IsUnauthorized(err) {
			_ = m.tokens.DeleteToken()
		}
		m.log.Debug().Err(err).Msg("stored token rejected")
		m.setUnauthenticated()
		return
	}

	m.setAuthenticated(user)
}

// Login exchanges credentials for a token, resolves the identity, and
// transitions to Authenticated. All failures are reported as a Result value;
// Login never returns an error.
func (m *Manager) Login(ctx context.Context, email, password string) Result {
	tokenResp, err := m.client.Login(ctx, email, password)
	if err != nil {
		m.setUnauthenticated()
		return Result{Success: false, Error: errorMessage(err, "Login failed")}
	}

	if tokenResp.AccessToken == "" {
		m.setUnauthenticated()
		return Result{Success: false, Error: "No token received"}
	}

	user, err := m.client.CurrentUser(ctx)
	if err != nil {
		m.setUnauthenticated()
		return Result{Success: false, Error: errorMessage(err, "Login failed")}
	}

	m.setAuthenticated(user)
	return Result{Success: true}
}

// Register creates an account and then logs in with the same credentials.
// A signup failure is reported without attempting the login.
func (m *Manager) Register(ctx context.Context, email, password string, archetypeID, tierID int) Result {
	err := m.client.Signup(ctx, client.SignupRequest{
		Email:       email,
		Password:    password,
		ArchetypeID: archetypeID,
		TierID:      tierID,
	})
	if err != nil {
		return Result{Success: false, Error: errorMessage(err, "Registration failed")}
	}

	return m.Login(ctx, email, password)
}

// Logout purges the token and clears the identity. It is synchronous and
// cannot fail.
func (m *Manager) Logout() {
	if err := m.tokens.DeleteToken(); err != nil {
		m.log.Warn().Err(err).Msg("failed to delete token on logout")
	}
	m.setUnauthenticated()
}

// CurrentUser returns the resolved identity, or nil when unauthenticated
func (m *Manager) CurrentUser() *client.User {
	return m.user
}

// State returns the current phase of the session state machine
func (m *Manager) State() State {
	return m.state
}

// IsAuthenticated reports whether an identity has been resolved
func (m *Manager) IsAuthenticated() bool {
	return m.state == StateAuthenticated
}

// Loading reports whether the startup resolution is still in flight. Route
// guarding renders a blocking placeholder while true and only redirects
// once it clears.
func (m *Manager) Loading() bool {
	return m.loading
}

func (m *Manager) setAuthenticated(user *client.User) {
	m.user = user
	m.state = StateAuthenticated
}

func (m *Manager) setUnauthenticated() {
	m.user = nil
	m.state = StateUnauthenticated
}

func errorMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
