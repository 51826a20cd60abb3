package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/breate-dev/breate/internal/cli/auth"
	"github.com/stretchr/testify/require"
)

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"id": 1, "username": "alice"}`))
	}))
	defer ts.Close()

	tokens := auth.NewMemoryStore()
	require.NoError(t, tokens.SaveToken("tok123"))

	c := New(ts.URL, tokens)
	user, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tok123", gotAuth)
	require.Equal(t, "alice", user.Username)
}

func TestClient_NoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c := New(ts.URL, auth.NewMemoryStore())
	_, err := c.ListArchetypes(context.Background())
	require.NoError(t, err)
	require.Empty(t, gotAuth)
}

func TestClient_EmptyBodyIsSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c := New(ts.URL, auth.NewMemoryStore())
	err := c.DeleteProject(context.Background(), 7)
	require.NoError(t, err)
}

func TestClient_MalformedBodyOnSuccessIsLenient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer ts.Close()

	c := New(ts.URL, auth.NewMemoryStore())
	user, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	require.Equal(t, &User{}, user)
}

func TestClient_HTTPErrorCarriesBackendDetail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "Title already taken"}`))
	}))
	defer ts.Close()

	c := New(ts.URL, auth.NewMemoryStore())
	_, err := c.CreateProject(context.Background(), CreateProjectRequest{Title: "x"})
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	require.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	require.Equal(t, "Title already taken", err.Error())
	require.False(t, IsUnauthorized(err))
}

func TestClient_HTTPErrorFallbackMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := New(ts.URL, auth.NewMemoryStore())
	_, err := c.ListProjects(context.Background())
	require.Error(t, err)
	require.Equal(t, "HTTP error! status: 500", err.Error())
}

// Any 401 purges the stored token, regardless of which operation triggered it
func TestClient_UnauthorizedPurgesToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Not authenticated"}`))
	}))
	defer ts.Close()

	tokens := auth.NewMemoryStore()
	require.NoError(t, tokens.SaveToken("stale-token"))

	c := New(ts.URL, tokens)
	_, err := c.ListProjects(context.Background())
	require.Error(t, err)
	require.True(t, IsUnauthorized(err))

	var unauthorized *UnauthorizedError
	require.True(t, errors.As(err, &unauthorized))
	require.Equal(t, http.StatusUnauthorized, unauthorized.StatusCode)
	require.Equal(t, "Not authenticated", unauthorized.Detail)

	_, err = tokens.LoadToken()
	require.ErrorIs(t, err, auth.ErrNotAuthenticated)
}

func TestClient_UnauthorizedFallbackDetail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	c := New(ts.URL, auth.NewMemoryStore())
	_, err := c.CurrentUser(context.Background())
	require.Error(t, err)
	require.Equal(t, "Unauthorized", err.Error())
}

func TestClient_LoginSendsFormEncodedCredentials(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/login", r.URL.Path)
		require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		// OAuth2 password grant uses 'username' for the email
		require.Equal(t, "a@b.com", r.PostForm.Get("username"))
		require.Equal(t, "pw", r.PostForm.Get("password"))

		w.Write([]byte(`{"access_token": "tok123", "token_type": "bearer"}`))
	}))
	defer ts.Close()

	tokens := auth.NewMemoryStore()
	c := New(ts.URL, tokens)

	resp, err := c.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	require.Equal(t, "tok123", resp.AccessToken)

	stored, err := tokens.LoadToken()
	require.NoError(t, err)
	require.Equal(t, "tok123", stored)
}

func TestClient_LoginFailureLeavesTokenUnset(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "Invalid credentials"}`))
	}))
	defer ts.Close()

	tokens := auth.NewMemoryStore()
	c := New(ts.URL, tokens)

	_, err := c.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)
	require.Equal(t, "Invalid credentials", err.Error())

	_, err = tokens.LoadToken()
	require.ErrorIs(t, err, auth.ErrNotAuthenticated)
}

func TestClient_QueryFilters(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c := New(ts.URL, auth.NewMemoryStore())

	_, err := c.DiscoverUsers(context.Background(), UserFilters{Username: "ali", ArchetypeID: 2})
	require.NoError(t, err)
	require.Equal(t, "archetype_id=2&username=ali", gotQuery)

	_, err = c.ListCoalitions(context.Background(), CoalitionFilters{})
	require.NoError(t, err)
	require.Empty(t, gotQuery)
}
