package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// User represents the authenticated user's resolved identity
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Archetype string `json:"archetype"`
	Tier      string `json:"tier"`
	Bio       string `json:"bio"`
}

// SignupRequest is the account-creation payload. Username is deliberately
// absent: it is optional on the backend and set later via a profile update.
type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	ArchetypeID int    `json:"archetype_id"`
	TierID      int    `json:"tier_id"`
}

// TokenResponse is the credential-exchange response
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Signup creates a new account
func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	return c.Post(ctx, "/users/signup", req, nil)
}

// Login exchanges credentials for a session token and persists the token on
// success. The endpoint is an OAuth2 password grant: it takes a
// form-urlencoded body with the email in the 'username' field, and sets a
// refresh-token cookie the client stores but never inspects.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users/login", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debug().Str("method", http.MethodPost).Str("path", "/users/login").Int("status", resp.StatusCode).Msg("api request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.errorFromResponse(resp.StatusCode, data)
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(data, &tokenResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if tokenResp.AccessToken != "" {
		if err := c.tokens.SaveToken(tokenResp.AccessToken); err != nil {
			return nil, fmt.Errorf("failed to save authentication token: %w", err)
		}
	}

	return &tokenResp, nil
}

// CurrentUser resolves the stored session token into the current identity
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.Get(ctx, "/users/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
