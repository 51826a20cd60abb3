package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/breate-dev/breate/internal/cli/auth"
	"github.com/breate-dev/breate/internal/logger"
	"github.com/rs/zerolog"
)

// Client represents an HTTP client for the BREATE API.
//
// It owns uniform request construction (base URL, bearer token injection,
// JSON encode/decode) and response/error normalization. A 401 from any
// endpoint purges the stored session token as a side effect before the error
// is returned. There are no retries and no caching; every call is
// independent and at-most-once.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     auth.TokenStore
	log        zerolog.Logger
}

// New creates a new API client. The cookie jar exists solely for the
// refresh-token cookie set by the login endpoint; the client never inspects
// it.
func New(baseURL string, tokens auth.TokenStore) *Client {
	jar, _ := cookiejar.New(nil)

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
		tokens: tokens,
		log:    logger.GetLogger(),
	}
}

// SetHTTPClient sets a custom HTTP client
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// BaseURL returns the configured backend base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs a GET request and decodes the response into out
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post performs a POST request with a JSON body and decodes the response into out
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put performs a PUT request with a JSON body and decodes the response into out
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Patch performs a PATCH request with a JSON body and decodes the response into out
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

// Delete performs a DELETE request and decodes the response into out
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token, err := c.tokens.LoadToken(); err == nil && token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	} else if err != nil && !errors.Is(err, auth.ErrNotAuthenticated) {
		return fmt.Errorf("failed to load token: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("api request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}

	// Backend sometimes answers 2xx with an empty or non-JSON body; treat
	// that as an empty successful result rather than a decode failure.
	if err := json.Unmarshal(data, out); err != nil {
		c.log.Debug().Str("path", path).Msg("ignoring malformed body on successful response")
		return nil
	}

	return nil
}

// errorFromResponse maps a non-2xx response to the error taxonomy. A 401
// purges the stored token before returning.
func (c *Client) errorFromResponse(status int, data []byte) error {
	var payload struct {
		Detail string `json:"detail"`
	}
	_ = json.Unmarshal(data, &payload)

	if status == http.StatusUnauthorized {
		if err := c.tokens.DeleteToken(); err != nil {
			c.log.Warn().Err(err).Msg("failed to purge token after 401")
		}
		detail := payload.Detail
		if detail == "" {
			detail = "Unauthorized"
		}
		return &UnauthorizedError{HTTPError{StatusCode: status, Detail: detail}}
	}

	return &HTTPError{StatusCode: status, Detail: payload.Detail}
}
