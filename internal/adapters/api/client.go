// Package api is the single chokepoint for all calls to the Let's
// Share server. The Client attaches the current access token to every
// request, detects expired credentials, and coordinates a single-flight
// token refresh so that concurrent callers never race each other into
// issuing duplicate refresh calls.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bnema/lets-share-cli/internal/ports"
	"github.com/google/uuid"
)

const (
	refreshPath      = "/auth/refresh"
	maxResponseBytes = 1 << 20

	defaultTimeout = 10 * time.Second
)

// refreshOutcome is delivered to every caller suspended behind an
// in-flight refresh: either the shared new token or the shared error.
type refreshOutcome struct {
	token string
	err   error
}

type Client struct {
	baseURL string
	http    *http.Client
	creds   ports.CredentialProvider
	nav     ports.Navigator
	log     *slog.Logger

	// refreshing and waiters together form the refresh state machine.
	// Both are only touched with mu held; waiter channels are buffered
	// so the refresher never blocks on fan-out.
	mu         sync.Mutex
	refreshing bool
	waiters    []chan refreshOutcome
}

type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client. The client's
// Timeout applies uniformly to every outbound call, refresh included.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

func WithNavigator(nav ports.Navigator) Option {
	return func(c *Client) {
		if nav != nil {
			c.nav = nav
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

func New(baseURL string, creds ports.CredentialProvider, opts ...Option) *Client {
	client := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		creds:   creds,
		nav:     ports.NopNavigator{},
		log:     slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.call(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.call(ctx, http.MethodDelete, path, nil, out)
}

// call runs one logical API call. On a 401 it suspends behind the
// single-flight refresh and replays the original request exactly once
// with the new token; a second 401 after the replay is surfaced as-is.
func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		payload = encoded
	}

	requestID := uuid.NewString()

	token, err := c.creds.AccessToken(ctx)
	if err != nil {
		c.log.Debug("read access token", "error", err)
		token = ""
	}

	status, data, err := c.send(ctx, method, path, payload, token, requestID)
	if err != nil {
		return transportError(err)
	}

	// Refresh only applies to expired credentials. A 401 on a request
	// that carried no bearer token (wrong password on login, say) is a
	// plain server response and must surface verbatim.
	if status == http.StatusUnauthorized && token != "" {
		newToken, refreshErr := c.freshAccessToken(ctx)
		if refreshErr != nil {
			return refreshErr
		}

		status, data, err = c.send(ctx, method, path, payload, newToken, requestID)
		if err != nil {
			return transportError(err)
		}
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return responseError(status, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
	}

	return nil
}

// freshAccessToken returns a newly minted access token, issuing at most
// one network refresh system-wide. Callers that observe a refresh
// already in flight suspend until it settles and share its outcome.
func (c *Client) freshAccessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.refreshing {
		waiter := make(chan refreshOutcome, 1)
		c.waiters = append(c.waiters, waiter)
		c.mu.Unlock()

		select {
		case outcome := <-waiter:
			return outcome.token, outcome.err
		case <-ctx.Done():
			return "", transportError(ctx.Err())
		}
	}
	c.refreshing = true
	c.mu.Unlock()

	c.log.Info("access token expired, refreshing")
	token, err := c.refresh(ctx)

	if err != nil {
		// Fatal to the session: wipe it and signal the login boundary
		// before fan-out so no waiter can observe stale credentials.
		c.log.Warn("token refresh failed", "error", err)
		if clearErr := c.creds.ClearSession(ctx); clearErr != nil {
			c.log.Warn("clear session after failed refresh", "error", clearErr)
		}
		c.nav.NavigateTo(ports.RouteLogin)
	}

	// The flag reset must be unconditional; leaving it set would park
	// every future call behind a refresh that never settles.
	c.mu.Lock()
	waiters := c.waiters
	c.waiters = nil
	c.refreshing = false
	c.mu.Unlock()

	for _, waiter := range waiters {
		waiter <- refreshOutcome{token: token, err: err}
	}

	return token, err
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type refreshResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// refresh performs the network refresh call. A failure here, including
// a 401 on the refresh endpoint itself, is terminal and never retried.
func (c *Client) refresh(ctx context.Context) (string, error) {
	refreshToken, err := c.creds.RefreshToken(ctx)
	if err != nil || refreshToken == "" {
		return "", &Error{Detail: "no refresh token available", Status: http.StatusUnauthorized}
	}

	payload, err := json.Marshal(refreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return "", fmt.Errorf("encode refresh request: %w", err)
	}

	status, data, err := c.send(ctx, http.MethodPost, refreshPath, payload, "", uuid.NewString())
	if err != nil {
		return "", transportError(err)
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return "", responseError(status, data)
	}

	var resp refreshResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("decode refresh response: %w", err)
	}
	if resp.AccessToken == "" {
		return "", &Error{Detail: "refresh response missing access token", Status: status}
	}

	if err := c.creds.StoreAccessToken(ctx, resp.AccessToken); err != nil {
		return "", fmt.Errorf("persist refreshed access token: %w", err)
	}

	c.log.Info("access token refreshed")
	return resp.AccessToken, nil
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte, token, requestID string) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("create %s %s request: %w", method, path, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	c.log.Debug("api call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
	)

	return resp.StatusCode, data, nil
}
