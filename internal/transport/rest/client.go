// Package rest is the typed HTTP client for the storefront backend. It
// injects the bearer token read at call time from the session's token source,
// and maps any 401/403 response — whatever the originating call — to
// domain.ErrSessionExpired, firing the on-unauthorized hook so the session
// can fall back to anonymous.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/quickbite/storefront/internal/core/domain"
	"github.com/quickbite/storefront/internal/core/ports"
	"github.com/quickbite/storefront/internal/metrics"
)

const defaultTimeout = 15 * time.Second

// Client talks to the remote backend. It satisfies every gateway in ports.
type Client struct {
	http    *http.Client
	baseURL string
	tokens  ports.TokenSource
	log     zerolog.Logger

	mu             sync.RWMutex
	onUnauthorized func()
}

// NewClient builds a Client for the given base URL (e.g.
// "http://localhost:8080/api"). httpClient may be nil.
func NewClient(baseURL string, tokens ports.TokenSource, httpClient *http.Client, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		log:     log,
	}
}

// OnUnauthorized registers the hook invoked whenever the backend answers
// 401 or 403. Wired to the session store's forced logout.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	c.onUnauthorized = fn
	c.mu.Unlock()
}

// errorEnvelope is the backend's canonical error body.
type errorEnvelope struct {
	Error string `json:"error"`
}

// do executes one round trip: marshal body, inject the bearer token, decode
// the response into out. op labels the metrics for this call.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("rest: encode %s request: %w", op, err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("rest: build %s request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.roundTrip(op, req, out)
}

// roundTrip finishes a prepared request: auth header, metrics, status
// mapping, body decode.
func (c *Client) roundTrip(op string, req *http.Request, out any) error {
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.BackendRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(op, "error").Inc()
		return fmt.Errorf("rest: %s: %w", op, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		return c.mapError(op, resp)
	}

	metrics.BackendRequestsTotal.WithLabelValues(op, "ok").Inc()
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("rest: decode %s response: %w", op, err)
	}
	return nil
}

// mapError translates a non-2xx response into a domain error. 401 and 403
// are treated uniformly as an invalid session.
func (c *Client) mapError(op string, resp *http.Response) error {
	var env errorEnvelope
	_ = json.NewDecoder(resp.Body).Decode(&env)
	msg := env.Error
	if msg == "" {
		msg = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		metrics.BackendRequestsTotal.WithLabelValues(op, "unauthorized").Inc()
		metrics.SessionInvalidationsTotal.Inc()
		c.log.Warn().Str("op", op).Int("status", resp.StatusCode).Msg("backend rejected session")
		c.fireUnauthorized()
		return fmt.Errorf("%s: %w", msg, domain.ErrSessionExpired)
	case http.StatusNotFound:
		metrics.BackendRequestsTotal.WithLabelValues(op, "error").Inc()
		return fmt.Errorf("%s: %w", msg, domain.ErrNotFound)
	case http.StatusConflict:
		metrics.BackendRequestsTotal.WithLabelValues(op, "error").Inc()
		return fmt.Errorf("%s: %w", msg, domain.ErrEmailTaken)
	default:
		metrics.BackendRequestsTotal.WithLabelValues(op, "error").Inc()
		return fmt.Errorf("%s (%d): %w", msg, resp.StatusCode, domain.ErrBackend)
	}
}

func (c *Client) fireUnauthorized() {
	c.mu.RLock()
	fn := c.onUnauthorized
	c.mu.RUnlock()
	if fn != nil {
		fn()
	}
}
