package pluralkit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.pluralkit.me/v2/"

// Client is a PluralKit API client. A single client may be shared by
// concurrent callers; all requests drain through one rate-limit bucket.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     zerolog.Logger
	closed     atomic.Bool
}

// NewClient creates a new PluralKit client. An empty token restricts the
// client to endpoints that do not require authentication.
func NewClient(token string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	baseURL := options.baseURL
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		baseURL:    baseURL,
		token:      token,
		userAgent:  options.userAgent,
		httpClient: httpClient,
		limiter:    newLimiter(options.requestsPerSecond, options.burst),
		logger:     logger,
	}, nil
}

// Authenticated reports whether the client was constructed with a token.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

// Close releases the client's idle transport connections. The client must
// not be used afterwards; further calls fail with ErrClientClosed.
func (c *Client) Close() {
	if c.closed.CompareAndSwap(false, true) {
		c.httpClient.CloseIdleConnections()
	}
}

// requireAuth fails fast, before any network call, when the operation
// needs a token the client does not have.
func (c *Client) requireAuth() error {
	if c.token == "" {
		return ErrNotAuthorized
	}
	return nil
}

// request executes one API call: it acquires a rate-limit permit, builds
// and dispatches the HTTP request, and reads the full body. On a 2xx the
// raw bytes and status are returned undecoded; decoding against the
// expected schema is the endpoint method's responsibility. On any other
// status the body is classified into a typed error.
func (c *Client) request(ctx context.Context, method, endpoint string, query url.Values, payload any) ([]byte, int, error) {
	if c.closed.Load() {
		return nil, 0, ErrClientClosed
	}
	if err := c.acquire(ctx); err != nil {
		return nil, 0, err
	}

	requestURL := c.baseURL + endpoint
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("encoding request payload: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, 0, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	// read the body even on failure to recover structured error detail
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading response body: %w", err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("PluralKit API request")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return data, resp.StatusCode, nil
	}
	return nil, resp.StatusCode, classify(resp.StatusCode, data)
}
