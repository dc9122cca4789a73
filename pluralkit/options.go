package pluralkit

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL           string
	timeout           time.Duration
	httpClient        *http.Client
	userAgent         string
	requestsPerSecond float64
	burst             int
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL:           defaultBaseURL,
		timeout:           30 * time.Second,
		requestsPerSecond: defaultRequestsPerSecond,
		burst:             defaultBurst,
	}
}

// WithBaseURL overrides the API base URL. Useful for tests.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient supplies a custom HTTP client, replacing the default
// transport and timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithRateLimit overrides the request budget. Only lower the defaults if
// you share a token across several processes.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(o *clientOptions) {
		o.requestsPerSecond = perSecond
		o.burst = burst
	}
}
