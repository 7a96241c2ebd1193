package feed

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"
)

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithBaseURL sets the upstream service root. A trailing slash is trimmed.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimSuffix(u, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithFetchLimit bounds the number of in-flight requests across all
// callers of the Client. Zero or negative leaves it unbounded.
func WithFetchLimit(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.limiter = semaphore.NewWeighted(int64(n))
		}
	}
}
