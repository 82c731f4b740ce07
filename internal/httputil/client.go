// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP helpers shared by the registry
// clients.
package httputil

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/pdiddy/bibmeta/pkg/types"
)

// Client wraps an http.Client with a User-Agent header and client-side
// politeness rate limiting toward the metadata registries. It does not
// retry: transient failures surface to the caller, which owns any
// retry/backoff policy.
type Client struct {
	http      *http.Client
	userAgent string
	limiter   *rate.Limiter
}

// New builds a Client from the lookup configuration. A zero
// RequestsPerSecond disables rate limiting.
func New(cfg types.LookupConfig) *Client {
	c := &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		userAgent: cfg.UserAgent,
	}
	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	return c
}

// NewWithHTTPClient is like New but uses the given http.Client. Tests pass
// an httptest server's client here.
func NewWithHTTPClient(cfg types.LookupConfig, hc *http.Client) *Client {
	c := New(cfg)
	c.http = hc
	return c
}

// Do waits for the rate limiter, stamps the User-Agent header, and sends
// the request.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
	}
	if c.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return c.http.Do(req)
}

// Get issues a GET for url with the given Accept header (empty to omit).
func (c *Client) Get(ctx context.Context, url, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	return c.Do(req)
}
