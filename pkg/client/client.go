// Package client builds outbound API requests from parameter objects.
//
// API backends take the unnamespaced, fully-encoded form of the parameters:
// every field is present, nothing is elided, and no namespace prefix is
// attached. The client joins a base URL, a resource path, and
// qs.EncodeFull(params) into the request URL:
//
//	api, _ := client.New("https://api.example.com")
//	resp, err := api.Get(ctx, "/orders", params)
package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/querykit/querykit/pkg/qs"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying *http.Client. Defaults to
// http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithHeader adds a header sent on every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Add(key, value)
	}
}

// Client issues requests against one API base URL.
type Client struct {
	base    *url.URL
	http    *http.Client
	headers http.Header
}

// New creates a client for the given base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("client: parse base URL: %w", err)
	}
	c := &Client{
		base:    base,
		http:    http.DefaultClient,
		headers: make(http.Header),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewRequest builds a request whose query string is the full encoding of
// params. The path is resolved against the base URL.
func (c *Client) NewRequest(ctx context.Context, method, path string, params qs.Params) (*http.Request, error) {
	u := c.base.JoinPath(path)
	u.RawQuery = qs.EncodeFull(params)

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("client: build request: %w", err)
	}
	for k, vs := range c.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return req, nil
}

// Get issues a GET for the path with the encoded params.
func (c *Client) Get(ctx context.Context, path string, params qs.Params) (*http.Response, error) {
	req, err := c.NewRequest(ctx, http.MethodGet, path, params)
	if err != nil {
		return nil, err
	}
	return c.http.Do(req)
}
