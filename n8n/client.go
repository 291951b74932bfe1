// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package n8n

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/illuminaresolutions/n8n-mcp-server/lib/netutil"
	"github.com/illuminaresolutions/n8n-mcp-server/lib/secret"
)

// apiPrefix is the path prefix of the n8n public REST API. Resource
// paths are joined below it.
const apiPrefix = "/api/v1"

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// BaseURL is the root URL of the n8n instance (e.g.,
	// "https://n8n.example.com"). The public API prefix (/api/v1) is
	// appended internally; do not include it.
	BaseURL string
	// APIKey is the n8n API key in mmap-backed memory. The Client takes
	// ownership and releases it on Close.
	APIKey *secret.Buffer
	// HTTPClient is used for all requests. If nil, http.DefaultClient is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Client issues authenticated requests against one n8n instance. It is
// bound to exactly one base URL and one API key at construction.
type Client struct {
	baseURL    string
	apiKey     *secret.Buffer
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client for the n8n instance at config.BaseURL.
func NewClient(config ClientConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("n8n: BaseURL is required")
	}

	// Validate the URL structure. We store the string form (with
	// trailing slash stripped) and build request URLs by direct
	// concatenation. This avoids double-encoding issues with Go's
	// url.URL.String(), which re-encodes Path even when RawPath is set
	// if it doesn't consider RawPath a valid encoding of Path.
	parsed, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("n8n: invalid BaseURL %q: %w", config.BaseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("n8n: BaseURL %q must use http or https", config.BaseURL)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("n8n: BaseURL %q has no host", config.BaseURL)
	}

	if config.APIKey == nil {
		return nil, fmt.Errorf("n8n: APIKey is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		apiKey:     config.APIKey,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// BaseURL returns the normalized base URL the client was constructed
// with (trailing slashes stripped). Session identifiers are derived
// from it.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases the mmap-backed API key. The client must not be used
// after Close.
func (c *Client) Close() error {
	return c.apiKey.Close()
}

// Probe verifies that the backend is reachable and the API key is
// accepted by issuing a benign list call and discarding the result.
func (c *Client) Probe(ctx context.Context) error {
	if _, err := c.ListWorkflows(ctx); err != nil {
		return err
	}
	c.logger.Debug("n8n connectivity probe succeeded", "url", c.baseURL)
	return nil
}

// doRequest performs an HTTP request against the public API and returns
// the response body. On 204 it returns (nil, nil): success with no body
// to parse. On other 2xx it returns the body. A non-2xx response yields
// a *APIError; a transport failure yields a *ConnectivityError.
// query may be omitted for endpoints without query parameters.
func (c *Client) doRequest(ctx context.Context, method, path string, requestBody any, query ...url.Values) ([]byte, error) {
	requestPath := apiPrefix + path
	requestURL := c.baseURL + requestPath
	if len(query) > 0 && query[0] != nil {
		requestURL += "?" + query[0].Encode()
	}

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("n8n: failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("n8n: failed to create request: %w", err)
	}

	request.Header.Set("X-N8N-API-KEY", c.apiKey.String())
	request.Header.Set("Accept", "application/json")
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, &ConnectivityError{URL: c.baseURL, Err: err}
	}
	defer response.Body.Close()

	responseBody, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return nil, fmt.Errorf("n8n: failed to read response body: %w", err)
	}

	if response.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}

	return nil, newAPIError(response.StatusCode, method, requestPath, responseBody)
}
