// Package upstream issues authenticated requests against the AppVector
// external API and classifies the ways they can fail.
package upstream

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/appvector/vector-mcp/internal/util"
)

// DefaultBaseURL is the fixed AppVector API root. It is not configurable at
// runtime; tests construct a Client pointing at a local fake.
const DefaultBaseURL = "https://appvector.io/external-apis/api"

const defaultTimeout = 30 * time.Second

// maxErrorBody caps how much upstream response body an error message carries.
const maxErrorBody = 2000

// Client is a stateless AppVector API caller. All fields are immutable after
// construction, so one Client serves concurrent tool calls without locking.
//
// When no token is configured, requests are sent without an Authorization
// header rather than failing fast. Upstream will likely reject them, but the
// degraded mode keeps discovery and local testing possible without a token.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient builds a Client for the given API root. An empty token enables
// the unauthenticated degraded mode.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// Authenticated reports whether a token was configured.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

// StatusError reports a completed upstream call that returned a non-2xx
// status. Body holds the raw response body for diagnostics.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API request failed (%d): %s", e.Code, util.TruncateRunes(e.Body, maxErrorBody))
}

// Get issues an authenticated GET for path with the given query string.
func (c *Client) Get(path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	c.decorate(req)
	return c.do(req)
}

// Post issues an authenticated POST for path with a JSON body and an
// optional query string.
func (c *Client) Post(path string, body any, query url.Values) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body for %s: %w", path, err)
	}
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequest(http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	c.decorate(req)
	return c.do(req)
}

func (c *Client) decorate(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", req.URL.Path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
