// Package apiclient is a thin adapter over the clinic REST API. Every
// call returns a normalized Result rather than an error, so calling
// screens render success and failure states uniformly. There is no
// retry, backoff, or caching: one call is one best-effort round trip.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "http://127.0.0.1:8000/api/"
	DefaultTimeout = 10 * time.Second
)

// Result is the uniform outcome of every API call: either Success
// with Data, or a display-ready Error message.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func fail[T any](msg string) Result[T] {
	return Result[T]{Success: false, Error: msg}
}

type Config struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient is optional; when set, its own timeout wins.
	HTTPClient *http.Client
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL: base,
		http:    httpClient,
	}
}

// SetToken installs the bearer token attached to subsequent requests.
// Login calls this automatically on success.
func (c *Client) SetToken(token string) {
	c.token = token
}

// do runs one round trip and normalizes the outcome into a Result,
// whether it failed in transport, returned an error status, or came
// back undecodable.
func do[T any](
	c *Client,
	ctx context.Context,
	method string,
	path string,
	query url.Values,
	body any,
	fallback string,
) Result[T] {

	endpoint := c.baseURL + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fail[T](fallback)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fail[T](fallback)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fail[T](fallback)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail[T](fallback)
	}

	if resp.StatusCode >= 400 {
		return fail[T](extractError(raw, fallback))
	}

	var data T
	if len(raw) == 0 || resp.StatusCode == http.StatusNoContent {
		return ok(data)
	}

	if err := json.Unmarshal(raw, &data); err != nil {
		return fail[T](fallback)
	}

	return ok(data)
}

// extractError pulls a display message out of an error response body.
// Preference order: a detail/error string field, then field-level
// validation messages joined as "field: message; field: message", then
// the per-operation fallback.
func extractError(raw []byte, fallback string) string {
	var body struct {
		Error  string            `json:"error"`
		Detail string            `json:"detail"`
		Fields map[string]string `json:"fields"`
	}

	if err := json.Unmarshal(raw, &body); err != nil {
		// Some backends return a bare string.
		var s string
		if json.Unmarshal(raw, &s) == nil && s != "" {
			return s
		}
		return fallback
	}

	if body.Detail != "" {
		return body.Detail
	}

	if len(body.Fields) > 0 {
		keys := make([]string, 0, len(body.Fields))
		for k := range body.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+body.Fields[k])
		}
		return strings.Join(parts, "; ")
	}

	if body.Error != "" {
		return body.Error
	}

	return fallback
}
