// Package notion is a thin client for the Notion API: it builds query
// filter, sort, and property-update request fragments and performs the
// database-query and page-update calls.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/salmonumbrella/notion-query/internal/debug"
)

const (
	defaultBaseURL = "https://api.notion.com"
	defaultAPIPath = "v1"
	apiVersion     = "2022-06-28"
	defaultTimeout = 30 * time.Second
)

// Client is the Notion API client. It holds only immutable
// configuration; concurrent use from multiple goroutines is safe.
type Client struct {
	httpClient *http.Client
	token      string
	baseURL    string
	apiPath    string
	version    string
}

// NewClient creates a new Notion API client with the given token.
// An empty token is not rejected locally: the request is sent with an
// empty bearer credential and the server's 401 surfaces as an APIError.
func NewClient(token string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		token:   token,
		baseURL: defaultBaseURL,
		apiPath: defaultAPIPath,
		version: apiVersion,
	}
}

// WithHTTPClient sets a custom HTTP client
func (c *Client) WithHTTPClient(client *http.Client) *Client {
	c.httpClient = client
	return c
}

// WithBaseURL sets a custom base URL (useful for testing)
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// WithVersion sets a custom Notion-Version header value
func (c *Client) WithVersion(version string) *Client {
	c.version = version
	return c
}

// WithDebug enables debug mode for HTTP request/response logging
func (c *Client) WithDebug() *Client {
	return c.WithDebugOutput(os.Stderr)
}

// WithDebugOutput enables debug mode for HTTP request/response logging to the provided writer.
func (c *Client) WithDebugOutput(w io.Writer) *Client {
	baseTransport := c.httpClient.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}

	c.httpClient.Transport = debug.NewDebugTransport(baseTransport, w)
	return c
}

// endpointURL joins the base URL, API version path, and route with "/"
// separators. The route is concatenated literally.
func (c *Client) endpointURL(route string) string {
	return c.baseURL + "/" + c.apiPath + "/" + route
}

// headers returns the three request headers every call carries.
func (c *Client) headers() map[string]string {
	return map[string]string{
		"Authorization":  "Bearer " + c.token,
		"Notion-Version": c.version,
		"Content-Type":   "application/json",
	}
}

// redactHeaders strips the Authorization value for diagnostic output.
func redactHeaders(headers map[string]string) map[string]string {
	redacted := make(map[string]string, len(headers))
	for key, value := range headers {
		if key == "Authorization" {
			continue
		}
		redacted[key] = value
	}
	return redacted
}

// doRequest performs a single HTTP request. A transport failure is
// wrapped in a TransportError; a non-2xx status is decoded into an
// APIError after the full response has been received.
func (c *Client) doRequest(ctx context.Context, method, route string, body interface{}) (*http.Response, error) {
	requestURL := c.endpointURL(route)

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	headers := c.headers()
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	slog.Info("calling notion API", "method", method, "url", requestURL, "headers", redactHeaders(headers))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, URL: requestURL, Err: err}
	}

	slog.Info("notion API responded", "status_code", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer func() { _ = resp.Body.Close() }()
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errResp ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
			apiErr.Response = &errResp
		}
		return nil, apiErr
	}

	return resp, nil
}

// doPost performs a POST request and decodes the response into result
func (c *Client) doPost(ctx context.Context, route string, body, result interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodPost, route, body)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// doPatch performs a PATCH request and decodes the response into result
func (c *Client) doPatch(ctx context.Context, route string, body, result interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodPatch, route, body)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
