package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prittywoman/harmonyctl/internal/shared"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://sandbox.academiadevelopers.com"

// TokenSource supplies the credential attached to authenticated requests.
// An empty string means no credential is present and the request goes out
// unauthenticated.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed [TokenSource], mainly for tests and one-shot CLI
// invocations.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

// ClientOpts contains configuration options for creating a [Client].
type ClientOpts struct {
	BaseURL    string
	HTTPClient *http.Client
	Tokens     TokenSource
	Logger     *log.Logger
	Timeout    time.Duration
	RateLimit  float64 // requests per second, 0 disables throttling
}

// Client performs HTTP requests against the catalog API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *log.Logger
	limiter    *rate.Limiter
}

// NewClient creates a new catalog API client.
func NewClient(opts ClientOpts) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{}
	}
	if opts.Timeout > 0 {
		opts.HTTPClient.Timeout = opts.Timeout
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		httpClient: opts.HTTPClient,
		tokens:     opts.Tokens,
		logger:     opts.Logger,
		limiter:    limiter,
	}
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string { return c.baseURL }

// doRequest performs an HTTP request against the API and decodes a JSON
// response into result when result is non-nil.
//
// Responses are mapped onto the shared error taxonomy: 401 becomes
// [shared.ErrUnauthorized], 404 becomes [shared.ErrNotFound], and any other
// non-2xx status or transport failure surfaces as a wrapped error with the
// status and a snippet of the body.
func (c *Client) doRequest(ctx context.Context, method, path string, body io.Reader, contentType string, result any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Token "+token)
		}
	}

	requestID := shared.GenerateID()
	c.logger.Debug("api request", "id", requestID, "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s %s", shared.ErrUnauthorized, method, path)
	}
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s %s", shared.ErrNotFound, method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("catalog API error: status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	c.logger.Debug("api response", "id", requestID, "status", resp.StatusCode)

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// doJSON marshals payload as a JSON request body and delegates to doRequest.
func (c *Client) doJSON(ctx context.Context, method, path string, payload any, result any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}
	return c.doRequest(ctx, method, path, bytes.NewReader(data), "application/json", result)
}

// pageQuery encodes the pagination parameters plus any extra filters.
func pageQuery(page, pageSize int, extra url.Values) string {
	q := url.Values{}
	q.Set("page", fmt.Sprintf("%d", page))
	q.Set("page_size", fmt.Sprintf("%d", pageSize))
	for k, vs := range extra {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	return q.Encode()
}
