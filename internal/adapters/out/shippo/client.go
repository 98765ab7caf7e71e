// Package shippo talks to the Shippo REST API: rate quotes, label purchase
// and parcel templates.
package shippo

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
	"time"

	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/metrics"
)

const (
	DefaultBaseURL    = "https://api.goshippo.com"
	DefaultAPIVersion = "2018-02-08"
	DefaultTimeout    = 30 * time.Second

	errorBodyReadLimit int64 = 4096
)

const (
	opQuote     = "quote"
	opPurchase  = "purchase"
	opTemplates = "templates"
)

// Client is a thin authenticated HTTP client for the Shippo API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiVersion string
	metrics    *metrics.ProviderMetrics
	logger     *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(baseURL); trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

func WithAPIVersion(version string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(version); trimmed != "" {
			c.apiVersion = trimmed
		}
	}
}

// WithTimeout replaces the timeout of the underlying HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

func WithMetrics(m *metrics.ProviderMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient builds a client for the given API token.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	trimmedKey := strings.TrimSpace(apiKey)
	if trimmedKey == "" {
		return nil, errs.NewValueIsRequiredError("apiKey")
	}

	client := &Client{
		apiKey:     trimmedKey,
		baseURL:    DefaultBaseURL,
		apiVersion: DefaultAPIVersion,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	client.logger = client.logger.With("component", "shippo")

	return client, nil
}

// do sends one request and decodes a 2xx body into out. Transport failures
// and non-2xx answers come back as *errs.ProviderError.
func (c *Client) do(
	ctx context.Context,
	operation, method, path string,
	query url.Values,
	body any,
	out any,
) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(operation, time.Since(started), err)
	}()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errs.NewProviderErrorWithCause(operation, fmt.Errorf("marshal request: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, query), reader)
	if err != nil {
		return errs.NewProviderErrorWithCause(operation, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Authorization", "ShippoToken "+c.apiKey)
	req.Header.Set("Shippo-API-Version", c.apiVersion)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "provider request failed", "operation", operation, "error", err)
		return errs.NewProviderErrorWithCause(operation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
		messages := parseErrorMessages(raw)
		c.logger.WarnContext(ctx, "provider rejected request",
			"operation", operation, "status", resp.StatusCode, "messages", messages)
		return errs.NewProviderErrorWithCause(operation,
			fmt.Errorf("status %d", resp.StatusCode), messages...)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.NewProviderErrorWithCause(operation, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (c *Client) buildURL(path string, query url.Values) string {
	u := fmt.Sprintf("%s/%s", strings.TrimRight(c.baseURL, "/"), strings.TrimLeft(path, "/"))
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}
