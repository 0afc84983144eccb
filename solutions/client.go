// Package solutions provides a client for the Freshdesk Solutions (knowledge
// base) API v2: listing categories, folders, and articles, and upserting
// translations for each of them.
package solutions

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olgasafonova/freshdesk-solutions-go/internal/apierrors"
	"github.com/olgasafonova/freshdesk-solutions-go/internal/infra"
	"github.com/olgasafonova/freshdesk-solutions-go/metrics"
)

// Client handles communication with the Freshdesk Solutions API
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *slog.Logger

	// Computed once at construction: "Basic " + base64(apiKey + ":X")
	authHeader string

	gate  *infra.RateLimitGate
	dedup *infra.RequestDeduplicator
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithGate sets a custom rate-limit gate, letting several clients share one
func WithGate(g *infra.RateLimitGate) ClientOption {
	return func(client *Client) {
		client.gate = g
	}
}

// NewClient creates a new Freshdesk Solutions client. No network I/O is
// performed at construction. A nil logger defaults to a text handler on
// stdout, where the client writes its diagnostic lines.
func NewClient(config *Config, logger *slog.Logger, opts ...ClientOption) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
	}

	c := &Client{
		config:     config,
		httpClient: newHTTPClient(config.Timeout),
		logger:     logger,
		authHeader: basicAuthHeader(config.APIKey),
		gate:       infra.NewRateLimitGate(),
		dedup:      infra.NewRequestDeduplicator(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// basicAuthHeader computes the Authorization value Freshdesk expects: the
// API key as username with the literal password "X".
func basicAuthHeader(apiKey string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(apiKey+":X"))
}

// RateLimited reports whether the rate-limit gate has tripped. Once true it
// stays true for this client; create a new client to resume upserts.
func (c *Client) RateLimited() bool {
	return !c.gate.Allow()
}

// RateLimitStats returns the gate state, including the Retry-After value
// captured from the 429 that tripped it. The client never consumes this
// value itself; backoff policy belongs to the caller.
func (c *Client) RateLimitStats() infra.RateLimitGateStats {
	return c.gate.Stats()
}

// DedupStats returns the number of in-flight deduplicated requests
func (c *Client) DedupStats() int {
	return c.dedup.Stats()
}

// doRequest performs a single HTTP request against the Solutions API and
// decodes the JSON response into result. There is no retry: list operations
// surface every failure, and the upsert fallback is handled by the caller.
func (c *Client) doRequest(ctx context.Context, entity, method, path string, payload, result interface{}) error {
	reqURL := c.config.BaseURL + path

	var bodyReader io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.authHeader)
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordAPICall(entity, method, time.Since(start).Seconds(), false, "transport")
		return fmt.Errorf("request failed: %w", err)
	}

	body, err := readAndClose(resp)
	if err != nil {
		metrics.RecordAPICall(entity, method, time.Since(start).Seconds(), false, "transport")
		return fmt.Errorf("failed to read response: %w", err)
	}

	if err := checkResponse(resp); err != nil {
		metrics.RecordAPICall(entity, method, time.Since(start).Seconds(), false, errorKind(err))
		return err
	}
	metrics.RecordAPICall(entity, method, time.Since(start).Seconds(), true, "")

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

// checkResponse validates a completed response: the status must be in the
// success range and the content type must be JSON. 429 responses get their
// Retry-After header captured onto the error.
func checkResponse(resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apierrors.NewHTTPError(resp)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		return &apierrors.NonJSONError{ContentType: ct}
	}
	return nil
}

// errorKind labels an error for metrics
func errorKind(err error) string {
	var httpErr *apierrors.HTTPError
	if errors.As(err, &httpErr) {
		return "http_" + strconv.Itoa(httpErr.StatusCode)
	}
	if apierrors.IsNonJSON(err) {
		return "non_json"
	}
	return "transport"
}

// readAndClose reads the response body and closes it
func readAndClose(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return body, err
}

// newHTTPClient creates an HTTP client with optimized transport settings
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     120 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		DisableCompression:  false,
		ForceAttemptHTTP2:   true,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
