// Package api provides the HTTP gateway for the Holidaze REST API.
// All outbound requests go through Client.Request, which normalizes
// transport and HTTP-level failures into TransportError and APIError.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// APIKeyHeader is the header carrying the Noroff API key on endpoints
// that require one.
const APIKeyHeader = "X-Noroff-API-Key"

// Config holds gateway configuration.
type Config struct {
	// BaseURL is the API root, e.g. https://v2.api.noroff.dev.
	BaseURL string

	// APIKey is attached as X-Noroff-API-Key when non-empty.
	APIKey string

	// HTTPClient overrides the default client when set.
	HTTPClient *http.Client

	// Logger receives per-request debug logging; nil disables it.
	Logger *zerolog.Logger
}

// Client is the sole entry point for outbound HTTP calls.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        zerolog.Logger
}

// New creates a gateway client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		log:        log,
	}, nil
}

// Request performs a single HTTP request and returns the raw response
// body. body is serialized to JSON when non-nil; accessToken is attached
// as a Bearer token when non-empty. Exactly one attempt is made.
//
// Non-2xx responses yield an *APIError carrying the extracted message
// and raw body. Failures to obtain a response yield a *TransportError.
func (c *Client) Request(ctx context.Context, method, path string, body any, accessToken string) ([]byte, error) {
	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	requestID := uuid.NewString()
	c.log.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Msg("api request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("read response body: %w", err)}
	}

	c.log.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Int("bytes", len(raw)).
		Msg("api response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			Status:  resp.StatusCode,
			Message: errorMessage(raw, resp.StatusCode),
			Body:    raw,
		}
	}

	return raw, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path, accessToken string) ([]byte, error) {
	return c.Request(ctx, http.MethodGet, path, nil, accessToken)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any, accessToken string) ([]byte, error) {
	return c.Request(ctx, http.MethodPost, path, body, accessToken)
}
