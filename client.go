package voyage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Client is the low-level transport for the Voyage AI embeddings API.
// It owns the HTTP conversation: building the request body, classifying
// the response, retrying transient failures, and parsing success and
// error payloads.
//
// A Client holds no per-call mutable state and is safe for concurrent use.
type Client struct {
	opts       *Options
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new transport client with the provided options.
// The options are validated once here and shared read-only by every
// request afterwards. A nil logger defaults to slog.Default().
func NewClient(opts *Options, logger *slog.Logger) (*Client, error) {
	if opts == nil {
		return nil, NewInvalidArgumentError("options are required")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		opts:       opts,
		httpClient: &http.Client{Timeout: opts.Timeout},
		logger:     logger,
	}, nil
}

// Options returns the shared configuration. Callers must treat the
// returned value as read-only.
func (c *Client) Options() *Options {
	return c.opts
}

// CreateEmbeddings performs one logical embeddings call with resilience
// to transient failure.
//
// Rate limiting (429) and server-side errors (500, 502, 503, 504) are
// retried up to MaxRetries additional times, waiting RetryDelay times the
// attempt number between attempts. Network and timeout errors are retried
// the same way and re-returned verbatim once retries are exhausted. Any
// other HTTP failure surfaces immediately as a TransportError.
func (c *Client) CreateEmbeddings(ctx context.Context, req *EmbeddingRequest) (*EmbeddingResponse, error) {
	if req == nil {
		return nil, NewInvalidArgumentError("request is required")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}
	url := strings.TrimRight(c.opts.BaseURL, "/") + "/embeddings"

	var lastErr error
	for attempt := 0; attempt <= c.opts.MaxRetries; attempt++ {
		// If this is a retry, wait with linear backoff
		if attempt > 0 {
			delay := c.opts.RetryDelay * time.Duration(attempt)
			c.logger.Debug("retrying embeddings request",
				"attempt", attempt+1,
				"max_attempts", c.opts.MaxRetries+1,
				"delay", delay,
			)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("context cancelled during retry backoff: %w", ctx.Err())
			}
		}

		resp, retryable, err := c.attempt(ctx, url, body)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
	}

	// All retries exhausted
	return nil, lastErr
}

// attempt issues a single HTTP POST and classifies the outcome. The
// second return value reports whether the failure may be retried.
func (c *Client) attempt(ctx context.Context, url string, body []byte) (*EmbeddingResponse, bool, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.opts.APIKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		// Network-level and per-attempt timeout errors are transient.
		return nil, true, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, true, fmt.Errorf("reading response body: %w", err)
	}

	if httpResp.StatusCode >= 200 && httpResp.StatusCode < 300 {
		if len(bytes.TrimSpace(respBody)) == 0 {
			return nil, false, NewDeserializationError("empty response body", nil)
		}
		var out EmbeddingResponse
		if err := json.Unmarshal(respBody, &out); err != nil {
			return nil, false, NewDeserializationError("parsing embeddings response", err)
		}
		return &out, false, nil
	}

	terr := NewTransportError(httpResp.StatusCode, errorDetail(respBody, httpResp.StatusCode), url)
	return nil, retryableStatus(httpResp.StatusCode), terr
}

// retryableStatus reports whether a status code indicates a transient
// failure worth retrying.
func retryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// errorDetail extracts the detail message from an error payload.
// Parsing is best-effort: a malformed payload falls back to the raw
// response text, then to the HTTP reason phrase.
func errorDetail(body []byte, status int) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	if s := strings.TrimSpace(string(body)); s != "" {
		return s
	}
	return http.StatusText(status)
}
