package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/retry"
	"github.com/ecofleet/fleet-telemetry/internal/utils"
	"github.com/google/uuid"
)

// Client is a JSON client for the telemetry API with retries on transient failures
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	retrier    *retry.Retrier
}

// HTTPError is returned for non-2xx responses
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// Status returns the response status code
func (e *HTTPError) Status() int {
	return e.StatusCode
}

// NewClient creates a new HTTP client. A nil retrier disables retries.
func NewClient(baseURL string, timeout time.Duration, retrier *retry.Retrier) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	if retrier == nil {
		retrier = retry.New(retry.Config{})
	}

	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		retrier: retrier,
	}
}

// PutJSON sends body to path and decodes the response envelope data into out
func (c *Client) PutJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
	}
	requestID := uuid.NewString()

	return c.retrier.Execute(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(payload))
		if err != nil {
			return err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("X-Request-ID", requestID)

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode >= 300 {
			var envelope utils.ErrorResponse
			msg := strings.TrimSpace(string(data))
			if json.Unmarshal(data, &envelope) == nil && envelope.Error != "" {
				msg = envelope.Error
			}
			return &HTTPError{StatusCode: resp.StatusCode, Message: msg}
		}

		if out == nil || len(data) == 0 {
			return nil
		}
		return utils.ParseJSONResponse(data, out)
	})
}
