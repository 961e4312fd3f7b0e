package client

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
	"github.com/supchaser/quiz_client/internal/app"
	"github.com/supchaser/quiz_client/internal/metrics"
	"github.com/supchaser/quiz_client/internal/utils/errs"
	"github.com/supchaser/quiz_client/internal/utils/logger"
	"go.uber.org/zap"
)

const (
	DefaultRequestTimeout = 20 * time.Second
	DefaultUploadTimeout  = 60 * time.Second
)

type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	UploadTimeout  time.Duration
}

// Client talks to the quiz REST API. Multipart uploads use their own
// transport timeout since batches with images can be large.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	uploadClient *http.Client
	identity     app.IdentityProvider
}

var (
	_ app.CatalogAPI     = (*Client)(nil)
	_ app.BatchAPI       = (*Client)(nil)
	_ app.InstitutionAPI = (*Client)(nil)
	_ app.QuizAPI        = (*Client)(nil)
	_ app.StatusChecker  = (*Client)(nil)
)

func New(cfg Config, identity app.IdentityProvider) *Client {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.UploadTimeout <= 0 {
		cfg.UploadTimeout = DefaultUploadTimeout
	}

	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:   &http.Client{Timeout: cfg.RequestTimeout},
		uploadClient: &http.Client{Timeout: cfg.UploadTimeout},
		identity:     identity,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

type response struct {
	status int
	body   []byte
}

func (c *Client) do(ctx context.Context, hc *http.Client, endpoint, method, path string, body []byte, contentType string) (*response, error) {
	const funcName = "Client.do"

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.identity != nil {
		if token := c.identity.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		if user, ok := c.identity.CurrentUser(); ok {
			req.Header.Set("X-User-ID", user.ID)
		}
	}

	logger.Debug("sending request",
		zap.String("function", funcName),
		zap.String("endpoint", endpoint),
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
	)

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		metrics.RecordAPIRequest(endpoint, 0, start)
		logger.Warn("request failed",
			zap.String("function", funcName),
			zap.String("endpoint", endpoint),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Warn("failed to close response body",
				zap.String("function", funcName),
				zap.Error(closeErr),
			)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	metrics.RecordAPIRequest(endpoint, resp.StatusCode, start)
	if err != nil {
		return nil, fmt.Errorf("read response of %s %s: %w", method, path, err)
	}

	logger.Debug("received response",
		zap.String("function", funcName),
		zap.String("endpoint", endpoint),
		zap.Int("status_code", resp.StatusCode),
		zap.String("request_id", requestID),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &response{status: resp.StatusCode, body: respBody}, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func decode(resp *response, out any) error {
	if !isSuccess(resp.status) {
		return errs.NewAPIError(resp.status, resp.body)
	}
	if out == nil || len(bytes.TrimSpace(resp.body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return fmt.Errorf("%w: decode response: %w", errs.ErrEncoding, err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, path string, out any) error {
	resp, err := c.do(ctx, c.httpClient, endpoint, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	return decode(resp, out)
}

func (c *Client) sendJSON(ctx context.Context, endpoint, method, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrEncoding, err)
	}

	resp, err := c.do(ctx, c.httpClient, endpoint, method, path, body, "application/json")
	if err != nil {
		return err
	}
	return decode(resp, out)
}
