package solitude

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mozilla/zamboni-sub003/internal/config"
	"github.com/mozilla/zamboni-sub003/internal/core"

	httpclient "github.com/appleboy/go-httpclient"
	retry "github.com/appleboy/go-httpretry"
	"go.uber.org/zap"
)

// NewRetryClient creates an HTTP client with retry support and
// authentication for talking to the gateway.
func NewRetryClient(
	authMode, authSecret string,
	timeout time.Duration,
	insecureSkipVerify bool,
	maxRetries int,
	retryDelay, maxRetryDelay time.Duration,
	authHeader string,
) (*retry.Client, error) {
	client, err := httpclient.NewAuthClient(
		authMode,
		authSecret,
		httpclient.WithTimeout(timeout),
		httpclient.WithHeaderName(authHeader),
		httpclient.WithInsecureSkipVerify(insecureSkipVerify),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth client: %w", err)
	}

	retryClient, err := retry.NewRealtimeClient(
		retry.WithHTTPClient(client),
		retry.WithMaxRetries(maxRetries),
		retry.WithInitialRetryDelay(retryDelay),
		retry.WithMaxRetryDelay(maxRetryDelay),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create retry client: %w", err)
	}

	return retryClient, nil
}

// Client talks JSON to the payment gateway.
type Client struct {
	baseURL string
	http    *retry.Client
	metrics core.Recorder
	log     *zap.Logger
}

// New returns a Client rooted at baseURL. m may be nil.
func New(baseURL string, rc *retry.Client, m core.Recorder, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    rc,
		metrics: m,
		log:     log.With(zap.String("component", "solitude")),
	}
}

// NewFromConfig builds the retry client from the SOLITUDE_* settings.
func NewFromConfig(cfg *config.Config, m core.Recorder, log *zap.Logger) (*Client, error) {
	rc, err := NewRetryClient(
		cfg.SolitudeAuthMode,
		cfg.SolitudeAuthSecret,
		cfg.SolitudeTimeout,
		cfg.SolitudeInsecureSkipVerify,
		cfg.SolitudeMaxRetries,
		cfg.SolitudeRetryDelay,
		cfg.SolitudeMaxRetryDelay,
		cfg.SolitudeAuthHeader,
	)
	if err != nil {
		return nil, err
	}
	return New(cfg.SolitudeURL, rc, m, log), nil
}

// resolve turns a gateway path or resource URI into an absolute URL.
func (c *Client) resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// call performs one gateway operation and records it under op.
func (c *Client) call(
	ctx context.Context,
	op, method, path string,
	query url.Values,
	body Object,
) (Object, error) {
	start := time.Now()
	obj, err := c.send(ctx, method, path, query, body)
	if c.metrics != nil {
		c.metrics.RecordGatewayCall(op, err == nil || errors.Is(err, ErrNotFound), time.Since(start))
	}
	if err != nil && !errors.Is(err, ErrNotFound) {
		c.log.Warn("gateway call failed",
			zap.String("operation", op),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
	}
	return obj, err
}

func (c *Client) send(
	ctx context.Context,
	method, path string,
	query url.Values,
	body Object,
) (Object, error) {
	target := c.resolve(path)
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
	}

	var (
		resp *http.Response
		err  error
	)
	if method == http.MethodPost {
		resp, err = c.http.Post(ctx, target, retry.WithBody("application/json", bytes.NewReader(payload)))
	} else {
		var req *http.Request
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err = http.NewRequestWithContext(ctx, method, target, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		resp, err = c.http.DoWithContext(ctx, req)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response", ErrInvalidResponse)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &APIError{Status: resp.StatusCode, Body: string(data)}
	}

	obj := Object{}
	if len(bytes.TrimSpace(data)) == 0 {
		return obj, nil
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return obj, nil
}

// getObject fetches a list filtered by query and requires exactly one
// match. A detail response without "objects" is returned as is.
func (c *Client) getObject(ctx context.Context, op, path string, query url.Values) (Object, error) {
	obj, err := c.call(ctx, op, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	raw, ok := obj["objects"]
	if !ok {
		return obj, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: objects is not a list", ErrInvalidResponse)
	}
	switch len(list) {
	case 0:
		return nil, ErrNotFound
	case 1:
		m, ok := list[0].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: object is not a map", ErrInvalidResponse)
		}
		return Object(m), nil
	default:
		return nil, ErrMultipleObjects
	}
}
