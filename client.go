package pinboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	// ProductionBaseURL is the root of the live API.
	ProductionBaseURL = "https://api.pinboard.in/v2/"
	// TestBaseURL is the root of the test API, selected with testMode.
	TestBaseURL = "https://api.test.pinboard.in/v2/"

	defaultHTTPTimeout = 10 * time.Second
	defaultUserAgent   = "pinboard-go"

	authTokenHeader = "X-Auth-Token"
	formContentType = "application/x-www-form-urlencoded"
)

// Client is a Pinboard v2 API client.
//
// A Client holds no mutable state of its own after construction. Concurrent
// calls are safe exactly as far as the underlying *http.Client is safe for
// concurrent use; the default one is.
type Client struct {
	baseURL    *url.URL
	authToken  string
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
}

type clientConfig struct {
	httpClient *http.Client
	timeout    time.Duration
	logger     *zerolog.Logger
	limiter    *rate.Limiter
	userAgent  string
}

// Option configures the client.
type Option func(*clientConfig)

// WithHTTPClient sets the HTTP client used as the connection handle. The
// client is copied, so later changes to it do not affect the Client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout. Default: 10 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithLogger logs every round trip at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = &logger
	}
}

// WithRateLimiter makes each call wait for the limiter before dispatching.
// It paces requests; it never retries them.
func WithRateLimiter(limiter *rate.Limiter) Option {
	return func(c *clientConfig) {
		c.limiter = limiter
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// NewClient creates a new Pinboard API client. authToken has the form
// "username:TOKEN". testMode selects TestBaseURL instead of ProductionBaseURL.
func NewClient(authToken string, testMode bool, opts ...Option) (*Client, error) {
	if authToken == "" {
		return nil, invalidArgument("auth token is required")
	}

	cfg := clientConfig{userAgent: defaultUserAgent}
	for _, opt := range opts {
		opt(&cfg)
	}

	base := ProductionBaseURL
	if testMode {
		base = TestBaseURL
	}
	parsedURL, err := url.Parse(base)
	if err != nil {
		return nil, invalidArgument("failed to parse base URL: %v", err)
	}

	hc := &http.Client{Timeout: defaultHTTPTimeout}
	if cfg.httpClient != nil {
		clientCopy := *cfg.httpClient
		hc = &clientCopy
	}
	if cfg.timeout > 0 {
		hc.Timeout = cfg.timeout
	}
	if cfg.logger != nil {
		hc.Transport = newLoggingTransport(hc.Transport, *cfg.logger)
	}

	return &Client{
		baseURL:    parsedURL,
		authToken:  authToken,
		httpClient: hc,
		limiter:    cfg.limiter,
		userAgent:  cfg.userAgent,
	}, nil
}

// BaseURL returns the API root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Execute performs one request against the API and returns the decoded JSON
// body. query is sent for every method; body only for POST and PUT. Failures
// are returned as *Error.
func (c *Client) Execute(ctx context.Context, method, path string, query, body url.Values) (any, error) {
	method = strings.ToUpper(method)
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return nil, invalidArgument("unsupported HTTP method: %q", method)
	}

	reqURL := c.baseURL.JoinPath(path + "/")
	reqURL.RawQuery = query.Encode()

	var reqBody io.Reader
	hasBody := method == http.MethodPost || method == http.MethodPut
	if hasBody {
		reqBody = strings.NewReader(body.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reqBody)
	if err != nil {
		return nil, invalidArgument("failed to create request: %v", err)
	}

	req.Header.Set(authTokenHeader, c.authToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if hasBody {
		req.Header.Set("Content-Type", formContentType)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, networkError(err)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, networkError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, classifyStatus(resp.StatusCode, raw)
	}

	if resp.StatusCode == http.StatusNoContent && len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	return decodeBody(resp.StatusCode, raw)
}

// decodeBody decodes a 2xx body. Numbers stay json.Number so ids and counts
// reach the caller unchanged.
func decodeBody(status int, raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	err := dec.Decode(&v)
	if err == nil {
		if extra := dec.Decode(&struct{}{}); !errors.Is(extra, io.EOF) {
			err = errTrailingData
		}
	}
	if err != nil {
		return nil, &Error{
			Kind:       KindAPI,
			StatusCode: status,
			Body:       string(raw),
			Message:    "failed to decode response body",
			Err:        err,
		}
	}
	return v, nil
}

var errTrailingData = errors.New("unexpected data after JSON value")
