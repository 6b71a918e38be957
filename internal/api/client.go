package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
	"github.com/varoOP/sankanime/internal/domain"
)

const maxBodySize = 8 << 20

// Client is the HTTP transport used to reach the anime API
type Client struct {
	log        zerolog.Logger
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

var _ domain.Transport = (*Client)(nil)

// Option configures the Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http client. Its transport is wrapped
// so the default headers are still sent.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		clone := *hc
		clone.Transport = &headerTransport{Transport: hc.Transport, UserAgent: c.userAgent()}
		c.httpClient = &clone
	}
}

// WithCircuitBreaker opens the circuit after failures consecutive failed
// requests and keeps it open for timeout.
func WithCircuitBreaker(failures uint32, timeout time.Duration) Option {
	return func(c *Client) {
		c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "anime-api",
			Timeout: timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= failures
			},
			IsSuccessful: isBreakerSuccess,
			OnStateChange: func(name string, from, to gobreaker.State) {
				c.log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
			},
		})
	}
}

// isBreakerSuccess keeps client errors (4xx) from counting against the
// breaker; they describe the request, not the health of the API.
func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 400 && apiErr.StatusCode < 500
	}
	return false
}

// NewClient creates a client for baseURL
func NewClient(log zerolog.Logger, baseURL, userAgent string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		log:     log.With().Str("module", "api").Logger(),
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: &headerTransport{UserAgent: userAgent},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) userAgent() string {
	if ht, ok := c.httpClient.Transport.(*headerTransport); ok {
		return ht.UserAgent
	}
	return ""
}

// BaseURL returns the API base every path is resolved against
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs GET <base><path>?<params> and returns the raw JSON body
func (c *Client) Get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	if c.breaker == nil {
		return c.do(ctx, target)
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.do(ctx, target)
	})
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) {
			return nil, err
		}
		return nil, &Error{Method: http.MethodGet, URL: target, Err: err}
	}
	return result.(json.RawMessage), nil
}

func (c *Client) do(ctx context.Context, target string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &Error{Method: http.MethodGet, URL: target, Err: errors.Wrap(err, "failed to create request")}
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Method: http.MethodGet, URL: target, Err: errors.Wrap(err, "failed to fetch")}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, &Error{Method: http.MethodGet, URL: target, Err: errors.Wrap(err, "failed to read response body")}
	}
	if len(body) > maxBodySize {
		return nil, &Error{Method: http.MethodGet, URL: target, Err: errors.Errorf("response too large (over %d bytes)", maxBodySize)}
	}

	c.log.Debug().
		Str("url", target).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Str("request_id", requestID).
		Msg("api request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		excerpt := string(body)
		if len(excerpt) > 200 {
			excerpt = excerpt[:200]
		}
		return nil, &Error{
			Method:     http.MethodGet,
			URL:        target,
			StatusCode: resp.StatusCode,
			Body:       excerpt,
			Err:        errors.Errorf("unexpected status code %d", resp.StatusCode),
		}
	}

	if !json.Valid(body) {
		return nil, &Error{Method: http.MethodGet, URL: target, Err: errors.New("response is not valid json")}
	}

	return json.RawMessage(body), nil
}
