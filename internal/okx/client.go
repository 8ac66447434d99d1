package okx

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "https://www.okx.com"
	PositionsPath  = "/api/v5/account/positions"
	SwapInstType   = "SWAP"
)

// Client issues signed private REST calls against one OKX host.
type Client struct {
	rest  *resty.Client
	nowFn func() time.Time
}

// ClientOption customises a Client.
type ClientOption func(*Client)

// WithClock overrides the signing clock.
func WithClock(now func() time.Time) ClientOption {
	return func(c *Client) {
		if now != nil {
			c.nowFn = now
		}
	}
}

// WithTimeout bounds a single request. Zero disables the bound.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.rest.SetTimeout(d)
		}
	}
}

// NewClient builds a client for baseURL (DefaultBaseURL when empty).
// Requests are never retried; the polling loop is the retry.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	rest := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")
	c := &Client{rest: rest, nowFn: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchPositions performs GET /api/v5/account/positions?instType=SWAP.
//
// Transport failures and unparseable bodies are errors. A non-"0" code is
// returned inside the Envelope so the caller can report it and keep polling.
func (c *Client) FetchPositions(ctx context.Context, creds Credentials) (Envelope, error) {
	requestPath := PositionsPath + "?instType=" + SwapInstType
	ts := Timestamp(c.nowFn())
	headers := SignedHeaders(creds, ts, http.MethodGet, requestPath, "")

	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeaders(headers).
		SetQueryParam("instType", SwapInstType).
		Get(PositionsPath)
	if err != nil {
		return Envelope{}, fmt.Errorf("get %s: %w", requestPath, err)
	}
	env, err := ParseEnvelope(resp.StatusCode(), resp.Body())
	if err != nil {
		return Envelope{}, err
	}
	return env, nil
}
