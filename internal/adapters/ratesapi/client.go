// Package ratesapi fetches the latest exchange-rate table over HTTP.
package ratesapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/smart_converter/internal/core/domain"
	portsrepo "github.com/SscSPs/smart_converter/internal/core/ports/repositories"
	"github.com/SscSPs/smart_converter/internal/middleware"
	"github.com/bytedance/sonic"
	"github.com/sethvargo/go-retry"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

const (
	defaultTimeout = 10 * time.Second
	defaultBackoff = 500 * time.Millisecond
	userAgent      = "smart-converter/1.0"
)

// latestResponse is the upstream payload; only rates is used.
type latestResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// Client retrieves the rate table for one base currency.
type Client struct {
	c       *resty.Client
	url     string
	retries uint64
	backoff time.Duration
	limiter ratelimit.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.c.SetTimeout(d)
		}
	}
}

// WithRetries retries a failed fetch n more times, waiting backoff between attempts.
func WithRetries(n uint64, backoff time.Duration) Option {
	return func(c *Client) {
		c.retries = n
		if backoff > 0 {
			c.backoff = backoff
		}
	}
}

// WithRatePerSecond limits outbound fetches. Non-positive means unlimited.
func WithRatePerSecond(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.limiter = ratelimit.New(n)
		} else {
			c.limiter = ratelimit.NewUnlimited()
		}
	}
}

// NewClient creates a client for GET <baseURL>/<baseCurrency>.
func NewClient(baseURL, baseCurrency string, opts ...Option) *Client {
	client := resty.New().
		SetTimeout(defaultTimeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	c := &Client{
		c:       client,
		url:     strings.TrimRight(baseURL, "/") + "/" + strings.ToUpper(baseCurrency),
		backoff: defaultBackoff,
		limiter: ratelimit.New(1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ portsrepo.RateProvider = (*Client)(nil)

// FetchLatest downloads the full rate table. Transport errors and non-2xx
// responses are retried as configured; malformed bodies are not.
func (c *Client) FetchLatest(ctx context.Context) (domain.RateTable, error) {
	b, err := retry.NewConstant(c.backoff)
	if err != nil {
		return nil, fmt.Errorf("invalid retry backoff: %w", err)
	}
	b = retry.WithMaxRetries(c.retries, b)

	var rates domain.RateTable
	err = retry.Do(ctx, b, func(ctx context.Context) error {
		var ferr error
		var retryable bool
		rates, retryable, ferr = c.fetchOnce(ctx)
		if ferr != nil && retryable {
			middleware.GetLoggerFromCtx(ctx).Warn("Rate fetch attempt failed", slog.String("error", ferr.Error()))
			return retry.RetryableError(ferr)
		}
		return ferr
	})
	if err != nil {
		return nil, err
	}
	return rates, nil
}

// pace waits for the outbound limiter or until ctx is done. An abandoned
// wait still consumes its slot once the limiter releases it.
func (c *Client) pace(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	released := make(chan struct{})
	go func() {
		c.limiter.Take()
		close(released)
	}()
	select {
	case <-released:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) fetchOnce(ctx context.Context) (domain.RateTable, bool, error) {
	if err := c.pace(ctx); err != nil {
		return nil, false, err
	}

	resp, err := c.c.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(c.url)
	if err != nil {
		return nil, true, fmt.Errorf("can't send request for latest rates: %w", err)
	}
	defer resp.Body.Close()

	middleware.GetLoggerFromCtx(ctx).Debug("Fetched latest rates",
		slog.String("url", c.url),
		slog.String("status", resp.Status()),
		slog.Duration("duration", resp.Duration()),
	)

	if resp.StatusCode() != http.StatusOK {
		return nil, resp.IsError(), fmt.Errorf("latest rates request returned %s", resp.Status())
	}

	var payload latestResponse
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, false, fmt.Errorf("failed to decode latest rates: %w", err)
	}
	if len(payload.Rates) == 0 {
		return nil, false, fmt.Errorf("latest rates response has no rates")
	}

	return domain.RateTable(payload.Rates), false, nil
}
